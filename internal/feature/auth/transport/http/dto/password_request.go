package dto

// ForgotPasswordReq は/api/users/forgot-passwordのリクエストボディです。
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email,max=250"`
}

// ResetPasswordReq は/api/users/reset-passwordのリクエストボディです。
type ResetPasswordReq struct {
	UserID             uint   `json:"userId" binding:"required,min=1"`
	ResetPasswordToken string `json:"resetPasswordToken" binding:"required,min=10"`
	NewPassword        string `json:"newPassword" binding:"required,strongpassword"`
}
