package dto

// RegisterReq は/api/users/auth/registerのリクエストボディを表します。
// パスワードはvalidation.goで登録したstrongpasswordルールを満たす必要があります。
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email,max=250"`
	Password string `json:"password" binding:"required,strongpassword"`
	Username string `json:"username" binding:"omitempty,min=2,max=150"`
}
