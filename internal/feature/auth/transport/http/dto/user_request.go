package dto

// UpdateUserReq はPUT /api/usersのリクエストボディです。省略した項目は変更されません。
type UpdateUserReq struct {
	Username *string `json:"username" binding:"omitempty,min=2,max=150"`
	Password *string `json:"password" binding:"omitempty,strongpassword"`
}
