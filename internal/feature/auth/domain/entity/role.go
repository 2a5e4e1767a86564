package entity

// Role はユーザーの権限区分です。
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid はrが定義済みのロールかを返します。
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Identity は認可ガードが解決した認証済みの呼び出し元です。
// Roleはトークンのクレームではなく、ユーザーストアから読み込んだ現在のロールです。
type Identity struct {
	UserID uint
	Role   Role
}
