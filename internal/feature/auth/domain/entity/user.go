// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// User は登録済みアカウントを表します。
// 認証情報、メール検証状態、未使用のワンタイムトークンを保持します。
type User struct {
	// ID はユーザーの一意な識別子です。
	ID uint `gorm:"primaryKey"`

	// Username は任意の表示名です。
	Username string `gorm:"size:150"`

	// Email はログインIDです。全ユーザーで一意である必要があります。
	Email string `gorm:"uniqueIndex;size:250;not null"`

	// Password はbcryptでハッシュ化されたパスワードです。平文は保存しません。
	Password string `gorm:"size:150;not null"`

	// Role は作成時に決まり、ユーザー自身が昇格させる手段はありません。
	Role Role `gorm:"size:20;not null;default:user"`

	// IsVerified はメールの検証リンクが使われた時点で一度だけtrueになります。
	IsVerified bool `gorm:"not null;default:false"`

	VerificationToken          *string `gorm:"size:128"`
	VerificationTokenExpiresAt *time.Time

	ResetPasswordToken          *string `gorm:"size:128"`
	ResetPasswordTokenExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPendingVerification は未使用の検証トークンがあるかを返します。
func (u *User) HasPendingVerification() bool {
	return u.VerificationToken != nil && *u.VerificationToken != ""
}

// HasPendingReset は未使用のパスワードリセットトークンがあるかを返します。
func (u *User) HasPendingReset() bool {
	return u.ResetPasswordToken != nil && *u.ResetPasswordToken != ""
}

// SetVerificationToken は新しい検証トークンを設定し、以前のトークンを置き換えます。
// ttlが0の場合、トークンは失効しません。
func (u *User) SetVerificationToken(token string, now time.Time, ttl time.Duration) {
	u.VerificationToken = &token
	u.VerificationTokenExpiresAt = expiry(now, ttl)
}

// ClearVerificationToken は検証トークンを破棄します。
func (u *User) ClearVerificationToken() {
	u.VerificationToken = nil
	u.VerificationTokenExpiresAt = nil
}

// SetResetPasswordToken は新しいリセットトークンを設定し、以前のトークンを置き換えます。
// ttlが0の場合、トークンは失効しません。
func (u *User) SetResetPasswordToken(token string, now time.Time, ttl time.Duration) {
	u.ResetPasswordToken = &token
	u.ResetPasswordTokenExpiresAt = expiry(now, ttl)
}

// ClearResetPasswordToken はリセットトークンを破棄します。
func (u *User) ClearResetPasswordToken() {
	u.ResetPasswordToken = nil
	u.ResetPasswordTokenExpiresAt = nil
}

// VerificationTokenExpired は検証トークンが有効期限を過ぎているかを返します。
func (u *User) VerificationTokenExpired(now time.Time) bool {
	return u.VerificationTokenExpiresAt != nil && now.After(*u.VerificationTokenExpiresAt)
}

// ResetPasswordTokenExpired はリセットトークンが有効期限を過ぎているかを返します。
func (u *User) ResetPasswordTokenExpired(now time.Time) bool {
	return u.ResetPasswordTokenExpiresAt != nil && now.After(*u.ResetPasswordTokenExpiresAt)
}

func expiry(now time.Time, ttl time.Duration) *time.Time {
	if ttl <= 0 {
		return nil
	}
	t := now.Add(ttl)
	return &t
}
