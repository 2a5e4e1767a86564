// Package domain はauthフィーチャーのドメインエラーを定義します。
package domain

import "errors"

// 認証・認可のドメインエラー。
// 下位層は詳細を付けてラップし、呼び出し側はerrors.Isで判定します。
var (
	// ErrValidation は入力値が不正であることを示します。
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail は同じメールアドレスのユーザーが既に存在することを示します。
	// 事前チェックとINSERT時の一意制約違反の両方で返されます。
	ErrDuplicateEmail = errors.New("user already exists")

	// ErrInvalidCredentials は未登録のメールアドレスとパスワード誤りの両方を表します。
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidLink は検証・リセットリンクのユーザー不在、トークン不在、不一致、期限切れを表します。
	ErrInvalidLink = errors.New("invalid link")

	// ErrNoTokenPending は検証トークンが無い状態でメール検証が行われたことを示します。
	ErrNoTokenPending = errors.New("there is no verification token")

	// ErrUserNotFound は指定されたメールアドレスまたはIDのユーザーが存在しないことを示します。
	ErrUserNotFound = errors.New("user not found")

	// ErrUnauthenticated はセッショントークンが無い・不正・期限切れ、
	// またはトークンのユーザーが既に存在しないことを示します。
	ErrUnauthenticated = errors.New("access denied")

	// ErrForbidden は呼び出し元のロールがルートで許可されていないことを示します。
	ErrForbidden = errors.New("you do not have the required role")

	// ErrInvalidToken は改ざん・期限切れ・不正な形式のセッショントークンに対して返されます。
	ErrInvalidToken = errors.New("invalid token")

	// ErrStoreUnavailable はユーザーストアに接続できないことを示します。
	ErrStoreUnavailable = errors.New("user store unavailable")

	// ErrDeliveryFailure はメールを送信できなかったことを示します。
	ErrDeliveryFailure = errors.New("email delivery failed")
)
