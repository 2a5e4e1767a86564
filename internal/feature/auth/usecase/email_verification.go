package usecase

import (
	"context"
	"errors"

	"shop_backend/internal/feature/auth/domain"
)

// VerifyEmail はtokenが未使用の検証トークンと一致した場合にユーザーを検証済みにします。
// 成功時にトークンを破棄するため、リンクは一度しか使えません。
func (u *authUsecase) VerifyEmail(ctx context.Context, userID uint, token string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidLink
		}
		return err
	}

	if user.IsVerified || !user.HasPendingVerification() {
		return domain.ErrNoTokenPending
	}
	if !tokensEqual(user.VerificationToken, token) || user.VerificationTokenExpired(u.now()) {
		return domain.ErrInvalidLink
	}

	user.IsVerified = true
	user.ClearVerificationToken()
	return u.users.Update(ctx, user)
}
