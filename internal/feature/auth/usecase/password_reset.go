package usecase

import (
	"context"
	"errors"
	"fmt"

	"shop_backend/internal/feature/auth/domain"
	"shop_backend/internal/feature/auth/domain/entity"
)

// SendResetPassword は新しいリセットトークンを保存し、リセットリンクをメールで送信します。
// 再度呼び出すと以前のトークンは無効になります。未登録のメールアドレスにはdomain.ErrUserNotFoundを返します。
func (u *authUsecase) SendResetPassword(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := u.secrets.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	user.SetResetPasswordToken(token, u.now(), u.cfg.ResetPasswordTokenTTL)

	// 送信前に保存する。送信に失敗しても再送だけで済む
	if err := u.users.Update(ctx, user); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/users/reset-password/%d/%s", u.cfg.Domain, user.ID, token)
	if err := u.mailer.Send(ctx, user.Email, TemplateResetPassword, map[string]any{"resetPasswordLink": link}); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailure, err)
	}
	return nil
}

// GetResetPasswordLink はtokenがユーザーの有効なリセットトークンであることを確認します。
func (u *authUsecase) GetResetPasswordLink(ctx context.Context, userID uint, token string) error {
	_, err := u.matchResetToken(ctx, userID, token)
	return err
}

// ResetPassword は新しいパスワードを設定し、リセットトークンを消費します。
// リセット後にログインはさせません。
func (u *authUsecase) ResetPassword(ctx context.Context, userID uint, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := u.matchResetToken(ctx, userID, token)
	if err != nil {
		return err
	}

	hashed, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ClearResetPasswordToken()
	return u.users.Update(ctx, user)
}

func (u *authUsecase) matchResetToken(ctx context.Context, userID uint, token string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidLink
		}
		return nil, err
	}
	if !tokensEqual(user.ResetPasswordToken, token) || user.ResetPasswordTokenExpired(u.now()) {
		return nil, domain.ErrInvalidLink
	}
	return user, nil
}
