package usecase

import (
	"context"
	"fmt"

	"shop_backend/internal/feature/auth/domain"
	"shop_backend/internal/feature/auth/domain/entity"
)

// UpdateUserInput はユーザーが変更できるプロフィール項目です。nilの項目は変更しません。
type UpdateUserInput struct {
	Username *string
	Password *string
}

// GetUser は指定IDのユーザーを返します。
func (u *authUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// ListUsers は全ユーザーを返します。
func (u *authUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// UpdateUser は呼び出し元のユーザー名・パスワードを変更します。
// パスワードを変更すると未使用のリセットリンクも無効になります。
func (u *authUsecase) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
		user.ClearResetPasswordToken()
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser はユーザーを削除します。ロールのチェックは認可ガードで行います。
func (u *authUsecase) DeleteUser(ctx context.Context, id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: id must be positive", domain.ErrValidation)
	}
	return u.users.Delete(ctx, id)
}
