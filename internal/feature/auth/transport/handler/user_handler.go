package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
)

// UserUsecase はユーザー管理のユースケースを定義します。
type UserUsecase interface {
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	UpdateUser(ctx context.Context, id uint, in usecase.UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// UserHandler はプロフィールとユーザー管理のエンドポイントを提供します。
// 各メソッドはガードが解決した呼び出し元のIdentityを受け取ります。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// CurrentUser は呼び出し元自身のユーザー情報を返します。
func (h *UserHandler) CurrentUser(c *gin.Context, id entity.Identity) {
	user, err := h.users.GetUser(c.Request.Context(), id.UserID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// List は全ユーザーを返します。
func (h *UserHandler) List(c *gin.Context, _ entity.Identity) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// Update は呼び出し元のユーザー名・パスワードを変更します。
func (h *UserHandler) Update(c *gin.Context, id entity.Identity) {
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.users.UpdateUser(c.Request.Context(), id.UserID, usecase.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	slog.Info("user updated", "user_id", id.UserID, "password_changed", req.Password != nil)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Delete はパスパラメータ:idのユーザーを削除します。
func (h *UserHandler) Delete(c *gin.Context, caller entity.Identity) {
	target, err := bindID(c, "id")
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), target); err != nil {
		RespondError(c, err)
		return
	}
	slog.Info("user deleted", "user_id", target, "by", caller.UserID)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgUserDeleted})
}
