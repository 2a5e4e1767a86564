// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/auth/domain"
	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
)

// レスポンスメッセージ
const (
	msgVerificationSent = "verification token has been sent to your email, please verify your email address"
	msgEmailVerified    = "your email has been verified, please login to your account"
	msgResetLinkSent    = "password reset link sent to your email, please check your inbox"
	msgPasswordReset    = "password reset successfully, please log in with your new password"
	msgUserDeleted      = "user has been deleted"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は未検証のユーザーを作成し、検証メールを送信します。
	Register(ctx context.Context, in usecase.RegisterInput) error
	// Login はユーザーを認証し、セッショントークンまたは検証待ちの結果を返します。
	Login(ctx context.Context, email, password string) (usecase.LoginResult, error)
	VerifyEmail(ctx context.Context, userID uint, token string) error
	SendResetPassword(ctx context.Context, email string) error
	GetResetPasswordLink(ctx context.Context, userID uint, token string) error
	ResetPassword(ctx context.Context, userID uint, token, newPassword string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は400を返却
// - 成功時は201と検証待ちメッセージを返却（ログインはしない）
func (h *AuthHandler) Register(c *gin.Context, _ entity.Identity) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	in := usecase.RegisterInput{Email: req.Email, Password: req.Password, Username: req.Username}
	if err := h.auth.Register(c.Request.Context(), in); err != nil {
		RespondError(c, err)
		return
	}
	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: msgVerificationSent})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - 認証失敗時は、メール未登録・パスワード不一致を区別せず400を返却
// - 未検証ユーザーには検証メールを再送し、メッセージのみを返却
// - 検証済みユーザーにはアクセストークンを返却
func (h *AuthHandler) Login(c *gin.Context, _ entity.Identity) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}
	if res.PendingVerification {
		slog.Info("login pending verification", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, dto.MessageResponse{Message: msgVerificationSent})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: res.AccessToken})
}

// VerifyEmail は登録時に送信した検証リンクを処理します。
func (h *AuthHandler) VerifyEmail(c *gin.Context, _ entity.Identity) {
	id, err := bindID(c, "id")
	if err != nil {
		// 不正なIDも無効なリンクとして扱う
		RespondError(c, domain.ErrInvalidLink)
		return
	}
	if err := h.auth.VerifyEmail(c.Request.Context(), id, c.Param("verificationToken")); err != nil {
		RespondError(c, err)
		return
	}
	slog.Info("email verified", "user_id", id)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgEmailVerified})
}

// ForgotPassword はリセットリンクを送信します。未登録のメールアドレスは400を返します。
func (h *AuthHandler) ForgotPassword(c *gin.Context, _ entity.Identity) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.auth.SendResetPassword(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			slog.Warn("reset requested for unknown email", "email", req.Email, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user_not_found", Message: domain.ErrUserNotFound.Error()})
			return
		}
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgResetLinkSent})
}

// ValidateResetLink はリセットリンクがまだ有効かを返します。
func (h *AuthHandler) ValidateResetLink(c *gin.Context, _ entity.Identity) {
	id, err := bindID(c, "id")
	if err != nil {
		RespondError(c, domain.ErrInvalidLink)
		return
	}
	if err := h.auth.GetResetPasswordLink(c.Request.Context(), id, c.Param("resetPasswordToken")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// ResetPassword はリセットトークンを使って新しいパスワードを設定します。
func (h *AuthHandler) ResetPassword(c *gin.Context, _ entity.Identity) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), req.UserID, req.ResetPasswordToken, req.NewPassword); err != nil {
		RespondError(c, err)
		return
	}
	slog.Info("password reset", "user_id", req.UserID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgPasswordReset})
}
