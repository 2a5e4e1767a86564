package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"shop_backend/internal/feature/auth/domain"
	"shop_backend/internal/feature/auth/transport/http/dto"
)

// errorKind はエラー種別とHTTPステータスの組です。
type errorKind struct {
	target error
	kind   string
	status int
}

// errorKinds はドメインエラーとHTTPステータスの対応表です。先頭から順に評価されます。
var errorKinds = []errorKind{
	{domain.ErrValidation, "validation_error", http.StatusBadRequest},
	{domain.ErrDuplicateEmail, "duplicate_email", http.StatusBadRequest},
	{domain.ErrInvalidCredentials, "invalid_credentials", http.StatusBadRequest},
	{domain.ErrInvalidLink, "invalid_link", http.StatusBadRequest},
	{domain.ErrNoTokenPending, "no_token_pending", http.StatusNotFound},
	{domain.ErrUserNotFound, "user_not_found", http.StatusNotFound},
	{domain.ErrUnauthenticated, "unauthenticated", http.StatusUnauthorized},
	{domain.ErrInvalidToken, "unauthenticated", http.StatusUnauthorized},
	{domain.ErrForbidden, "forbidden", http.StatusForbidden},
	{domain.ErrStoreUnavailable, "store_unavailable", http.StatusServiceUnavailable},
	{domain.ErrDeliveryFailure, "delivery_failure", http.StatusServiceUnavailable},
}

// classify はerrの種別とステータスを返します。未知のエラーはinternal_errorとして扱います。
func classify(err error) (string, int, error) {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.kind, k.status, k.target
		}
	}
	return "internal_error", http.StatusInternalServerError, nil
}

// RespondError はerrをErrorResponseとして書き込み、後続の処理を中断します。
// 内部エラーはログに記録し、詳細はレスポンスに含めません。
func RespondError(c *gin.Context, err error) {
	kind, status, target := classify(err)

	msg := "internal server error"
	if target != nil {
		msg = target.Error()
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", "error", err, "kind", kind, "path", c.FullPath())
	} else {
		slog.WarnContext(c.Request.Context(), "request rejected", "error", err, "kind", kind, "path", c.FullPath(), "remote_addr", c.ClientIP())
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: kind, Message: msg})
}

// respondBindError はバインドに失敗したリクエストに400 validation_errorを返します。
// バリデーターがフィールドごとのエラーを返した場合はそれも含めます。
func respondBindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "request validation failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())

	resp := dto.ErrorResponse{Error: "validation_error", Message: domain.ErrValidation.Error()}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Fields = make(map[string]string, len(verrs))
		for _, fe := range verrs {
			resp.Fields[fe.Field()] = fieldMessage(fe)
		}
	} else {
		resp.Message = "malformed request body"
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "strongpassword":
		return fmt.Sprintf("must be at least %d characters with upper and lower case letters, a digit and a symbol", dto.MinPasswordLength)
	default:
		return "is invalid"
	}
}
