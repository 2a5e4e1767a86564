package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"shop_backend/internal/feature/auth/domain"
)

// bindID は正の整数のパスパラメータを取り出します。
func bindID(c *gin.Context, name string) (uint, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s: %v", domain.ErrValidation, name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", domain.ErrValidation, name)
	}
	return uint(id), nil
}
