package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"blog_backend/internal/feature/auth/domain/entity"
)

// gin のバリデーターに nickname タグを登録します。
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nickname", func(fl validator.FieldLevel) bool {
			return entity.ValidNickname(fl.Field().String())
		})
	}
}
