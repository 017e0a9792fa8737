package request

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Guyuepp/bloggers-platform/domain"
)

var (
	loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]*$`)
	urlPattern   = regexp.MustCompile(`^https://([a-zA-Z0-9_-]+\.)+[a-zA-Z0-9_-]+(/[a-zA-Z0-9_-]+)*/?$`)

	registerOnce sync.Once
)

// RegisterValidators adds the platform's rules to gin's validator and makes
// validation errors report json field names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("likestatus", func(fl validator.FieldLevel) bool {
			return domain.LikeStatus(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("login", func(fl validator.FieldLevel) bool {
			return loginPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("websiteurl", func(fl validator.FieldLevel) bool {
			return urlPattern.MatchString(fl.Field().String())
		})
	})
}
