package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// canonical slug shape: the output of utils.Slugify on non-empty input
var slugPattern = regexp.MustCompile(`^[\w\p{Han}-]+$`)

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("slug", isSlugFL)
	}
}

// IsSlug reports whether a string is already a canonical slug.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

func isSlugFL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		// empty slugs are derived from the title instead
		return true
	}
	return IsSlug(value)
}
