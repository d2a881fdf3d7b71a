package utils

import (
	"strings"
	"sync"

	"pijat_jogja/internal/model"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the custom rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		RegisterCustomValidations(validate)
	})
	return validate
}

// RegisterCustomValidations adds the project rules to v.
func RegisterCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("wa_number", func(fl validator.FieldLevel) bool {
		return model.WANumberPattern.MatchString(fl.Field().String())
	})
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidWANumber checks a WhatsApp number against the 62xxxxxxxxx pattern.
func IsValidWANumber(number string) bool {
	return Validator().Var(number, "wa_number") == nil
}
