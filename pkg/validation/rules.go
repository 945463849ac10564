package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	eightDigits = regexp.MustCompile(`^[0-9]{8}$`)
)

// registerRules registers the custom tags used in DTO struct tags.
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("phone8", isEightDigitPhone); err != nil {
		return err
	}
	if err := v.RegisterValidation("cin8", isEightDigitCIN); err != nil {
		return err
	}
	if err := v.RegisterValidation("notblank", isNotBlank); err != nil {
		return err
	}
	return nil
}

// isEightDigitPhone - local phone numbers are exactly 8 digits, no prefix.
func isEightDigitPhone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

// isEightDigitCIN - national identity card numbers are 8 digits.
func isEightDigitCIN(fl validator.FieldLevel) bool {
	return eightDigits.MatchString(fl.Field().String())
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// IsPhone reports whether s is exactly 8 digits.
func IsPhone(s string) bool {
	return eightDigits.MatchString(s)
}
