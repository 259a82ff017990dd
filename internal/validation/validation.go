// Package validation centralizes the field patterns shared by suppliers,
// clients and users (the same three regexes are used everywhere instead of
// being redeclared per entity).
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// Senegalese phone: +221771234567 or 771234567 (9 digits).
	phoneRe = regexp.MustCompile(`^\+?221[0-9]{9}$|^[0-9]{9}$`)
	// Lowercase-only email.
	emailRe = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	// Letters (accented included), spaces, hyphens and apostrophes.
	nameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s\-']+$`)
)

func ValidPhone(s string) bool { return phoneRe.MatchString(s) }
func ValidEmail(s string) bool { return emailRe.MatchString(s) }
func ValidName(s string) bool  { return nameRe.MatchString(s) }

// Register wires the shared patterns as validator tags so DTOs can declare
// `validate:"sn_phone"`, `validate:"lower_email"` and `validate:"person_name"`.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("sn_phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("lower_email", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return ValidName(fl.Field().String())
	})
}
