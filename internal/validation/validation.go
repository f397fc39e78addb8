// Package validation checks records against their `validate` struct tags and
// reports failures as domain INVALID errors that name the offending JSON fields.
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/fastygo/portfolio/domain"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
	return instance
}

// Struct validates v. Missing required fields take precedence over format
// errors so the client sees every absent field at once.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.WrapError(domain.ErrCodeInvalid, "invalid payload", err)
	}

	var missing []string
	var malformed validator.FieldError
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		default:
			if malformed == nil {
				malformed = fe
			}
		}
	}

	if len(missing) > 0 {
		return domain.NewError(domain.ErrCodeInvalid, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if malformed.Tag() == "email" {
		return domain.NewError(domain.ErrCodeInvalid, "Invalid email format")
	}
	return domain.NewError(domain.ErrCodeInvalid, "Invalid value for field: "+malformed.Field())
}
