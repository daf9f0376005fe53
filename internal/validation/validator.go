// Package validation provides request validation using the validator/v10 library.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/listenupapp/luckysign/internal/color"
	"github.com/listenupapp/luckysign/internal/domain"
	domainerrors "github.com/listenupapp/luckysign/internal/errors"
)

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the birthdate, hexcolor and colormode tags registered.
func New() *Validator {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "":
			return fld.Name
		case "-":
			return ""
		default:
			return name
		}
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("birthdate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseBirthDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("hexcolor", func(fl validator.FieldLevel) bool {
		return color.IsHex(fl.Field().String())
	})
	_ = v.RegisterValidation("colormode", func(fl validator.FieldLevel) bool {
		return domain.ColorMode(fl.Field().Int()).Valid()
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns a domain error.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

// formatError converts validator errors to domain errors.
func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fieldErrors[e.Field()] = v.friendlyMessage(e)
	}

	fields := make([]string, 0, len(fieldErrors))
	for f := range fieldErrors {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + " " + fieldErrors[f]
	}

	return domainerrors.ValidationWithDetails("validation failed: "+strings.Join(parts, "; "), fieldErrors)
}

func (v *Validator) friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "birthdate":
		return "must be a date as dd.mm.yyyy. or yyyy-mm-dd"
	case "hexcolor":
		return "must be a colour as #rrggbb"
	case "colormode":
		return "must be 0 (auto) or 1 (custom)"
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "required_if":
		return "is required when " + strings.Replace(e.Param(), " ", " is ", 1)
	default:
		return "is invalid"
	}
}
