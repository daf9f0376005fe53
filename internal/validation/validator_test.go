package validation_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/luckysign/internal/domain"
	domainerrors "github.com/listenupapp/luckysign/internal/errors"
	"github.com/listenupapp/luckysign/internal/validation"
)

type TestRequest struct {
	BirthDate string           `json:"birth_date" validate:"required,birthdate"`
	Name      string           `json:"name" validate:"max=20"`
	Size      int              `json:"size" validate:"gte=0,lte=2"`
	Mode      domain.ColorMode `json:"color_mode" validate:"colormode"`
	Main      string           `json:"main_color,omitempty" validate:"required_if=Mode 1,omitempty,hexcolor"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	tests := []TestRequest{
		{BirthDate: "15.06.1990.", Name: "Anna"},
		{BirthDate: "1990-06-15", Size: 2},
		{BirthDate: "01.01.2000.", Mode: 1, Main: "#388E3C"},
	}

	for _, req := range tests {
		assert.NoError(t, v.Validate(req))
	}
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       TestRequest
		wantField string
	}{
		{
			name:      "missing birth date",
			req:       TestRequest{},
			wantField: "birth_date",
		},
		{
			name:      "impossible birth date",
			req:       TestRequest{BirthDate: "31.02.2000."},
			wantField: "birth_date",
		},
		{
			name:      "size out of range",
			req:       TestRequest{BirthDate: "01.01.2000.", Size: 3},
			wantField: "size",
		},
		{
			name:      "unknown colour mode",
			req:       TestRequest{BirthDate: "01.01.2000.", Mode: 4},
			wantField: "color_mode",
		},
		{
			name:      "negative colour mode",
			req:       TestRequest{BirthDate: "01.01.2000.", Mode: -1},
			wantField: "color_mode",
		},
		{
			name:      "custom mode without colour",
			req:       TestRequest{BirthDate: "01.01.2000.", Mode: 1},
			wantField: "main_color",
		},
		{
			name:      "malformed colour",
			req:       TestRequest{BirthDate: "01.01.2000.", Mode: 1, Main: "green"},
			wantField: "main_color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Contains(t, details, tt.wantField)
			assert.Contains(t, domainErr.Message, tt.wantField)
		})
	}
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(TestRequest{})
	require.Error(t, err)

	// Should use JSON tag name "birth_date", not struct field name "BirthDate"
	assert.Contains(t, err.Error(), "birth_date")
	assert.NotContains(t, err.Error(), "BirthDate")
}
