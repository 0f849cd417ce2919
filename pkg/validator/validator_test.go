package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-api/pkg/ptr"
	"github.com/tuanvumaihuynh/product-api/pkg/validator"
)

type sample struct {
	Name    string   `json:"name" validate:"required"`
	Tags    []string `json:"tags" validate:"max=2"`
	Price   *float64 `json:"price" validate:"required"`
	InStock *bool    `json:"inStock" validate:"required"`
}

func TestDefaultValidator(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	tests := []struct {
		name        string
		input       sample
		expectError bool
		fields      []string
	}{
		{
			name:  "Valid with zero values behind pointers",
			input: sample{Name: "Laptop", Price: ptr.New(0.0), InStock: ptr.New(false)},
		},
		{
			name:        "Missing everything",
			input:       sample{},
			expectError: true,
			fields: []string{
				"name: field is required",
				"price: field is required",
				"inStock: field is required",
			},
		},
		{
			name:        "Too many tags",
			input:       sample{Name: "Laptop", Tags: []string{"a", "b", "c"}, Price: ptr.New(1.0), InStock: ptr.New(true)},
			expectError: true,
			fields:      []string{`tags: failed "max" rule`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, validator.IsValidationError(err))
			assert.Equal(t, tt.fields, validator.FieldErrors(err))
		})
	}
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	err := errors.New("boom")

	assert.False(t, validator.IsValidationError(err))
	assert.Nil(t, validator.FieldErrors(err))
}
