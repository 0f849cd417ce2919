package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-api/internal/apperr"
	"github.com/tuanvumaihuynh/product-api/internal/http/apierr"
	"github.com/tuanvumaihuynh/product-api/pkg/validator"
	"github.com/tuanvumaihuynh/product-api/pkg/zerror"
)

func TestNew(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	type body struct {
		Name string `json:"name" validate:"required"`
	}
	validationErr := v.Validate(body{})
	require.Error(t, validationErr)

	tests := []struct {
		name     string
		err      error
		expected apierr.ErrorResponse
	}{
		{
			name:     "Not found",
			err:      fmt.Errorf("product service get product: %w", apperr.ProductNotFoundErr),
			expected: apierr.ErrorResponse{Error: "Product not found", StatusCode: http.StatusNotFound},
		},
		{
			name:     "Route not found",
			err:      apperr.RouteNotFoundErr,
			expected: apierr.ErrorResponse{Error: "Route not found", StatusCode: http.StatusNotFound},
		},
		{
			name:     "Unauthorized",
			err:      apperr.UnauthorizedErr,
			expected: apierr.ErrorResponse{Error: "Unauthorized: Invalid or missing API key", StatusCode: http.StatusUnauthorized},
		},
		{
			name:     "Wrapped validation failure",
			err:      apperr.ValidationErr.WrapParent(validationErr),
			expected: apierr.ErrorResponse{Error: "Validation Error: Missing or invalid fields", StatusCode: http.StatusBadRequest},
		},
		{
			name:     "Bare validator error",
			err:      validationErr,
			expected: apierr.ErrorResponse{Error: "Validation Error: Missing or invalid fields", StatusCode: http.StatusBadRequest},
		},
		{
			name:     "Search query missing",
			err:      apperr.SearchQueryRequiredErr,
			expected: apierr.ErrorResponse{Error: `Search query parameter "q" is required`, StatusCode: http.StatusBadRequest},
		},
		{
			name:     "Conflict",
			err:      apperr.ProductAlreadyExistsErr,
			expected: apierr.ErrorResponse{Error: "Product already exists", StatusCode: http.StatusConflict},
		},
		{
			name:     "Internal zerror hides its message",
			err:      zerror.NewZError(nil, zerror.StatusInternalServerError, "BOOM", "database exploded"),
			expected: apierr.InternalServerErr,
		},
		{
			name:     "Unknown error",
			err:      errors.New("unexpected"),
			expected: apierr.InternalServerErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apierr.New(tt.err))
		})
	}
}
