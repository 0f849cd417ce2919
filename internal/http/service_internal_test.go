package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-api/internal/apperr"
	"github.com/tuanvumaihuynh/product-api/internal/config"
	"github.com/tuanvumaihuynh/product-api/pkg/validator"
)

func TestRegisterMiddlewares_PanicIsMeasured(t *testing.T) {
	s := New(config.HTTP{}, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	r := chi.NewRouter()
	s.RegisterMiddlewares(r)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
	assert.InDelta(t, 1, testutil.ToFloat64(s.metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/boom", "500")), 0)
}

func TestHandleResponseError_LogsFailedFields(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	type body struct {
		Name  string   `json:"name" validate:"required"`
		Price *float64 `json:"price" validate:"required"`
	}
	validationErr := v.Validate(body{})
	require.Error(t, validationErr)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedFields any
	}{
		{
			name:           "Validation failure lists fields",
			err:            apperr.ValidationErr.WrapParent(validationErr),
			expectedStatus: http.StatusBadRequest,
			expectedFields: []any{"name: field is required", "price: field is required"},
		},
		{
			name:           "Other errors carry no fields",
			err:            apperr.ProductNotFoundErr,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := New(config.HTTP{}, slog.New(slog.NewJSONHandler(&buf, nil)), nil)

			rr := httptest.NewRecorder()
			s.handleResponseError(rr, httptest.NewRequest(http.MethodPost, "/api/products", nil), tt.err)
			assert.Equal(t, tt.expectedStatus, rr.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "WARN", entry["level"])
			assert.Equal(t, tt.expectedFields, entry["fields"])
		})
	}
}
