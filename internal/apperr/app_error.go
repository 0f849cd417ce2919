package apperr

import "github.com/tuanvumaihuynh/product-api/pkg/zerror"

const (
	ValidationErrorCode     = "VALIDATION_FAILED"
	SearchQueryRequiredCode = "SEARCH_QUERY_REQUIRED"
	ProductNotFoundCode     = "PRODUCT_NOT_FOUND"
	ProductExistsCode       = "PRODUCT_ALREADY_EXISTS"
	RouteNotFoundCode       = "ROUTE_NOT_FOUND"
	UnauthorizedCode        = "UNAUTHORIZED"
)

var (
	ValidationErr           = zerror.NewValidationFailed(ValidationErrorCode, "Validation Error: Missing or invalid fields")
	SearchQueryRequiredErr  = zerror.NewValidationFailed(SearchQueryRequiredCode, `Search query parameter "q" is required`)
	ProductNotFoundErr      = zerror.NewNotFound(ProductNotFoundCode, "Product not found")
	ProductAlreadyExistsErr = zerror.NewConflict(ProductExistsCode, "Product already exists")
	RouteNotFoundErr        = zerror.NewNotFound(RouteNotFoundCode, "Route not found")
	UnauthorizedErr         = zerror.NewUnauthorized(UnauthorizedCode, "Unauthorized: Invalid or missing API key")
)
