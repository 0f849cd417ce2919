package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/tuanvumaihuynh/product-api/internal/apperr"
	"github.com/tuanvumaihuynh/product-api/internal/model"
	"github.com/tuanvumaihuynh/product-api/internal/service"
)

const maxBodyBytes = 1 << 20 // 1 MB

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

type listProductsResponse struct {
	Products   []model.Product    `json:"products"`
	Pagination service.Pagination `json:"pagination"`
}

type searchProductsResponse struct {
	Products []model.Product `json:"products"`
	Query    string          `json:"query"`
}

type deleteProductResponse struct {
	Message        string        `json:"message"`
	DeletedProduct model.Product `json:"deletedProduct"`
}

func (h *productHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	params := service.ListProductsParams{
		Category: query.Get("category"),
		Page:     intQueryParam(r, "page"),
		Limit:    intQueryParam(r, "limit"),
	}
	if query.Has("inStock") {
		inStock := query.Get("inStock")
		params.InStock = &inStock
	}

	result, err := h.productSvc.ListProducts(r.Context(), params)
	if err != nil {
		return fmt.Errorf("product service list products: %w", err)
	}

	return writeJSON(w, http.StatusOK, listProductsResponse{
		Products:   result.Products,
		Pagination: result.Pagination,
	})
}

func (h *productHandler) SearchProducts(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query().Get("q")

	products, err := h.productSvc.SearchProducts(r.Context(), q)
	if err != nil {
		return fmt.Errorf("product service search products: %w", err)
	}

	return writeJSON(w, http.StatusOK, searchProductsResponse{
		Products: products,
		Query:    q,
	})
}

func (h *productHandler) GetProductStats(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.productSvc.GetProductStats(r.Context())
	if err != nil {
		return fmt.Errorf("product service get product stats: %w", err)
	}

	return writeJSON(w, http.StatusOK, stats)
}

func (h *productHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	product, err := h.productSvc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("product service get product: %w", err)
	}

	return writeJSON(w, http.StatusOK, product)
}

func (h *productHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	var params service.CreateProductParams
	if err := decodeBody(w, r, &params); err != nil {
		return err
	}

	product, err := h.productSvc.CreateProduct(r.Context(), params)
	if err != nil {
		return fmt.Errorf("product service create product: %w", err)
	}

	return writeJSON(w, http.StatusCreated, product)
}

func (h *productHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	var params service.UpdateProductParams
	if err := decodeBody(w, r, &params); err != nil {
		return err
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		return fmt.Errorf("product service update product: %w", err)
	}

	return writeJSON(w, http.StatusOK, product)
}

func (h *productHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	deleted, err := h.productSvc.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("product service delete product: %w", err)
	}

	return writeJSON(w, http.StatusOK, deleteProductResponse{
		Message:        "Product deleted successfully",
		DeletedProduct: deleted,
	})
}

// intQueryParam binds an optional integer query parameter. Missing or
// malformed values yield 0 so the service applies its default; values too
// large for an int are clamped to math.MaxInt.
func intQueryParam(r *http.Request, name string) int {
	query := r.URL.Query()

	var v int
	if err := runtime.BindQueryParameter("form", true, false, name, query, &v); err != nil {
		raw := query.Get(name)
		if _, perr := strconv.Atoi(raw); errors.Is(perr, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return math.MaxInt
		}
		return 0
	}
	return v
}

// decodeBody reads a JSON request body. Any malformed body is reported as a
// validation failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.ValidationErr.WrapParent(fmt.Errorf("decode request body: %w", err))
	}
	return nil
}

// writeJSON marshals v before touching w, so an encoding failure can still be
// answered with an error response.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck
	w.Write(body)
	return nil
}
