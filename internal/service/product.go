package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/product-api/internal/apperr"
	"github.com/tuanvumaihuynh/product-api/internal/event"
	"github.com/tuanvumaihuynh/product-api/internal/model"
	"github.com/tuanvumaihuynh/product-api/internal/repository"
	"github.com/tuanvumaihuynh/product-api/pkg/ptr"
	"github.com/tuanvumaihuynh/product-api/pkg/validator"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type ListProductsParams struct {
	// Category keeps only exact matches when non-empty.
	Category string
	// InStock, when set, keeps products whose stock flag equals
	// *InStock == "true".
	InStock *string
	Page    int
	Limit   int
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type ListProductsResult struct {
	Products   []model.Product
	Pagination Pagination
}

type ProductStats struct {
	TotalProducts int            `json:"totalProducts"`
	InStock       int            `json:"inStock"`
	OutOfStock    int            `json:"outOfStock"`
	Categories    map[string]int `json:"categories"`
	// AveragePrice is nil when there are no products or the mean is not a
	// finite number.
	AveragePrice *float64 `json:"averagePrice"`
}

// ProductParams is the full set of writable fields. Pointers distinguish a
// missing value from a zero one.
type ProductParams struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	InStock     *bool    `json:"inStock" validate:"required"`
}

type CreateProductParams = ProductParams

type UpdateProductParams = ProductParams

type ProductService interface {
	ListProducts(ctx context.Context, params ListProductsParams) (ListProductsResult, error)
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)
	GetProductStats(ctx context.Context) (ProductStats, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) (model.Product, error)
}

type productService struct {
	logger      *slog.Logger
	validator   validator.Validator
	productRepo repository.ProductRepository
	publisher   event.Publisher
}

func NewProductService(
	logger *slog.Logger,
	validator validator.Validator,
	productRepo repository.ProductRepository,
	publisher event.Publisher,
) ProductService {
	return &productService{
		logger:      logger.With(slog.String("service", "product")),
		validator:   validator,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

func (s *productService) ListProducts(ctx context.Context, params ListProductsParams) (ListProductsResult, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return ListProductsResult{}, fmt.Errorf("product repository list all products: %w", err)
	}

	page, limit := params.Page, params.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	filtered := filterProducts(products, params.Category, params.InStock)

	return ListProductsResult{
		Products: paginate(filtered, page, limit),
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages(len(filtered), limit),
			TotalItems:   len(filtered),
			ItemsPerPage: limit,
		},
	}, nil
}

func (s *productService) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	if query == "" {
		return nil, apperr.SearchQueryRequiredErr
	}

	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all products: %w", err)
	}

	needle := strings.ToLower(query)
	matches := make([]model.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			matches = append(matches, p)
		}
	}

	return matches, nil
}

func (s *productService) GetProductStats(ctx context.Context) (ProductStats, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return ProductStats{}, fmt.Errorf("product repository list all products: %w", err)
	}

	stats := ProductStats{
		TotalProducts: len(products),
		Categories:    make(map[string]int),
	}

	// running mean so prices near the float64 limit do not overflow a sum
	var avg float64
	for i, p := range products {
		if p.InStock {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
		stats.Categories[p.Category]++
		avg += (p.Price - avg) / float64(i+1)
	}

	if len(products) > 0 && !math.IsInf(avg, 0) && !math.IsNaN(avg) {
		stats.AveragePrice = ptr.New(avg)
	}

	return stats, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, translateRepoErr(err)
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, apperr.ValidationErr.WrapParent(err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Product{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	product := params.toModel(id.String())
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return model.Product{}, translateRepoErr(err)
	}

	s.publish(ctx, event.TopicProductCreated, product)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, params UpdateProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, apperr.ValidationErr.WrapParent(err)
	}

	// Every writable field is required, so merging the body over the stored
	// record replaces all of them and only the id survives.
	product := params.toModel(id)
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return model.Product{}, translateRepoErr(err)
	}

	s.publish(ctx, event.TopicProductUpdated, product)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) (model.Product, error) {
	deleted, err := s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return model.Product{}, translateRepoErr(err)
	}

	s.publish(ctx, event.TopicProductDeleted, deleted)

	return deleted, nil
}

// publish never fails the caller: the store is already mutated.
func (s *productService) publish(ctx context.Context, topic string, product model.Product) {
	if err := s.publisher.PublishProduct(ctx, topic, product); err != nil {
		s.logger.WarnContext(ctx, "error publishing product event",
			slog.String("topic", topic),
			slog.String("product_id", product.ID),
			slog.Any("error", err),
		)
	}
}

func (p ProductParams) toModel(id string) model.Product {
	return model.Product{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Price:       *p.Price,
		Category:    p.Category,
		InStock:     *p.InStock,
	}
}

func translateRepoErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.ProductNotFoundErr.WrapParent(err)
	case errors.Is(err, repository.ErrAlreadyExists):
		return apperr.ProductAlreadyExistsErr.WrapParent(err)
	}
	return fmt.Errorf("product repository: %w", err)
}

func filterProducts(products []model.Product, category string, inStock *string) []model.Product {
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if inStock != nil && p.InStock != (*inStock == "true") {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// paginate returns the 1-based page of size limit, or an empty slice when
// the page lies past the end. page and limit must be positive.
func paginate(products []model.Product, page, limit int) []model.Product {
	if page > totalPages(len(products), limit) {
		return []model.Product{}
	}
	start := (page - 1) * limit
	end := start + min(limit, len(products)-start)
	return products[start:end]
}

// totalPages is ceil(n/limit) without overflowing for very large limits.
func totalPages(n, limit int) int {
	pages := n / limit
	if n%limit != 0 {
		pages++
	}
	return pages
}
