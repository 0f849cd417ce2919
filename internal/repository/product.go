package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/tuanvumaihuynh/product-api/internal/model"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrAlreadyExists = errors.New("product already exists")
)

type ProductRepository interface {
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) error
	UpdateProduct(ctx context.Context, product model.Product) error
	DeleteProduct(ctx context.Context, id string) (model.Product, error)
}

// memProductRepository keeps products in insertion order for the lifetime
// of the process.
type memProductRepository struct {
	mu       sync.RWMutex
	products []model.Product
}

// NewMemProductRepository creates an in-memory repository holding a copy of
// seed. Seed ids must be unique.
func NewMemProductRepository(seed []model.Product) (ProductRepository, error) {
	r := &memProductRepository{
		products: make([]model.Product, 0, len(seed)),
	}

	for _, product := range seed {
		if err := r.CreateProduct(context.Background(), product); err != nil {
			return nil, fmt.Errorf("seed product %s: %w", product.ID, err)
		}
	}

	return r, nil
}

func (r *memProductRepository) ListAllProducts(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.products), nil
}

func (r *memProductRepository) GetProduct(_ context.Context, id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, ErrNotFound)
	}

	return r.products[i], nil
}

func (r *memProductRepository) CreateProduct(_ context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(product.ID) >= 0 {
		return fmt.Errorf("create product %s: %w", product.ID, ErrAlreadyExists)
	}

	r.products = append(r.products, product)
	return nil
}

func (r *memProductRepository) UpdateProduct(_ context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		return fmt.Errorf("update product %s: %w", product.ID, ErrNotFound)
	}

	r.products[i] = product
	return nil
}

func (r *memProductRepository) DeleteProduct(_ context.Context, id string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Product{}, fmt.Errorf("delete product %s: %w", id, ErrNotFound)
	}

	deleted := r.products[i]
	r.products = slices.Delete(r.products, i, i+1)
	return deleted, nil
}

// indexOf must be called with mu held.
func (r *memProductRepository) indexOf(id string) int {
	return slices.IndexFunc(r.products, func(p model.Product) bool {
		return p.ID == id
	})
}
