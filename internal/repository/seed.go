package repository

import "github.com/tuanvumaihuynh/product-api/internal/model"

// SeedProducts returns the records the store starts with on every boot.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Laptop",
			Description: "High-performance laptop with 16GB RAM",
			Price:       1200,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			Description: "Latest model with 128GB storage",
			Price:       800,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with timer",
			Price:       50,
			Category:    "kitchen",
			InStock:     false,
		},
	}
}
