package event

import (
	"context"
	"log/slog"

	"github.com/tuanvumaihuynh/product-api/internal/model"
)

const (
	TopicProductCreated = "product.created"
	TopicProductUpdated = "product.updated"
	TopicProductDeleted = "product.deleted"
)

// ProductTopics lists every topic a product event can be published to.
var ProductTopics = []string{TopicProductCreated, TopicProductUpdated, TopicProductDeleted}

type ProductEvent struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
}

func NewProductEvent(product model.Product) ProductEvent {
	return ProductEvent{
		ProductID:   product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		InStock:     product.InStock,
	}
}

func (s *Service) handleProductEvent(ctx context.Context, topic string, ev ProductEvent) error {
	s.logger.InfoContext(ctx, "handling product event",
		slog.String("topic", topic),
		slog.Any("event", ev),
	)
	return nil
}
