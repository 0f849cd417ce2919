package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tuanvumaihuynh/product-api/internal/model"
	"github.com/tuanvumaihuynh/product-api/internal/storage/mq"
	"github.com/tuanvumaihuynh/product-api/pkg/msgheader"
	"github.com/tuanvumaihuynh/product-api/pkg/ptr"
)

// Publisher announces product changes to interested consumers.
type Publisher interface {
	PublishProduct(ctx context.Context, topic string, product model.Product) error
}

var (
	_ Publisher = (*MQPublisher)(nil)
	_ Publisher = NopPublisher{}
)

// MQPublisher publishes product events through a message queue producer,
// keyed by product id so events for one product stay ordered.
type MQPublisher struct {
	producer mq.Producer
}

func NewMQPublisher(producer mq.Producer) *MQPublisher {
	return &MQPublisher{producer: producer}
}

func (p *MQPublisher) PublishProduct(ctx context.Context, topic string, product model.Product) error {
	payload, err := json.Marshal(NewProductEvent(product))
	if err != nil {
		return fmt.Errorf("marshal product event: %w", err)
	}

	if err := p.producer.Produce(ctx, mq.ProduceMsg{
		Topic:        topic,
		Headers:      msgheader.BuildHeaders(ctx),
		Payload:      payload,
		PartitionKey: ptr.New(product.ID),
	}); err != nil {
		return fmt.Errorf("produce %s: %w", topic, err)
	}

	return nil
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishProduct(context.Context, string, model.Product) error {
	return nil
}
