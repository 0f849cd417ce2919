package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-api/internal/event"
	"github.com/tuanvumaihuynh/product-api/internal/model"
	"github.com/tuanvumaihuynh/product-api/internal/storage/mq"
	"github.com/tuanvumaihuynh/product-api/pkg/correlationid"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Produce(ctx context.Context, msg mq.ProduceMsg) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestMQPublisher_PublishProduct(t *testing.T) {
	product := model.Product{
		ID:          "42",
		Name:        "Kettle",
		Description: "Electric kettle",
		Price:       30,
		Category:    "kitchen",
		InStock:     true,
	}

	t.Run("Should produce keyed message with event payload", func(t *testing.T) {
		producer := new(MockProducer)
		publisher := event.NewMQPublisher(producer)
		ctx := correlationid.NewContext(context.Background(), "corr-1")

		producer.On("Produce", mock.Anything, mock.MatchedBy(func(msg mq.ProduceMsg) bool {
			var ev event.ProductEvent
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				return false
			}
			return msg.Topic == event.TopicProductCreated &&
				msg.PartitionKey != nil && *msg.PartitionKey == "42" &&
				msg.Headers[correlationid.Header] == "corr-1" &&
				ev == event.NewProductEvent(product)
		})).Return(nil).Once()

		err := publisher.PublishProduct(ctx, event.TopicProductCreated, product)
		require.NoError(t, err)
		producer.AssertExpectations(t)
	})

	t.Run("Should wrap producer errors", func(t *testing.T) {
		producer := new(MockProducer)
		publisher := event.NewMQPublisher(producer)
		produceErr := errors.New("broker down")

		producer.On("Produce", mock.Anything, mock.Anything).Return(produceErr).Once()

		err := publisher.PublishProduct(context.Background(), event.TopicProductDeleted, product)
		require.Error(t, err)
		assert.ErrorIs(t, err, produceErr)
		assert.Contains(t, err.Error(), event.TopicProductDeleted)
	})
}

func TestNopPublisher(t *testing.T) {
	err := event.NopPublisher{}.PublishProduct(context.Background(), event.TopicProductUpdated, model.Product{ID: "1"})
	assert.NoError(t, err)
}
