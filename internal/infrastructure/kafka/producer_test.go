package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer(logger.Nop(), &cfg.KafkaCfg{Topic: "orders.placed"})
	require.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
}

func TestGetPayloadBytes(t *testing.T) {
	p, err := NewProducer(logger.Nop(), &cfg.KafkaCfg{Brokers: []string{"localhost:9092"}, Topic: "orders.placed"})
	require.NoError(t, err)
	defer p.Close()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	order := &domain.Order{
		ID:        "order-1",
		CreatedAt: fixed,
		Customer:  domain.Customer{FullName: "A", Email: "a@b.co"},
		Items: []domain.CartItem{
			{ProductID: 1, Name: "Sofa", Price: 100, Quantity: 2},
			{ProductID: 4, Name: "Lamp", Price: 30, Quantity: 1},
		},
		Total:  230,
		Status: domain.OrderStatusPlaced,
	}

	payload, err := p.GetPayloadBytes(order)
	require.NoError(t, err)

	var event OrderPlacedEvent
	require.NoError(t, json.Unmarshal(payload, &event))

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "OrderPlaced", event.EventType)
	assert.Equal(t, fixed.UnixNano(), event.EventTimestamp)
	assert.Equal(t, "order-1", event.OrderID)
	assert.Equal(t, "a@b.co", event.CustomerEmail)
	assert.Equal(t, int64(230), event.Total)
	assert.Equal(t, "Placed", event.Status)
	assert.Equal(t, []OrderEventItem{
		{ProductID: 1, Quantity: 2, Price: 100},
		{ProductID: 4, Quantity: 1, Price: 30},
	}, event.Items)
}
