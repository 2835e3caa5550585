package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const eventTypeOrderPlaced = "OrderPlaced"

// OrderPlacedEvent — событие об оформленном заказе.
type OrderPlacedEvent struct {
	EventID        string           `json:"event_id"`
	EventType      string           `json:"event_type"`
	EventTimestamp int64            `json:"event_timestamp"`
	OrderID        string           `json:"order_id"`
	CreatedAt      time.Time        `json:"created_at"`
	CustomerName   string           `json:"customer_name"`
	CustomerEmail  string           `json:"customer_email"`
	Total          int64            `json:"total"`
	Status         string           `json:"status"`
	Items          []OrderEventItem `json:"items"`
}

type OrderEventItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"`
}

// Producer публикует события заказов. Запись асинхронная: ошибки доставки
// приходят в Completion и только логируются.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
	now    func() time.Time
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrIncorrectEnvVariable)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error (%d messages): %s", len(messages), err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}, nil
}

func (p *Producer) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	value, err := p.GetPayloadBytes(order)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
	}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

// Close дожидается отправки буферизованных сообщений.
func (p *Producer) Close() error {
	return p.writer.Close()
}

func (p *Producer) GetPayloadBytes(order *domain.Order) ([]byte, error) {
	return json.Marshal(p.newOrderPlacedEvent(order))
}

func (p *Producer) newOrderPlacedEvent(order *domain.Order) *OrderPlacedEvent {
	items := make([]OrderEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderEventItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &OrderPlacedEvent{
		EventID:        uuid.NewString(),
		EventType:      eventTypeOrderPlaced,
		EventTimestamp: p.now().UnixNano(),
		OrderID:        order.ID,
		CreatedAt:      order.CreatedAt,
		CustomerName:   order.Customer.FullName,
		CustomerEmail:  order.Customer.Email,
		Total:          order.Total,
		Status:         string(order.Status),
		Items:          items,
	}
}
