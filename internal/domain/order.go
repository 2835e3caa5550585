package domain

import "time"

type OrderStatus string

type PaymentStatus string

const (
	OrderStatusPlaced OrderStatus   = "Placed"
	PaymentStatusPaid PaymentStatus = "Paid" // Оплата имитируется на стороне клиента
)

// Order — неизменяемый снимок корзины на момент оформления.
type Order struct {
	ID            string
	CreatedAt     time.Time
	Customer      Customer
	Items         []CartItem
	Total         int64
	Status        OrderStatus
	PaymentStatus PaymentStatus
}

// NewOrder создаёт заказ с глубокой копией позиций корзины.
func NewOrder(id string, cart *Cart, customer Customer, now time.Time) *Order {
	snapshot := cart.Clone()

	return &Order{
		ID:            id,
		CreatedAt:     now.UTC(),
		Customer:      customer,
		Items:         snapshot.Items,
		Total:         snapshot.Total,
		Status:        OrderStatusPlaced,
		PaymentStatus: PaymentStatusPaid,
	}
}

// Clone возвращает независимую копию заказа.
func (o *Order) Clone() *Order {
	out := *o
	out.Items = make([]CartItem, len(o.Items))
	copy(out.Items, o.Items)

	return &out
}
