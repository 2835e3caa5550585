package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

// OrderRepo — таблица заказов в памяти процесса. После перезапуска заказы
// по идентификатору недоступны, хотя строки в журнале остаются.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{orders: make(map[string]*domain.Order)}
}

// Create сохраняет заказ. Заказы неизменяемы, повторная запись с тем же ID — ошибка.
func (r *OrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return fmt.Errorf("order %s already exists", order.ID)
	}

	r.orders[order.ID] = order.Clone()
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, e.ErrOrderNotFound
	}

	return order.Clone(), nil
}
