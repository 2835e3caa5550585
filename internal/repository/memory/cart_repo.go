package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

// CartRepo хранит корзины в памяти процесса. Наружу отдаются только копии,
// поэтому изменения вне Save не попадают в хранилище.
type CartRepo struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *CartRepo) Get(_ context.Context, id string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, e.ErrCartNotFound
	}

	return cart.Clone(), nil
}

func (r *CartRepo) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.ID] = cart.Clone()
	return nil
}
