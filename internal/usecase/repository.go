package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// CatalogRepository — источник товаров и категорий, только чтение.
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// CartRepository хранит корзины по идентификатору.
// Get возвращает e.ErrCartNotFound, если корзины нет.
type CartRepository interface {
	Get(ctx context.Context, id string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
}

// OrderRepository хранит оформленные заказы.
// GetByID возвращает e.ErrOrderNotFound, если заказа нет.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
