package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// OrderLedger дописывает строку заказа в долговременный журнал (таблицу).
type OrderLedger interface {
	Append(ctx context.Context, order *domain.Order) error
}

// OrderEventPublisher публикует событие об оформленном заказе.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order) error
}

// CartLocker сериализует изменения одной корзины (read-modify-write).
type CartLocker interface {
	Lock(name string)
	Unlock(name string) error
}
