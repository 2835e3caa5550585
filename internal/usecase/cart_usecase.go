package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/google/uuid"
)

// CartUseCase реализует операции над корзинами.
// Каждое изменение выполняется под блокировкой идентификатора корзины.
type CartUseCase struct {
	cartRepo    CartRepository
	catalogRepo CatalogRepository
	locker      CartLocker
	logger      logger.Logger
}

func NewCartUC(cartRepo CartRepository, catalogRepo CatalogRepository, locker CartLocker, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		locker:      locker,
		logger:      logger,
	}
}

// CreateCart создаёт пустую корзину с новым идентификатором.
func (c *CartUseCase) CreateCart(ctx context.Context) (*domain.Cart, error) {
	const op = "CartUseCase.CreateCart"

	cart := domain.NewCart(uuid.NewString())
	if err := c.cartRepo.Save(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Debugf("%s: cart %s created", op, cart.ID)
	return cart, nil
}

func (c *CartUseCase) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return cart, nil
}

// AddItem добавляет товар в корзину. Неизвестная корзина создаётся с переданным идентификатором.
// Неизвестный товар возвращает e.ErrProductNotFound, корзина при этом не меняется.
func (c *CartUseCase) AddItem(ctx context.Context, req *AddItemReq) (*domain.Cart, error) {
	const op = "CartUseCase.AddItem"

	if req.Quantity <= 0 || req.Quantity > domain.MaxLineQuantity {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	product, err := c.catalogRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.mutate(ctx, op, req.CartID, true, func(cart *domain.Cart) error {
		current, _ := cart.Item(product.ID)
		if !cart.FitsQuantity(product.ID, product.Price, current.Quantity+req.Quantity) {
			return e.Wrap(fmt.Sprintf("product %d: %d + %d", product.ID, current.Quantity, req.Quantity), e.ErrInvalidQuantity)
		}

		cart.AddItem(product, req.Quantity)
		return nil
	})
}

// RemoveItem удаляет позицию; удаление отсутствующей позиции не ошибка.
func (c *CartUseCase) RemoveItem(ctx context.Context, req *RemoveItemReq) (*domain.Cart, error) {
	const op = "CartUseCase.RemoveItem"

	return c.mutate(ctx, op, req.CartID, false, func(cart *domain.Cart) error {
		cart.RemoveItem(req.ProductID)
		return nil
	})
}

// UpdateQuantity заменяет количество позиции; quantity <= 0 равносильно RemoveItem.
// Количество больше domain.MaxLineQuantity отклоняется, корзина при этом не меняется.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, req *UpdateQuantityReq) (*domain.Cart, error) {
	const op = "CartUseCase.UpdateQuantity"

	if req.Quantity > domain.MaxLineQuantity {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	return c.mutate(ctx, op, req.CartID, false, func(cart *domain.Cart) error {
		if item, ok := cart.Item(req.ProductID); ok && req.Quantity > 0 {
			if !cart.FitsQuantity(req.ProductID, item.Price, req.Quantity) {
				return e.Wrap(fmt.Sprintf("product %d: %d", req.ProductID, req.Quantity), e.ErrInvalidQuantity)
			}
		}

		cart.UpdateQuantity(req.ProductID, req.Quantity)
		return nil
	})
}

// ClearCart очищает корзину, сохраняя её идентификатор.
func (c *CartUseCase) ClearCart(ctx context.Context, id string) (*domain.Cart, error) {
	const op = "CartUseCase.ClearCart"

	return c.mutate(ctx, op, id, false, func(cart *domain.Cart) error {
		cart.Clear()
		return nil
	})
}

// mutate выполняет read-modify-write корзины под блокировкой её идентификатора.
// Если fn вернула ошибку, корзина не сохраняется.
func (c *CartUseCase) mutate(ctx context.Context, op string, cartID string, createMissing bool, fn func(cart *domain.Cart) error) (*domain.Cart, error) {
	c.locker.Lock(cartID)
	defer func() {
		if err := c.locker.Unlock(cartID); err != nil {
			c.logger.Warnf("%s: unlock cart %s: %v", op, cartID, err)
		}
	}()

	cart, err := c.cartRepo.Get(ctx, cartID)
	if err != nil {
		if !createMissing || !errors.Is(err, e.ErrCartNotFound) {
			return nil, e.Wrap(op, err)
		}

		c.logger.Debugf("%s: cart %s not found, creating", op, cartID)
		cart = domain.NewCart(cartID)
	}

	if err := fn(cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.cartRepo.Save(ctx, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return cart, nil
}
