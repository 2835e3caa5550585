package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/google/uuid"
)

// OrderUseCase оформляет заказы по корзинам и выдаёт их по идентификатору.
type OrderUseCase struct {
	cartRepo     CartRepository
	orderRepo    OrderRepository
	ledger       OrderLedger
	events       OrderEventPublisher // может быть nil
	locker       CartLocker
	logger       logger.Logger
	strictLedger bool
	now          func() time.Time
}

func NewOrderUC(
	cartRepo CartRepository,
	orderRepo OrderRepository,
	ledger OrderLedger,
	events OrderEventPublisher,
	locker CartLocker,
	logger logger.Logger,
	strictLedger bool,
) *OrderUseCase {
	return &OrderUseCase{
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		ledger:       ledger,
		events:       events,
		locker:       locker,
		logger:       logger,
		strictLedger: strictLedger,
		now:          time.Now,
	}
}

// PlaceOrder превращает корзину в заказ.
//
// По умолчанию ошибка записи в журнал только логируется: заказ считается оформленным.
// В строгом режиме журнал пишется первым и его ошибка возвращается как e.ErrPersistence,
// заказ не сохраняется и корзина не очищается. Если после записи в журнал не удалось
// сохранить заказ, строка журнала остаётся и идентификатор заказа пишется в лог ошибок.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.PlaceOrder"

	o.locker.Lock(req.CartID)
	defer func() {
		if err := o.locker.Unlock(req.CartID); err != nil {
			o.logger.Warnf("%s: unlock cart %s: %v", op, req.CartID, err)
		}
	}()

	cart, err := o.cartRepo.Get(ctx, req.CartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if cart.IsEmpty() {
		return nil, e.Wrap(op, e.ErrCartEmpty)
	}

	order := domain.NewOrder(uuid.NewString(), cart, req.Customer, o.now())

	if o.strictLedger {
		if err := o.ledger.Append(ctx, order); err != nil {
			o.logger.Errorf(err, "%s: ledger append failed for order %s, rejecting", op, order.ID)
			return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrPersistence))
		}
	}

	if err := o.orderRepo.Create(ctx, order); err != nil {
		if o.strictLedger {
			o.logger.Errorf(err, "%s: order %s is in the ledger but was not stored, cart %s", op, order.ID, cart.ID)
		}
		return nil, e.Wrap(op, err)
	}

	if !o.strictLedger {
		if err := o.ledger.Append(ctx, order); err != nil {
			o.logger.Errorf(err, "%s: ledger append failed for order %s", op, order.ID)
		}
	}

	cart.Clear()
	if err := o.cartRepo.Save(ctx, cart); err != nil {
		o.logger.Warnf("%s: failed to reset cart %s after order %s: %v", op, cart.ID, order.ID, err)
	}

	if o.events != nil {
		if err := o.events.PublishOrderPlaced(ctx, order); err != nil {
			o.logger.Warnf("%s: failed to publish order %s: %v", op, order.ID, err)
		}
	}

	o.logger.Infof("%s: order %s placed, cart %s, total %d", op, order.ID, cart.ID, order.Total)
	return order, nil
}

func (o *OrderUseCase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}
