package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/catalog"
	"github.com/DRSN-tech/storefront-backend/internal/repository/memory"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/moby/locker"
	"github.com/stretchr/testify/require"
)

var errLedgerDown = errors.New("ledger is read-only")

type fakeLedger struct {
	mu     sync.Mutex
	orders []*domain.Order
	err    error
}

func (f *fakeLedger) Append(_ context.Context, order *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, order.Clone())
	return nil
}

func (f *fakeLedger) rows() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

type fakePublisher struct {
	mu     sync.Mutex
	orders []string
	err    error
}

func (f *fakePublisher) PublishOrderPlaced(_ context.Context, order *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, order.ID)
	return f.err
}

type failingOrderRepo struct {
	usecase.OrderRepository
	err error
}

func (f *failingOrderRepo) Create(_ context.Context, _ *domain.Order) error {
	return f.err
}

type testEnv struct {
	catalog *usecase.CatalogUseCase
	carts   *usecase.CartUseCase
	orders  *usecase.OrderUseCase
	ledger  *fakeLedger
	events  *fakePublisher
}

type envOptions struct {
	strict    bool
	ledgerErr error
	eventErr  error
	orderErr  error
	noEvents  bool
	log       logger.Logger
}

func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()

	catalogRepo, err := catalog.NewCatalogRepo("")
	require.NoError(t, err)

	cartRepo := memory.NewCartRepo()
	var orderRepo usecase.OrderRepository = memory.NewOrderRepo()
	if opts.orderErr != nil {
		orderRepo = &failingOrderRepo{OrderRepository: orderRepo, err: opts.orderErr}
	}
	cartLocker := locker.New()
	ledger := &fakeLedger{err: opts.ledgerErr}
	events := &fakePublisher{err: opts.eventErr}

	var log logger.Logger = logger.Nop()
	if opts.log != nil {
		log = opts.log
	}

	var publisher usecase.OrderEventPublisher = events
	if opts.noEvents {
		publisher = nil
	}

	return &testEnv{
		catalog: usecase.NewCatalogUC(catalogRepo),
		carts:   usecase.NewCartUC(cartRepo, catalogRepo, cartLocker, log),
		orders:  usecase.NewOrderUC(cartRepo, orderRepo, ledger, publisher, cartLocker, log, opts.strict),
		ledger:  ledger,
		events:  events,
	}
}

func testCustomer() domain.Customer {
	return domain.Customer{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
	}
}
