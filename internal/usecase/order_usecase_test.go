package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillCart(t *testing.T, env *testEnv, cartID string) {
	t.Helper()
	ctx := context.Background()

	_, err := env.carts.AddItem(ctx, usecase.NewAddItemReq(cartID, 1, 2))
	require.NoError(t, err)
	_, err = env.carts.AddItem(ctx, usecase.NewAddItemReq(cartID, 9, 1))
	require.NoError(t, err)
}

func TestPlaceOrder(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	ctx := context.Background()
	fillCart(t, env, "c-1")

	before := time.Now().UTC()
	order, err := env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.OrderStatusPlaced, order.Status)
	assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, testCustomer(), order.Customer)
	assert.Equal(t, int64(95000), order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(1), order.Items[0].ProductID)
	assert.Equal(t, int64(9), order.Items[1].ProductID)
	assert.Equal(t, time.UTC, order.CreatedAt.Location())
	assert.False(t, order.CreatedAt.Before(before.Add(-time.Second)))

	stored, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, stored)

	assert.Equal(t, 1, env.ledger.rows())
	assert.Equal(t, []string{order.ID}, env.events.orders)
}

func TestPlaceOrderResetsCart(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	ctx := context.Background()
	fillCart(t, env, "c-1")

	order, err := env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
	require.NoError(t, err)

	cart, err := env.carts.GetCart(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", cart.ID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)

	_, err = env.carts.AddItem(ctx, usecase.NewAddItemReq("c-1", 4, 3))
	require.NoError(t, err)

	stored, err := env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, int64(95000), stored.Total)
}

func TestPlaceOrderUnknownCart(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	_, err := env.orders.PlaceOrder(context.Background(), usecase.NewPlaceOrderReq("missing", testCustomer()))
	require.ErrorIs(t, err, e.ErrCartNotFound)
	assert.Zero(t, env.ledger.rows())
	assert.Empty(t, env.events.orders)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	ctx := context.Background()

	cart, err := env.carts.CreateCart(ctx)
	require.NoError(t, err)

	_, err = env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq(cart.ID, testCustomer()))
	require.ErrorIs(t, err, e.ErrCartEmpty)
	assert.Zero(t, env.ledger.rows())
}

func TestPlaceOrderTwiceFromSameCart(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	ctx := context.Background()
	fillCart(t, env, "c-1")

	_, err := env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
	require.NoError(t, err)

	_, err = env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
	require.ErrorIs(t, err, e.ErrCartEmpty)
	assert.Equal(t, 1, env.ledger.rows())
}

func TestPlaceOrderLedgerFailureIsLogged(t *testing.T) {
	env := newTestEnv(t, envOptions{ledgerErr: errLedgerDown})
	ctx := context.Background()
	fillCart(t, env, "c-1")

	order, err := env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
	require.NoError(t, err)

	_, err = env.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)

	cart, err := env.carts.GetCart(ctx, "c-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestPlaceOrderStrictLedgerFailure(t *testing.T) {
	env := newTestEnv(t, envOptions{strict: true, ledgerErr: errLedgerDown})
	ctx := context.Background()
	fillCart(t, env, "c-1")

	_, err := env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
	require.ErrorIs(t, err, e.ErrPersistence)

	cart, err := env.carts.GetCart(ctx, "c-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Empty(t, env.events.orders)
}

func TestPlaceOrderStrictLedgerSuccess(t *testing.T) {
	env := newTestEnv(t, envOptions{strict: true})
	ctx := context.Background()
	fillCart(t, env, "c-1")

	order, err := env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
	require.NoError(t, err)
	assert.Equal(t, 1, env.ledger.rows())
	assert.Equal(t, order.ID, env.ledger.orders[0].ID)
}

func TestPlaceOrderStrictStoreFailureReportsLedgerRow(t *testing.T) {
	var buf bytes.Buffer
	errStoreDown := errors.New("order store is down")
	env := newTestEnv(t, envOptions{
		strict:   true,
		orderErr: errStoreDown,
		log:      logger.NewSlogLoggerWithWriter(&buf, slog.LevelDebug),
	})
	ctx := context.Background()
	fillCart(t, env, "c-1")

	_, err := env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
	require.ErrorIs(t, err, errStoreDown)

	require.Equal(t, 1, env.ledger.rows())
	orderID := env.ledger.orders[0].ID
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "order "+orderID+" is in the ledger but was not stored")

	cart, err := env.carts.GetCart(ctx, "c-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Empty(t, env.events.orders)
}

func TestPlaceOrderPublishFailureIsLogged(t *testing.T) {
	env := newTestEnv(t, envOptions{eventErr: errors.New("broker down")})
	ctx := context.Background()
	fillCart(t, env, "c-1")

	order, err := env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
	require.NoError(t, err)
	assert.Equal(t, []string{order.ID}, env.events.orders)
}

func TestPlaceOrderWithoutPublisher(t *testing.T) {
	env := newTestEnv(t, envOptions{noEvents: true})
	ctx := context.Background()
	fillCart(t, env, "c-1")

	_, err := env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
	require.NoError(t, err)
	assert.Empty(t, env.events.orders)
}

func TestGetOrderUnknown(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	_, err := env.orders.GetOrder(context.Background(), "missing")
	require.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestOrderIDsAreUnique(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		fillCart(t, env, "c-1")
		order, err := env.orders.PlaceOrder(ctx, usecase.NewPlaceOrderReq("c-1", testCustomer()))
		require.NoError(t, err)

		_, dup := seen[order.ID]
		require.False(t, dup)
		seen[order.ID] = struct{}{}
	}
	assert.Equal(t, 20, env.ledger.rows())
}
