package memory

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestCartRepoIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	_, err := repo.Get(ctx, "missing")
	require.ErrorIs(t, err, e.ErrCartNotFound)

	cart := domain.NewCart("c1")
	cart.AddItem(&domain.Product{ID: 1, Price: 10}, 1)
	require.NoError(t, repo.Save(ctx, cart))

	cart.AddItem(&domain.Product{ID: 2, Price: 10}, 1)

	stored, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)

	stored.Clear()
	again, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.EqualValues(t, 10, again.Total)
}

func TestOrderRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepo()

	cart := domain.NewCart("c1")
	cart.AddItem(&domain.Product{ID: 1, Price: 10}, 3)
	order := domain.NewOrder("o1", cart, domain.Customer{FullName: "Ravi"}, time.Now())

	require.NoError(t, repo.Create(ctx, order))
	require.Error(t, repo.Create(ctx, order))

	order.Items[0].Quantity = 99

	got, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	require.Equal(t, 3, got.Items[0].Quantity)
	require.EqualValues(t, 30, got.Total)

	_, err = repo.GetByID(ctx, "nope")
	require.ErrorIs(t, err, e.ErrOrderNotFound)
}
