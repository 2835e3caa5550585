package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, ttl time.Duration) (*CartRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisCfg := &cfg.RedisCfg{Addr: mr.Addr(), CartTTL: ttl}
	client := clients.NewRedisClient(redisCfg)
	t.Cleanup(func() { _ = client.Client.Close() })

	return NewCartRepo(client, converter.NewCartConverterImpl(), redisCfg), mr
}

func TestCartRepoRoundTrip(t *testing.T) {
	repo, mr := newTestRepo(t, 0)
	ctx := context.Background()

	_, err := repo.Get(ctx, "c1")
	require.ErrorIs(t, err, e.ErrCartNotFound)

	cart := domain.NewCart("c1")
	cart.AddItem(&domain.Product{ID: 7, Name: "Coffee Table", Price: 8000, Image: "t.jpg"}, 2)
	require.NoError(t, repo.Save(ctx, cart))
	require.True(t, mr.Exists("cart:c1"))
	require.Zero(t, mr.TTL("cart:c1"))

	got, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, cart, got)
}

func TestCartRepoTotalRecomputedOnLoad(t *testing.T) {
	repo, mr := newTestRepo(t, 0)

	require.NoError(t, mr.Set("cart:c2", `{"id":"c2","items":[{"product_id":9,"name":"Nightstand","price":5000,"quantity":3}],"total":1}`))

	got, err := repo.Get(context.Background(), "c2")
	require.NoError(t, err)
	require.EqualValues(t, 15000, got.Total)
}

func TestCartRepoTTL(t *testing.T) {
	repo, mr := newTestRepo(t, time.Hour)

	require.NoError(t, repo.Save(context.Background(), domain.NewCart("c3")))
	require.Equal(t, time.Hour, mr.TTL("cart:c3"))
}

func TestCartRepoCorruptValue(t *testing.T) {
	repo, mr := newTestRepo(t, 0)
	require.NoError(t, mr.Set("cart:bad", "{"))

	_, err := repo.Get(context.Background(), "bad")
	require.Error(t, err)
	require.NotErrorIs(t, err, e.ErrCartNotFound)
}
