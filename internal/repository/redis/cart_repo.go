package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CartRepo хранит корзины в Redis как JSON по ключу cart:<id>.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter, cfg *cfg.RedisCfg) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
	}
}

func (c *CartRepo) Get(ctx context.Context, id string) (*domain.Cart, error) {
	data, err := c.client.Client.Get(ctx, c.cartKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.ErrCartNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := c.unmarshalCart(data)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if model.ID != id {
		return nil, fmt.Errorf("cart key %s holds cart %s", id, model.ID)
	}

	return c.conv.ToEntity(model), nil
}

// Save перезаписывает корзину целиком. TTL 0 означает хранение без срока.
func (c *CartRepo) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(c.conv.ToRedisModel(cart))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.cartKey(cart.ID), data, c.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) unmarshalCart(data []byte) (*converter.CartRedisModel, error) {
	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// cartKey возвращает Redis-ключ корзины
func (c *CartRepo) cartKey(id string) string {
	return fmt.Sprintf("cart:%s", id)
}
