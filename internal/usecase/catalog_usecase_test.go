package usecase_test

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []domain.Product) []int64 {
	result := make([]int64, 0, len(products))
	for _, p := range products {
		result = append(result, p.ID)
	}
	return result
}

func price(v int64) *int64 { return &v }

func TestListProducts(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	tests := []struct {
		name   string
		filter *usecase.ProductFilter
		want   []int64
	}{
		{name: "no filter", filter: nil, want: []int64{1, 5, 7, 2, 8, 3, 9, 4, 10, 6}},
		{name: "empty filter", filter: &usecase.ProductFilter{}, want: []int64{1, 5, 7, 2, 8, 3, 9, 4, 10, 6}},
		{name: "category all", filter: &usecase.ProductFilter{Category: usecase.CategoryAll}, want: []int64{1, 5, 7, 2, 8, 3, 9, 4, 10, 6}},
		{name: "category", filter: &usecase.ProductFilter{Category: "dining"}, want: []int64{2, 8}},
		{name: "category is case sensitive", filter: &usecase.ProductFilter{Category: "Dining"}, want: []int64{}},
		{name: "unknown category", filter: &usecase.ProductFilter{Category: "garden"}, want: []int64{}},
		{name: "search ignores case", filter: &usecase.ProductFilter{Search: "TABLE"}, want: []int64{7, 2}},
		{name: "price bounds are inclusive", filter: &usecase.ProductFilter{MinPrice: price(5000), MaxPrice: price(8000)}, want: []int64{7, 9, 6}},
		{name: "min price only", filter: &usecase.ProductFilter{MinPrice: price(30000)}, want: []int64{1, 2}},
		{name: "featured", filter: &usecase.ProductFilter{Featured: true}, want: []int64{1, 2, 3}},
		{name: "filters combine", filter: &usecase.ProductFilter{Category: "bedroom", MaxPrice: price(10000)}, want: []int64{9}},
		{name: "inverted bounds", filter: &usecase.ProductFilter{MinPrice: price(10000), MaxPrice: price(5000)}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := env.catalog.ListProducts(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(products))
		})
	}
}

func TestListProductsIsolation(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	ctx := context.Background()

	products, err := env.catalog.ListProducts(ctx, nil)
	require.NoError(t, err)
	products[0].Price = 1

	again, err := env.catalog.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(45000), again[0].Price)
}

func TestFeaturedProducts(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	products, err := env.catalog.FeaturedProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(products))
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	ctx := context.Background()

	product, err := env.catalog.GetProduct(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "Pendant Light", product.Name)
	assert.False(t, product.InStock)

	_, err = env.catalog.GetProduct(ctx, 999)
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestListCategories(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	categories, err := env.catalog.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 5)
	assert.Equal(t, "living-room", categories[0].ID)
	assert.Equal(t, "Lighting", categories[4].Name)
}
