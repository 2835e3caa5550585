package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	repo, err := NewCatalogRepo("")
	require.NoError(t, err)
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 10)
	require.EqualValues(t, 1, products[0].ID)

	table, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Coffee Table", table.Name)
	require.EqualValues(t, 8000, table.Price)
	require.True(t, table.InStock)

	light, err := repo.GetByID(ctx, 6)
	require.NoError(t, err)
	require.False(t, light.InStock)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 5)
	require.Equal(t, "living-room", categories[0].ID)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, err := NewCatalogRepo("")
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), 404)
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestListReturnsCopy(t *testing.T) {
	repo, err := NewCatalogRepo("")
	require.NoError(t, err)
	ctx := context.Background()

	products, _ := repo.List(ctx)
	products[0].Price = 1

	again, _ := repo.List(ctx)
	require.EqualValues(t, 45000, again[0].Price)
}

func TestCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
products:
  - id: 42
    name: Lamp
    category: lighting
    price: 100
`), 0o600))

	repo, err := NewCatalogRepo(path)
	require.NoError(t, err)

	p, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "Lamp", p.Name)
}

func TestCatalogRejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalogRepoFromYAML([]byte(`
products:
  - {id: 1, name: A, price: 1}
  - {id: 1, name: B, price: 2}
`))
	require.Error(t, err)
}
