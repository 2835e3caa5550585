package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// CatalogRepo — неизменяемый каталог, загружаемый один раз при старте.
type CatalogRepo struct {
	products   []domain.Product
	byID       map[int64]int
	categories []domain.Category
}

// NewCatalogRepo загружает каталог из файла path или, если path пуст, из встроенного YAML.
func NewCatalogRepo(path string) (*CatalogRepo, error) {
	data := embeddedCatalog
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return NewCatalogRepoFromYAML(data)
}

func NewCatalogRepoFromYAML(data []byte) (*CatalogRepo, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	repo := &CatalogRepo{
		products:   make([]domain.Product, 0, len(seed.Products)),
		byID:       make(map[int64]int, len(seed.Products)),
		categories: make([]domain.Category, 0, len(seed.Categories)),
	}

	for _, m := range seed.Products {
		if _, dup := repo.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d in catalog", m.ID)
		}
		repo.byID[m.ID] = len(repo.products)
		repo.products = append(repo.products, m.toEntity())
	}

	for _, m := range seed.Categories {
		repo.categories = append(repo.categories, m.toEntity())
	}

	return repo, nil
}

// List возвращает копию всех товаров в порядке каталога.
func (c *CatalogRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *CatalogRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	product := c.products[idx]
	return &product, nil
}

func (c *CatalogRepo) Categories(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out, nil
}
