package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

const featuredLimit = 6

// CatalogUseCase реализует фильтрацию и выборку товаров каталога.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
}

func NewCatalogUC(catalogRepo CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo}
}

// ListProducts возвращает товары, прошедшие все заданные фильтры, в порядке каталога.
func (c *CatalogUseCase) ListProducts(ctx context.Context, filter *ProductFilter) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.catalogRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if filter == nil {
		return products, nil
	}

	search := strings.ToLower(filter.Search)
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && filter.Category != CategoryAll && p.Category != filter.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.Featured && !p.Featured {
			continue
		}

		result = append(result, p)
	}

	return result, nil
}

// FeaturedProducts возвращает не более шести рекомендуемых товаров в порядке каталога.
func (c *CatalogUseCase) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := c.ListProducts(ctx, &ProductFilter{Featured: true})
	if err != nil {
		return nil, err
	}

	if len(products) > featuredLimit {
		products = products[:featuredLimit]
	}

	return products, nil
}

func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.catalogRepo.Categories(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}
