package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type CatalogUC interface {
	ListProducts(ctx context.Context, filter *ProductFilter) ([]domain.Product, error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type CartUC interface {
	CreateCart(ctx context.Context) (*domain.Cart, error)
	GetCart(ctx context.Context, id string) (*domain.Cart, error)
	AddItem(ctx context.Context, req *AddItemReq) (*domain.Cart, error)
	RemoveItem(ctx context.Context, req *RemoveItemReq) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, req *UpdateQuantityReq) (*domain.Cart, error)
	ClearCart(ctx context.Context, id string) (*domain.Cart, error)
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
}
