package usecase

import "github.com/DRSN-tech/storefront-backend/internal/domain"

// CATALOG USECASE

// CategoryAll — значение фильтра категории, означающее «без фильтра».
const CategoryAll = "all"

// ProductFilter — необязательные фильтры каталога, объединяемые через AND.
type ProductFilter struct {
	Category string // точное совпадение, с учётом регистра
	Search   string // подстрока названия без учёта регистра
	MinPrice *int64 // включительно
	MaxPrice *int64 // включительно
	Featured bool
}

// CART USECASE

// AddItemReq — запрос на добавление товара в корзину.
type AddItemReq struct {
	CartID    string
	ProductID int64
	Quantity  int
}

// RemoveItemReq — запрос на удаление позиции.
type RemoveItemReq struct {
	CartID    string
	ProductID int64
}

// UpdateQuantityReq — запрос на замену количества позиции.
type UpdateQuantityReq struct {
	CartID    string
	ProductID int64
	Quantity  int
}

// ORDER USECASE

// PlaceOrderReq — запрос на оформление заказа по корзине.
type PlaceOrderReq struct {
	CartID   string
	Customer domain.Customer
}

// MAPPERS

func NewAddItemReq(cartID string, productID int64, quantity int) *AddItemReq {
	return &AddItemReq{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewRemoveItemReq(cartID string, productID int64) *RemoveItemReq {
	return &RemoveItemReq{
		CartID:    cartID,
		ProductID: productID,
	}
}

func NewUpdateQuantityReq(cartID string, productID int64, quantity int) *UpdateQuantityReq {
	return &UpdateQuantityReq{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewPlaceOrderReq(cartID string, customer domain.Customer) *PlaceOrderReq {
	return &PlaceOrderReq{
		CartID:   cartID,
		Customer: customer,
	}
}
