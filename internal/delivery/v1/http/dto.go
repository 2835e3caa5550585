package http

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       int64   `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Featured    bool    `json:"featured"`
	InStock     bool    `json:"in_stock"`
	Material    string  `json:"material,omitempty"`
	Dimensions  string  `json:"dimensions,omitempty"`
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type CartItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

type CartResponse struct {
	ID    string             `json:"id"`
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

type CustomerDTO struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

type OrderResponse struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	Customer      CustomerDTO        `json:"customer"`
	Items         []CartItemResponse `json:"items"`
	Total         int64              `json:"total"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// AddItemRequest — тело POST /cart/{id}/add. Quantity по умолчанию 1.
type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  *int  `json:"quantity,omitempty"`
}

// UpdateQuantityRequest — тело POST /cart/{id}/update.
type UpdateQuantityRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type PlaceOrderRequest struct {
	CartID   string       `json:"cart_id"`
	Customer *CustomerDTO `json:"customer"`
}

// MAPPERS

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Rating:      p.Rating,
		Featured:    p.Featured,
		InStock:     p.InStock,
		Material:    p.Material,
		Dimensions:  p.Dimensions,
	}
}

func toProductsResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}
	return result
}

func toCategoriesResponse(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryResponse{ID: c.ID, Name: c.Name, Image: c.Image})
	}
	return result
}

func toItemsResponse(items []domain.CartItem) []CartItemResponse {
	result := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		})
	}
	return result
}

func toCartResponse(cart *domain.Cart) CartResponse {
	return CartResponse{
		ID:    cart.ID,
		Items: toItemsResponse(cart.Items),
		Total: cart.Total,
	}
}

func toCustomerDTO(c domain.Customer) CustomerDTO {
	return CustomerDTO{
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		City:     c.City,
		State:    c.State,
		Pincode:  c.Pincode,
	}
}

func toOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:            order.ID,
		Date:          order.CreatedAt,
		Customer:      toCustomerDTO(order.Customer),
		Items:         toItemsResponse(order.Items),
		Total:         order.Total,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
	}
}
