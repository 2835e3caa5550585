package converter

import "github.com/DRSN-tech/storefront-backend/internal/domain"

// OrderConverter преобразует заказ между domain и моделями PostgreSQL.
type OrderConverter interface {
	ToModel(entity *domain.Order) (*OrderModel, []OrderItemModel)
	ToEntity(model *OrderModel, items []OrderItemModel) *domain.Order
}

type OrderConverterImpl struct{}

func NewOrderConverterImpl() *OrderConverterImpl {
	return &OrderConverterImpl{}
}

func (c *OrderConverterImpl) ToModel(entity *domain.Order) (*OrderModel, []OrderItemModel) {
	model := &OrderModel{
		ID:            entity.ID,
		CreatedAt:     entity.CreatedAt,
		FullName:      entity.Customer.FullName,
		Email:         entity.Customer.Email,
		Phone:         entity.Customer.Phone,
		Address:       entity.Customer.Address,
		City:          entity.Customer.City,
		State:         entity.Customer.State,
		Pincode:       entity.Customer.Pincode,
		Total:         entity.Total,
		Status:        string(entity.Status),
		PaymentStatus: string(entity.PaymentStatus),
	}

	items := make([]OrderItemModel, len(entity.Items))
	for i, item := range entity.Items {
		items[i] = OrderItemModel{
			OrderID:   entity.ID,
			Position:  i,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		}
	}

	return model, items
}

func (c *OrderConverterImpl) ToEntity(model *OrderModel, items []OrderItemModel) *domain.Order {
	out := make([]domain.CartItem, len(items))
	for i, item := range items {
		out[i] = domain.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		}
	}

	return &domain.Order{
		ID:        model.ID,
		CreatedAt: model.CreatedAt.UTC(),
		Customer: domain.Customer{
			FullName: model.FullName,
			Email:    model.Email,
			Phone:    model.Phone,
			Address:  model.Address,
			City:     model.City,
			State:    model.State,
			Pincode:  model.Pincode,
		},
		Items:         out,
		Total:         model.Total,
		Status:        domain.OrderStatus(model.Status),
		PaymentStatus: domain.PaymentStatus(model.PaymentStatus),
	}
}
