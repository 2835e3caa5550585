package converter

import "github.com/DRSN-tech/storefront-backend/internal/domain"

// CartConverter преобразует корзину между domain и моделью, хранимой в Redis.
type CartConverter interface {
	ToRedisModel(entity *domain.Cart) *CartRedisModel
	ToEntity(model *CartRedisModel) *domain.Cart
}

type CartConverterImpl struct{}

func NewCartConverterImpl() *CartConverterImpl {
	return &CartConverterImpl{}
}

func (c *CartConverterImpl) ToRedisModel(entity *domain.Cart) *CartRedisModel {
	if entity == nil {
		return nil
	}

	items := make([]CartItemRedisModel, len(entity.Items))
	for i, item := range entity.Items {
		items[i] = CartItemRedisModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		}
	}

	return &CartRedisModel{
		ID:    entity.ID,
		Items: items,
		Total: entity.Total,
	}
}

// ToEntity восстанавливает корзину. Total пересчитывается из позиций,
// сохранённое значение не используется.
func (c *CartConverterImpl) ToEntity(model *CartRedisModel) *domain.Cart {
	if model == nil {
		return nil
	}

	cart := domain.NewCart(model.ID)
	for _, item := range model.Items {
		cart.AddItem(&domain.Product{
			ID:    item.ProductID,
			Name:  item.Name,
			Price: item.Price,
			Image: item.Image,
		}, item.Quantity)
	}

	return cart
}
