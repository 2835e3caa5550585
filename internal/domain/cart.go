package domain

import "math"

// MaxLineQuantity — наибольшее количество единиц одного товара в позиции корзины.
const MaxLineQuantity = 10_000

// CartItem — позиция корзины. Название, цена и изображение фиксируются в момент добавления.
type CartItem struct {
	ProductID int64
	Name      string
	Price     int64
	Image     string
	Quantity  int
}

// Cart описывает корзину. Total всегда равен сумме Price*Quantity по Items
// и пересчитывается после каждого изменения.
type Cart struct {
	ID    string
	Items []CartItem
	Total int64
}

func NewCart(id string) *Cart {
	return &Cart{
		ID:    id,
		Items: []CartItem{},
	}
}

// AddItem увеличивает количество существующей позиции или добавляет новую со снимком товара.
func (c *Cart) AddItem(product *Product, quantity int) {
	if idx := c.indexOf(product.ID); idx >= 0 {
		c.Items[idx].Quantity += quantity
	} else {
		c.Items = append(c.Items, CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}

	c.recalculate()
}

// RemoveItem удаляет позицию. Отсутствие позиции не считается ошибкой.
func (c *Cart) RemoveItem(productID int64) {
	if idx := c.indexOf(productID); idx >= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	}

	c.recalculate()
}

// UpdateQuantity заменяет количество позиции; quantity <= 0 удаляет её.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	if idx := c.indexOf(productID); idx >= 0 {
		c.Items[idx].Quantity = quantity
	}

	c.recalculate()
}

// Clear очищает корзину, сохраняя идентификатор.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.recalculate()
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount — суммарное количество единиц товара в корзине.
func (c *Cart) ItemCount() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}

	return n
}

// Clone возвращает независимую копию корзины.
func (c *Cart) Clone() *Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)

	return &Cart{
		ID:    c.ID,
		Items: items,
		Total: c.Total,
	}
}

// Item возвращает позицию товара, если она есть в корзине.
func (c *Cart) Item(productID int64) (CartItem, bool) {
	if idx := c.indexOf(productID); idx >= 0 {
		return c.Items[idx], true
	}

	return CartItem{}, false
}

// FitsQuantity сообщает, может ли позиция товара с ценой price содержать quantity единиц:
// количество в пределах 1..MaxLineQuantity, а строка и итог корзины не выходят за int64.
func (c *Cart) FitsQuantity(productID int64, price int64, quantity int) bool {
	if quantity <= 0 || quantity > MaxLineQuantity || price < 0 {
		return false
	}

	if price > 0 && price > math.MaxInt64/int64(quantity) {
		return false
	}
	line := price * int64(quantity)

	rest := c.Total
	if item, ok := c.Item(productID); ok {
		rest -= item.Price * int64(item.Quantity)
	}

	return rest <= math.MaxInt64-line
}

func (c *Cart) indexOf(productID int64) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}

	return -1
}

func (c *Cart) recalculate() {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}

	c.Total = total
}
