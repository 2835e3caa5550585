package converter

import "time"

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID            string    `db:"id"`
	CreatedAt     time.Time `db:"created_at"`
	FullName      string    `db:"full_name"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	Address       string    `db:"address"`
	City          string    `db:"city"`
	State         string    `db:"state"`
	Pincode       string    `db:"pincode"`
	Total         int64     `db:"total"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	OrderID   string `db:"order_id"`
	Position  int    `db:"position"`
	ProductID int64  `db:"product_id"`
	Name      string `db:"name"`
	Price     int64  `db:"price"`
	Image     string `db:"image"`
	Quantity  int    `db:"quantity"`
}
