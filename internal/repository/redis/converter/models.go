package converter

type CartRedisModel struct {
	ID    string               `json:"id"`
	Items []CartItemRedisModel `json:"items"`
	Total int64                `json:"total"`
}

type CartItemRedisModel struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}
