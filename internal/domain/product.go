package domain

// Product описывает товар каталога. Каталог неизменяем во время работы сервиса.
type Product struct {
	ID          int64
	Name        string
	Category    string
	Price       int64 // Цена в целых единицах валюты
	Image       string
	Description string
	Rating      float64
	Featured    bool
	InStock     bool
	Material    string
	Dimensions  string
}
