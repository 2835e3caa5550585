package domain

// Category описывает категорию товаров
type Category struct {
	ID    string
	Name  string
	Image string
}
