package catalog

import "github.com/DRSN-tech/storefront-backend/internal/domain"

// seedFile — формат YAML-файла каталога.
type seedFile struct {
	Categories []categoryModel `yaml:"categories"`
	Products   []productModel  `yaml:"products"`
}

type categoryModel struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

type productModel struct {
	ID          int64   `yaml:"id"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Price       int64   `yaml:"price"`
	Image       string  `yaml:"image"`
	Description string  `yaml:"description"`
	Rating      float64 `yaml:"rating"`
	Featured    bool    `yaml:"featured"`
	InStock     *bool   `yaml:"in_stock"` // по умолчанию в наличии
	Material    string  `yaml:"material"`
	Dimensions  string  `yaml:"dimensions"`
}

func (m productModel) toEntity() domain.Product {
	inStock := true
	if m.InStock != nil {
		inStock = *m.InStock
	}

	return domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Price:       m.Price,
		Image:       m.Image,
		Description: m.Description,
		Rating:      m.Rating,
		Featured:    m.Featured,
		InStock:     inStock,
		Material:    m.Material,
		Dimensions:  m.Dimensions,
	}
}

func (m categoryModel) toEntity() domain.Category {
	return domain.Category{
		ID:    m.ID,
		Name:  m.Name,
		Image: m.Image,
	}
}
