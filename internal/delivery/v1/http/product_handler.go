package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Фильтры объединяются через AND; порядок каталога сохраняется
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Категория (all = без фильтра)"
//	@Param			search		query		string	false	"Подстрока названия"
//	@Param			min_price	query		number	false	"Минимальная цена, включительно"
//	@Param			max_price	query		number	false	"Максимальная цена, включительно"
//	@Param			featured	query		bool	false	"Только рекомендуемые"
//	@Success		200			{array}		ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minPrice, err := parsePriceBound(q.Get("min_price"), true)
	if err != nil {
		p.logger.Warnf("%d listProducts: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	maxPrice, err := parsePriceBound(q.Get("max_price"), false)
	if err != nil {
		p.logger.Warnf("%d listProducts: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	featured, err := parseBool(q.Get("featured"))
	if err != nil {
		p.logger.Warnf("%d listProducts: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	products, err := p.catalogUsecase.ListProducts(r.Context(), &usecase.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Featured: featured,
	})
	if err != nil {
		p.logger.Errorf(err, "listProducts")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}

// featuredProducts
//
//	@Summary	Рекомендуемые товары (не более шести)
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products/featured [get]
func (p *ProductHandler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUsecase.FeaturedProducts(r.Context())
	if err != nil {
		p.logger.Errorf(err, "featuredProducts")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}

// getProduct
//
//	@Summary	Товар по идентификатору
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Debugf("getProduct %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// listCategories
//
//	@Summary	Список категорий
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Router		/categories [get]
func (p *ProductHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := p.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		p.logger.Errorf(err, "listCategories")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoriesResponse(categories))
}
