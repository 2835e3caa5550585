package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// createCart
//
//	@Summary	Создание пустой корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart/create [post]
func (c *CartHandler) createCart(w http.ResponseWriter, r *http.Request) {
	cart, err := c.cartUsecase.CreateCart(r.Context())
	if err != nil {
		c.logger.Errorf(err, "createCart")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// getCart
//
//	@Summary	Корзина по идентификатору
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		string	true	"ID корзины"
//	@Success	200	{object}	CartResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/cart/{id} [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := c.cartUsecase.GetCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Неизвестная корзина создаётся с переданным идентификатором
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"ID корзины"
//	@Param			body	body		AddItemRequest	true	"Товар и количество"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart/{id}/add [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.logger.Warnf("%d addItem: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	if req.ProductID <= 0 {
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 || quantity > domain.MaxLineQuantity {
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	cart, err := c.cartUsecase.AddItem(r.Context(), usecase.NewAddItemReq(chi.URLParam(r, "id"), req.ProductID, quantity))
	if err != nil {
		c.logger.Debugf("addItem: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// removeItem
//
//	@Summary	Удаление позиции из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		id			path		string	true	"ID корзины"
//	@Param		product_id	query		int		true	"ID товара"
//	@Success	200			{object}	CartResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/cart/{id}/remove [post]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r.URL.Query().Get("product_id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, err := c.cartUsecase.RemoveItem(r.Context(), usecase.NewRemoveItemReq(chi.URLParam(r, "id"), productID))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// updateQuantity
//
//	@Summary		Изменение количества позиции
//	@Description	quantity <= 0 удаляет позицию
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"ID корзины"
//	@Param			body	body		UpdateQuantityRequest	true	"Товар и количество"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart/{id}/update [post]
func (c *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		c.logger.Warnf("%d updateQuantity: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	if req.ProductID <= 0 {
		WriteError(w, e.ErrInvalidProductID)
		return
	}
	if req.Quantity == nil {
		WriteError(w, e.Wrap("quantity", e.ErrMissingFields))
		return
	}
	if *req.Quantity > domain.MaxLineQuantity {
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	cart, err := c.cartUsecase.UpdateQuantity(r.Context(), usecase.NewUpdateQuantityReq(chi.URLParam(r, "id"), req.ProductID, *req.Quantity))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}
