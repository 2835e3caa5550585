package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// placeOrder
//
//	@Summary		Оформление заказа по корзине
//	@Description	После оформления корзина очищается, но остаётся доступной
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			body	body		PlaceOrderRequest	true	"Корзина и данные покупателя"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации или пустая корзина"
//	@Failure		404		{object}	ErrorResponse	"Корзина не найдена"
//	@Failure		500		{object}	ErrorResponse	"Ошибка записи журнала (строгий режим)"
//	@Router			/orders [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		o.logger.Warnf("%d placeOrder: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	cartID := strings.TrimSpace(req.CartID)
	if cartID == "" {
		WriteError(w, e.Wrap("cart_id", e.ErrMissingFields))
		return
	}

	customer, err := validateCustomer(req.Customer)
	if err != nil {
		o.logger.Warnf("%d placeOrder: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.PlaceOrder(r.Context(), usecase.NewPlaceOrderReq(cartID, customer))
	if err != nil {
		o.logger.Warnf("placeOrder: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// getOrder
//
//	@Summary	Заказ по идентификатору
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"ID заказа"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := o.orderUsecase.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}
