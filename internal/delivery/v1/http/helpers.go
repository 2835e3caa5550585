package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

var (
	notFoundErrors = []error{
		e.ErrCartNotFound,
		e.ErrProductNotFound,
		e.ErrOrderNotFound,
	}
	badRequestErrors = []error{
		e.ErrInvalidJSON,
		e.ErrMissingFields,
		e.ErrInvalidEmail,
		e.ErrInvalidPhone,
		e.ErrInvalidPincode,
		e.ErrInvalidPrice,
		e.ErrInvalidQuantity,
		e.ErrInvalidProductID,
		e.ErrCartEmpty,
		e.ErrStatusBadRequest,
	}
)

// ToHTTPResponse сопоставляет ошибку со статусом ответа. Текст внутренних ошибок наружу не отдаётся.
func ToHTTPResponse(err error) (int, string) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound, target.Error()
		}
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}

	switch {
	case errors.Is(err, e.ErrPersistence):
		return http.StatusInternalServerError, e.ErrPersistence.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst, ограничивая его размер.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidJSON)
	}

	return nil
}

func parseProductID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrInvalidProductID)
	}

	return id, nil
}

// maxPriceBound — наибольшая граница цены в фильтре каталога.
const maxPriceBound int64 = 1_000_000_000_000

// parsePriceBound переводит границу цены вида "5000" или "4999.50" в целые единицы.
// Нижняя граница округляется вверх, верхняя вниз: включительное сравнение
// с целыми ценами при этом не меняется.
func parsePriceBound(s string, lower bool) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, e.Wrap(s, e.ErrInvalidPrice)
	}

	if d.IsNegative() {
		return nil, e.Wrap(s, e.ErrInvalidPrice)
	}

	// Границы выше maxPriceBound сводятся к нему.
	if limit := decimal.NewFromInt(maxPriceBound); d.GreaterThan(limit) {
		d = limit
	}

	if lower {
		d = d.Ceil()
	} else {
		d = d.Floor()
	}

	v := d.IntPart()
	return &v, nil
}

// parseBool принимает пустую строку как false.
func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, e.Wrap(s, e.ErrStatusBadRequest)
	}

	return v, nil
}
