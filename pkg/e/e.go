package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки хранения
	ErrPersistence = fmt.Errorf("persistence failure")

	// 404 Not Found
	ErrCartNotFound    = fmt.Errorf("cart not found")
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidJSON      = fmt.Errorf("invalid json body")
	ErrMissingFields    = fmt.Errorf("missing required fields")
	ErrInvalidEmail     = fmt.Errorf("invalid email format")
	ErrInvalidPhone     = fmt.Errorf("invalid phone number")
	ErrInvalidPincode   = fmt.Errorf("invalid pincode")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrInvalidQuantity  = fmt.Errorf("invalid quantity")
	ErrInvalidProductID = fmt.Errorf("invalid product id")
	ErrCartEmpty        = fmt.Errorf("cart is empty")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
