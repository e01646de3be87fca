package e

import "fmt"

var (
	// Ошибки клиентской сессии
	ErrLoginFailed     = fmt.Errorf("login failed")
	ErrNoSession       = fmt.Errorf("no active session")
	ErrSessionNotFound = fmt.Errorf("persisted session not found")

	// Ошибки корзины и заказов
	ErrEmptyCart       = fmt.Errorf("cart is empty")
	ErrProductNotFound = fmt.Errorf("product not found")

	// Ошибки каталога
	ErrCatalogEmpty = fmt.Errorf("catalog is empty")

	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("required fields are missing")
	ErrInvalidPage          = fmt.Errorf("unknown page")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
