package e

import "fmt"

var (
	// Storage
	ErrKeyNotFound           = fmt.Errorf("key not found")
	ErrUnknownStorageBackend = fmt.Errorf("unknown storage backend")

	// Config
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidProductID = fmt.Errorf("product id must be a positive integer")
	ErrUnknownCategory  = fmt.Errorf("unknown category")
	ErrUnknownViewMode  = fmt.Errorf("unknown view mode")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap prefixes err with the place it happened.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
