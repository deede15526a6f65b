package errs

import "errors"

// Domain-specific sentinel errors for usecase layers
var (
	// Catalog errors
	ErrScooterNotFound = errors.New("scooter not found")

	// Payment errors
	ErrIntentNotFound  = errors.New("payment intent not found")
	ErrIntentFinalized = errors.New("payment intent already finalized")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
