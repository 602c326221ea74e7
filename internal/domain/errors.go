package domain

import "errors"

// Domain errors
var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username or email already exists")

	// Order errors
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrder      = errors.New("order must have at least one item")
	ErrInvalidQuantity = errors.New("quantity must be at least one")
	ErrInvalidStatus   = errors.New("invalid order status")

	// Catalog errors
	ErrProductNotFound  = errors.New("product not found")
	ErrSKUExists        = errors.New("product sku already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrBrandExists      = errors.New("brand already exists")

	// Payment errors
	ErrPaymentNotFound = errors.New("payment not found")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrBrandNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrUserExists) ||
		errors.Is(err, ErrSKUExists) ||
		errors.Is(err, ErrCategoryExists) ||
		errors.Is(err, ErrBrandExists)
}

// IsUnauthorizedError checks if the error maps to a 401
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserInactive) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired)
}

// IsValidationError checks if the error is a bad request
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyOrder) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidStatus)
}
