package repository

import "errors"

// Sentinel errors for domain validation failures. Every failing
// operation is a no-op on the in-memory state.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateProduct  = errors.New("product id already exists")
	ErrInsufficientStock = errors.New("insufficient quantity")

	ErrLoginTaken     = errors.New("username already exists")
	ErrUnknownLogin   = errors.New("username not found")
	ErrWrongPassword  = errors.New("incorrect password")
	ErrInvalidProfile = errors.New("invalid profile input")
)
