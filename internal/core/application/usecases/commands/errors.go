package commands

import "errors"

var (
	// ErrUnknownProduct is returned when an order refers to a product the catalog does not know.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrOrderNotFound is returned when the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")
)
