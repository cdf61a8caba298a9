package review

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrProductNotFound = errors.New("product_not_found")
)
