package support

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrNotFound        = errors.New("not_found")
	ErrProductNotFound = errors.New("product_not_found")
	ErrInvalidStatus   = errors.New("invalid_status")
)
