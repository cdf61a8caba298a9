package provider

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrNotFound        = errors.New("not_found")
	ErrInvalidDistrict = errors.New("invalid_district")
)
