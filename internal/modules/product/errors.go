package product

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid_request")
	ErrNotFound          = errors.New("not_found")
	ErrBrandNotFound     = errors.New("brand_not_found")
	ErrDanglingReference = errors.New("dangling_reference")
	ErrTooManyPhotos     = errors.New("too_many_photos")
	ErrExtensionTooEarly = errors.New("extension_too_early")
)
