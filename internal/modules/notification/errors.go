package notification

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("notification_not_found")
	ErrAlreadySent    = errors.New("notification_already_sent")
)
