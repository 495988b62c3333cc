package notification

import "errors"

var (
	ErrNotification      = errors.New("order notification failed")
	ErrAlreadyDispatched = errors.New("order notification already dispatched")
)
