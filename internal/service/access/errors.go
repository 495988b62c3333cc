package access

import "errors"

var (
	ErrUnauthenticated = errors.New("admin email header missing")
	ErrForbidden       = errors.New("access denied: not an admin")
)
