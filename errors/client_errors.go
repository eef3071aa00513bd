// errors/client_errors.go
package errors

import "errors"

var (
	ErrResourceNotFound   = errors.New("resource not found")
	ErrInvalidResourceRef = errors.New("invalid resource reference")
	ErrBackendRejected    = errors.New("backend rejected the request")
)
