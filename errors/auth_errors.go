// errors/auth_errors.go
package errors

import "errors"

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrLoginFailed       = errors.New("login failed")
	ErrInvalidLoginData  = errors.New("invalid login data")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrValidationFailure = errors.New("validation failed")
)
