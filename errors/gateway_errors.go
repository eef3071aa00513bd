// errors/gateway_errors.go
package errors

import "errors"

var (
	ErrRequestFailed      = errors.New("request failed")
	ErrInvalidResponse    = errors.New("response is not a JSON object")
	ErrDownloadFailed     = errors.New("download failed")
	ErrUnsupportedPayload = errors.New("unsupported request payload")
)
