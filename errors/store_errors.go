// errors/store_errors.go
package errors

import "errors"

var (
	ErrRecordCorrupt        = errors.New("persisted session record is corrupt")
	ErrEncryptionKeyInvalid = errors.New("invalid encryption key length: must be 32 bytes")
	ErrStoreUnavailable     = errors.New("session store unavailable")
)
