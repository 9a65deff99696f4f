package fetcher

import (
	"errors"
	"fmt"
)

var (
	// ErrStatusNotOK is matched by StatusError, returned when http response had status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrContentTypeNotSupported is returned when response content type doesn't match requested document kind.
	ErrContentTypeNotSupported = errors.New("response content type not supported")
)

// StatusError is returned when http response had status different than 200 OK.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: got %d", ErrStatusNotOK, e.StatusCode)
}

// Is reports ErrStatusNotOK as the target of every StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatusNotOK
}
