package service

import (
	"errors"
	"fmt"
)

// ErrNoToken indicates an authenticated call was attempted with no stored token.
var ErrNoToken = errors.New("not logged in")

// Error is a backend rejection: a non-2xx response whose body carries a
// reason string in the error field.
type Error struct {
	Status int    // HTTP status code
	Reason string // backend reason string, may be empty
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return e.Reason
}

// AsError unwraps err into a backend *Error, or nil.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
