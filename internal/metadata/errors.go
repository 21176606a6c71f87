package metadata

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a title search produced zero results.
var ErrNotFound = errors.New("no matching movie")

// ErrorCode classifies a metadata lookup failure.
type ErrorCode string

const (
	// CodeNotFound marks an empty search result.
	CodeNotFound ErrorCode = "not_found"
	// CodeNetwork marks a transport failure or timeout.
	CodeNetwork ErrorCode = "network"
	// CodeMalformed marks a response missing expected fields.
	CodeMalformed ErrorCode = "malformed"
)

// Error wraps an upstream failure with the operation that produced it.
// Cascade callers treat every Error as recoverable; only the initial title
// resolution surfaces one to the user.
type Error struct {
	Op   string
	Code ErrorCode
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) match any not_found Error even when
// the wrapped error differs.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Code == CodeNotFound
}
