package errors

import (
	"net/http"
	"strconv"
)

// FormatError is a validation failure. It keeps the numeric code of the rule
// that rejected the input, which legacy clients receive on the wire.
type FormatError struct {
	*BaseError
	kind int
}

// Kind returns the numeric code of the violated validation rule.
func (e *FormatError) Kind() int {
	return e.kind
}

// NewUserFormatError creates a validation error for user credential input.
func NewUserFormatError(kind int, kindName string) *FormatError {
	return &FormatError{
		BaseError: NewBaseError(
			http.StatusBadRequest,
			kindName,
			"User data is not valid",
			strconv.Itoa(kind),
		),
		kind: kind,
	}
}

// NewMeetFormatError creates a validation error for meet creation input.
func NewMeetFormatError(kind int, kindName string) *FormatError {
	return &FormatError{
		BaseError: NewBaseError(
			http.StatusBadRequest,
			kindName,
			"Meet creation data is not valid",
			strconv.Itoa(kind),
		),
		kind: kind,
	}
}
