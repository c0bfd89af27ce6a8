package diagnose

import (
	"errors"
	"fmt"
)

// Category classifies a DiagnoseError.
type Category string

// ErrInvalidInput means Diagnose was called with arguments it cannot act on.
const ErrInvalidInput Category = "invalid_input"

// DiagnoseError is only raised for misuse of Diagnose. Collaborator errors,
// such as a failing audit fetch, are returned as-is and never converted.
type DiagnoseError struct {
	Category    Category
	Message     string
	InterfaceID string
}

func (e *DiagnoseError) Error() string {
	if e.InterfaceID == "" {
		return fmt.Sprintf("%s: %s", e.Category, e.Message)
	}
	return fmt.Sprintf("%s: %s (interface: %s)", e.Category, e.Message, e.InterfaceID)
}

// NewDiagnoseError builds a DiagnoseError for interfaceID, which may be empty.
func NewDiagnoseError(category Category, message, interfaceID string) *DiagnoseError {
	return &DiagnoseError{Category: category, Message: message, InterfaceID: interfaceID}
}

// IsErrorCategory reports whether err, or anything it wraps, is a
// DiagnoseError of the given category.
func IsErrorCategory(err error, category Category) bool {
	var e *DiagnoseError
	return errors.As(err, &e) && e.Category == category
}
