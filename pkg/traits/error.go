package traits

import (
	"fmt"
	"reflect"
)

// NotSequenceError indicates a type satisfies neither the buffer
// sequence contract nor one of the two primitive view cases, so no
// iteration type exists for it.
type NotSequenceError struct {
	Type reflect.Type
}

func (e *NotSequenceError) Error() string {
	if e.Type == nil {
		return "not a buffer sequence: <nil>"
	}
	return fmt.Sprintf("not a buffer sequence: %s", e.Type)
}

// NewNotSequenceError returns a NotSequenceError for t.
func NewNotSequenceError(t reflect.Type) *NotSequenceError {
	return &NotSequenceError{Type: t}
}
