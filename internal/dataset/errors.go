package dataset

import (
	"errors"
	"fmt"
)

// NotFoundError indicates an unknown dataset or column.
type NotFoundError struct {
	Kind string // "dataset" or "column"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// ValidationError indicates a bad operator, operand, or cell type, such
// as a numeric comparison against a value that is not a number.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// EmptyError indicates an aggregation over zero non-null values for an
// operation that has no defined result on the empty set.
type EmptyError struct {
	Column    string
	Operation string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("%s of column %q: no non-null values", e.Operation, e.Column)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
