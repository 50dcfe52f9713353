package colormodel

import (
	"errors"
	"fmt"
)

// ErrEmptyReferenceSet is matched by errors.Is for an empty named-color table.
var ErrEmptyReferenceSet = errors.New("empty reference color set")

// UnrecognizedFormatError is returned when a string matches no known color
// grammar.
type UnrecognizedFormatError struct {
	Input string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("unrecognized color format: %q", e.Input)
}

// UnknownModelError is returned when an explicitly requested model or format
// name is not supported.
type UnknownModelError struct {
	Name string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown color model: %q", e.Name)
}

// UnsupportedConversionError is returned when the conversion graph has no
// path between two models.
type UnsupportedConversionError struct {
	From, To Model
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("unsupported conversion: %s -> %s", e.From, e.To)
}

// EmptyReferenceSetError is returned by Closest when the table has no
// entries. It wraps ErrEmptyReferenceSet.
type EmptyReferenceSetError struct {
	Table string
}

func (e *EmptyReferenceSetError) Error() string {
	if e.Table == "" {
		return ErrEmptyReferenceSet.Error()
	}
	return fmt.Sprintf("%s: %q", ErrEmptyReferenceSet, e.Table)
}

func (e *EmptyReferenceSetError) Unwrap() error { return ErrEmptyReferenceSet }
