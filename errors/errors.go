// Package errors defines the error values reported by the dyml parser.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input holds no bytes.
	ErrEmptyInput = errors.New("dyml: empty input")
	// ErrMalformedIndent is the kind of every indentation error.
	ErrMalformedIndent = errors.New("dyml: malformed indentation")
	// ErrIndexOutOfRange is returned for a child index outside the node's children.
	ErrIndexOutOfRange = errors.New("dyml: child index out of range")
	// ErrKeyNotFound is returned when no child carries the requested key.
	ErrKeyNotFound = errors.New("dyml: key not found")
	// ErrBufferModified is returned when a borrowed buffer changed after parsing.
	ErrBufferModified = errors.New("dyml: borrowed buffer was modified")
)

// ParseError represents a single error that occurred during parsing.
// It includes the position of the error and the kind it belongs to.
type ParseError struct {
	Kind    error
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dyml: parsing error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// IndexError reports a child index query beyond the available children.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dyml: child index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
