package dyml

import (
	"strconv"

	"github.com/KimNorgaard/go-dyml/errors"
)

// Error kinds, usable with errors.Is.
var (
	ErrEmptyInput      = errors.ErrEmptyInput
	ErrMalformedIndent = errors.ErrMalformedIndent
	ErrIndexOutOfRange = errors.ErrIndexOutOfRange
	ErrKeyNotFound     = errors.ErrKeyNotFound
	ErrBufferModified  = errors.ErrBufferModified
)

// MalformedIndentError is returned by Parse when a line's indentation is
// not a whole number of units or jumps more than one level deeper than
// the line before it.
type MalformedIndentError = errors.ParseError

// IndexOutOfRangeError is returned by Node.Child for an index outside
// [0, Children()).
type IndexOutOfRangeError = errors.IndexError

// An UnmarshalTypeError describes a value that could not be decoded into
// a Go value of a specific type.
type UnmarshalTypeError struct {
	Value string // description of the node, "value", "mapping" or "sequence"
	Line  int
	Type  string
	Err   error
}

func (e *UnmarshalTypeError) Error() string {
	msg := "dyml: cannot unmarshal " + e.Value + " into Go value of type " + e.Type
	if e.Line > 0 {
		msg += " (line " + strconv.Itoa(e.Line) + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnmarshalTypeError) Unwrap() error { return e.Err }
