package dyml

import (
	"bytes"
	"io"

	"github.com/KimNorgaard/go-dyml/internal/formatter"
	"github.com/KimNorgaard/go-dyml/internal/marshaler"
)

// Marshal returns the dyml encoding of v.
//
// The top-level value must be a struct, a map with string keys or a slice.
// Struct fields are named like in Decode and honor the `dyml:",omitempty"`
// option. Map keys are written in sorted order. Strings that would not read
// back verbatim are double quoted, and types implementing scalar.Formatter
// write their own value text. Nil pointers, maps and slices produce a key
// without a value.
//
// IndentWidth, SequenceMarker, CompactSequences and MaxDepth apply to the
// output. Decoding it with the same options yields v again.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encoder writes dyml values to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the dyml encoding of v to the stream.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	lines, err := marshaler.Marshal(v, marshaler.Config{
		Marker:   o.lexer.SequenceMarker,
		Compact:  o.lexer.CompactSequences,
		MaxDepth: o.maxDepth,
	})
	if err != nil {
		return err
	}

	f := formatter.New(e.w, o.lexer.IndentWidth, o.lexer.SequenceMarker, o.lexer.CompactSequences)
	for _, ln := range lines {
		if err := f.WriteLine(ln); err != nil {
			return err
		}
	}
	if o.logger != nil {
		o.logger.Debug("dyml: encoded value", "rows", len(lines), "bytes", f.Written())
	}
	return nil
}
