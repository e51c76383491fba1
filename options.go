package dyml

import (
	"fmt"
	"log/slog"

	"github.com/KimNorgaard/go-dyml/internal/lexer"
)

// Option configures parsing, decoding and formatting.
type Option func(*options) error

type options struct {
	managed  bool
	lexer    lexer.Config
	logger   *slog.Logger
	maxDepth int
}

const defaultMaxDepth = 1000

func newOptions(opts []Option) (*options, error) {
	o := &options{
		lexer:    lexer.DefaultConfig(),
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Managed makes the document keep its own copy of the input, so the caller
// may reuse or discard its buffer once Parse returns.
func Managed() Option {
	return func(o *options) error {
		o.managed = true
		return nil
	}
}

// IndentWidth sets the number of spaces that make up one indentation level.
// The default is 2. When formatting, it sets the emitted indentation.
//
// The width n must be a positive integer.
func IndentWidth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("dyml: indent width must be a positive integer")
		}
		o.lexer.IndentWidth = n
		return nil
	}
}

// SequenceMarker sets the prefix that marks a sequence item. The default is
// "-". An empty marker disables sequence items, so such lines are read as
// plain values.
func SequenceMarker(m string) Option {
	return func(o *options) error {
		for i := 0; i < len(m); i++ {
			switch m[i] {
			case ' ', '\t', '\n', '\r', '#', ':':
				return fmt.Errorf("dyml: invalid sequence marker %q", m)
			}
		}
		o.lexer.SequenceMarker = m
		return nil
	}
}

// CompactSequences controls whether the lines following a "- key: value"
// item that are indented one level deeper are read as siblings of the item
// line. It is enabled by default.
func CompactSequences(enabled bool) Option {
	return func(o *options) error {
		o.lexer.CompactSequences = enabled
		return nil
	}
}

// InlineArrays makes every "[a, b, c]" value produce one keyless child per
// element, in addition to keeping the raw value text.
func InlineArrays() Option {
	return func(o *options) error {
		o.lexer.InlineArrays = true
		return nil
	}
}

// WithLogger sets the logger that receives debug records about parsing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}

// MaxDepth sets the maximum nesting depth Decode descends into. This guards
// against stack exhaustion on deeply nested documents.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("dyml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
