// Package scalar converts the raw value text of dyml nodes into Go values.
//
// The parser only ever yields text. Types that know how to read themselves
// from that text implement Scalar; Value and Read apply them to a node:
//
//	fov, err := scalar.Read[scalar.Float](doc.Root().Path("GeneralSettings", "FieldOfView"))
//
//	var pivot scalar.Vec3
//	err = scalar.Value(node.Get("PivotPosition"), &pivot)
package scalar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-dyml/internal/lexer"
)

// ErrNoValue is returned when a node carries no value text.
var ErrNoValue = errors.New("dyml: node has no value")

// Valuer is the view of a node the adapters need. dyml.Node implements it.
type Valuer interface {
	Value() string
	HasValue() bool
}

// Scalar is implemented by types that can parse themselves from value text.
type Scalar interface {
	ParseScalar(text string) error
}

// Formatter is implemented by types that write themselves as value text.
// The text must read back through the type's ParseScalar.
type Formatter interface {
	FormatScalar() string
}

// Error reports value text that could not be parsed as Kind.
type Error struct {
	Text string
	Kind string
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("dyml: cannot parse %q as %s", e.Text, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Value parses the value of n into out.
func Value(n Valuer, out Scalar) error {
	if !n.HasValue() {
		return ErrNoValue
	}
	return out.ParseScalar(n.Value())
}

// Read parses the value of n as a T.
func Read[T any, PT interface {
	*T
	Scalar
}](n Valuer) (T, error) {
	var v T
	err := Value(n, PT(&v))
	return v, err
}

// Text is value text with surrounding quotes removed.
type Text string

func (t *Text) ParseScalar(s string) error {
	*t = Text(Unquote(s))
	return nil
}

func (t Text) FormatScalar() string { return Quote(string(t)) }

// Int is a base 10 integer.
type Int int

func (i *Int) ParseScalar(s string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, strconv.IntSize)
	if err != nil {
		return &Error{Text: s, Kind: "integer", Err: unwrapNum(err)}
	}
	*i = Int(v)
	return nil
}

func (i Int) FormatScalar() string { return strconv.Itoa(int(i)) }

// Float is a single precision decimal number.
type Float float32

func (f *Float) ParseScalar(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return &Error{Text: s, Kind: "float", Err: unwrapNum(err)}
	}
	*f = Float(v)
	return nil
}

func (f Float) FormatScalar() string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

// Bool is true or false in any form strconv.ParseBool accepts.
type Bool bool

func (b *Bool) ParseScalar(s string) error {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return &Error{Text: s, Kind: "boolean", Err: unwrapNum(err)}
	}
	*b = Bool(v)
	return nil
}

func (b Bool) FormatScalar() string { return strconv.FormatBool(bool(b)) }

// Vec3 is a three component vector written as [x,y,z].
type Vec3 struct {
	X, Y, Z float32
}

func (v *Vec3) ParseScalar(s string) error {
	parts, err := SplitList(s)
	if err != nil {
		return &Error{Text: s, Kind: "vector", Err: err}
	}
	if len(parts) != 3 {
		return &Error{Text: s, Kind: "vector", Err: fmt.Errorf("want 3 components, got %d", len(parts))}
	}
	var c [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return &Error{Text: s, Kind: "vector", Err: unwrapNum(err)}
		}
		c[i] = float32(f)
	}
	*v = Vec3{X: c[0], Y: c[1], Z: c[2]}
	return nil
}

func (v Vec3) String() string {
	return v.FormatScalar()
}

func (v Vec3) FormatScalar() string {
	f := func(c float32) string { return strconv.FormatFloat(float64(c), 'g', -1, 32) }
	return "[" + f(v.X) + ", " + f(v.Y) + ", " + f(v.Z) + "]"
}

// Unquote removes the quotes around a double or single quoted value.
// Double quoted text has its escapes interpreted; in single quoted text ''
// stands for one quote. Other text is returned unchanged.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	switch {
	case s[0] == '"' && s[len(s)-1] == '"':
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	case s[0] == '\'' && s[len(s)-1] == '\'':
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	return s
}

// SplitList splits an inline array "[a, b, c]" into its trimmed elements.
// Commas inside quoted elements do not split, and the elements keep their
// quotes.
func SplitList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	spans, ok := lexer.Elements([]byte(s))
	if !ok {
		return nil, errors.New("missing brackets")
	}
	if len(spans) == 0 {
		return nil, nil
	}
	parts := make([]string, len(spans))
	for i, sp := range spans {
		parts[i] = s[sp.Start:sp.End]
	}
	return parts, nil
}

// Quote returns s double quoted when it would not read back verbatim as
// value text, and s unchanged otherwise. Unquote reverses it.
func Quote(s string) string {
	if NeedsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

// NeedsQuote reports whether s must be quoted to be written as a value:
// it is empty, has surrounding whitespace, holds a comment, escape or line
// break, reads as a key separator, or starts like a quoted run or an array.
func NeedsQuote(s string) bool {
	switch {
	case s == "",
		s != strings.TrimSpace(s),
		strings.ContainsAny(s, "#\\\n\r"),
		strings.Contains(s, ": "),
		strings.HasSuffix(s, ":"),
		strings.ContainsRune(`"'[`, rune(s[0])):
		return true
	}
	return false
}

// unwrapNum drops the redundant function and input from strconv errors.
func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
