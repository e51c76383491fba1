package token

// Kind is the kind of a scanned line.
type Kind string

const (
	// Special lines
	ILLEGAL Kind = "ILLEGAL" // malformed line, Msg holds the reason
	EOF     Kind = "EOF"     // end of input

	ENTRY Kind = "ENTRY" // key: value, key:, or a bare value
	ITEM  Kind = "ITEM"  // - value, - key: value
)

// Span locates a run of bytes inside the document buffer.
// The zero Span is empty and marks absent text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether s covers no bytes.
func (s Span) Empty() bool { return s.End <= s.Start }

// Line is one logical line produced by the lexer.
type Line struct {
	Kind   Kind
	Level  int
	Key    Span
	Value  Span
	Line   int // 1-based physical line number
	Column int // 1-based column of the first content byte
	Msg    string
}
