package lexer

import (
	"bytes"
	"fmt"

	"github.com/KimNorgaard/go-dyml/internal/token"
)

// Config selects the dialect the lexer accepts.
type Config struct {
	IndentWidth      int    // spaces per indentation level
	SequenceMarker   string // item prefix, "" disables sequence items
	CompactSequences bool   // fold "- key: value" continuation lines into the item's level
	InlineArrays     bool   // emit child items for "[a, b, c]" values
}

// DefaultConfig returns the dialect used when no options are given.
func DefaultConfig() Config {
	return Config{
		IndentWidth:      2,
		SequenceMarker:   "-",
		CompactSequences: true,
	}
}

// Lexer splits a buffer into logical lines. It is single pass: once a line
// has been returned it cannot be read again.
type Lexer struct {
	input []byte
	cfg   Config
	pos   int // start of the next physical line
	line  int // number of the last physical line read

	folds   []int        // raw levels of open compact sequence items
	pending []token.Line // queued inline array elements
}

// New creates and returns a new Lexer.
func New(input []byte, cfg Config) *Lexer {
	if cfg.IndentWidth <= 0 {
		cfg.IndentWidth = DefaultConfig().IndentWidth
	}
	return &Lexer{input: input, cfg: cfg}
}

// NextLine returns the next logical line. Blank and comment-only lines are
// skipped. At the end of the input it returns a line of kind EOF, and a
// malformed line is returned with kind ILLEGAL.
func (l *Lexer) NextLine() token.Line {
	if len(l.pending) > 0 {
		ln := l.pending[0]
		l.pending = l.pending[1:]
		return ln
	}

	for l.pos < len(l.input) {
		start := l.pos
		end := len(l.input)
		if i := bytes.IndexByte(l.input[start:], '\n'); i >= 0 {
			end = start + i
			l.pos = end + 1
		} else {
			l.pos = end
		}
		l.line++
		if end > start && l.input[end-1] == '\r' {
			end--
		}

		i := start
		for i < end && l.input[i] == ' ' {
			i++
		}
		cend := trimRight(l.input, i, l.stripComment(i, end))
		if cend <= i {
			continue // blank or comment only
		}
		if l.input[i] == '\t' {
			return l.illegal(i-start+1, "tab character in indentation")
		}
		spaces := i - start
		if spaces%l.cfg.IndentWidth != 0 {
			return l.illegal(i-start+1, fmt.Sprintf("indentation of %d spaces is not a multiple of %d", spaces, l.cfg.IndentWidth))
		}
		return l.content(spaces/l.cfg.IndentWidth, i, cend, i-start+1)
	}

	return token.Line{Kind: token.EOF, Line: l.line + 1, Column: 1}
}

// content builds the line for the content bytes input[i:end] found at the
// given raw indentation level.
func (l *Lexer) content(raw, i, end, col int) token.Line {
	level := raw
	if l.cfg.CompactSequences {
		for len(l.folds) > 0 && raw <= l.folds[len(l.folds)-1] {
			l.folds = l.folds[:len(l.folds)-1]
		}
		level = raw - len(l.folds)
	}

	ln := token.Line{Kind: token.ENTRY, Level: level, Line: l.line, Column: col}

	if m := l.cfg.SequenceMarker; m != "" && bytes.HasPrefix(l.input[i:end], []byte(m)) {
		after := i + len(m)
		if after == end || isSpace(l.input[after]) {
			ln.Kind = token.ITEM
			i = after
		}
	}

	ln.Key, ln.Value = l.split(i, end)

	if ln.Kind == token.ITEM && l.cfg.CompactSequences && !ln.Key.Empty() {
		l.folds = append(l.folds, raw)
	}
	if l.cfg.InlineArrays {
		l.queueElements(ln)
	}
	return ln
}

// split divides input[i:end] on the first unquoted ':' that is followed by
// whitespace or the end of the line. Without a separator the whole content is
// the value.
func (l *Lexer) split(i, end int) (key, value token.Span) {
	var quote byte
	for j := i; j < end; j++ {
		c := l.input[j]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				j++
			} else if c == quote {
				quote = 0
			}
		case c == '\\':
			j++
		case c == '"' || c == '\'':
			if opensQuote(l.input, i, j) {
				quote = c
			}
		case c == ':':
			if j+1 == end || isSpace(l.input[j+1]) {
				return trim(l.input, i, j), trim(l.input, j+1, end)
			}
		}
	}
	return token.Span{}, trim(l.input, i, end)
}

// stripComment returns the end of the content that precedes the first
// unescaped, unquoted '#' in input[i:end].
func (l *Lexer) stripComment(i, end int) int {
	var quote byte
	for j := i; j < end; j++ {
		c := l.input[j]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				j++
			} else if c == quote {
				quote = 0
			}
		case c == '\\':
			j++
		case c == '"' || c == '\'':
			if opensQuote(l.input, i, j) {
				quote = c
			}
		case c == '#':
			return j
		}
	}
	return end
}

// queueElements queues one keyless item per element of an inline array value.
func (l *Lexer) queueElements(parent token.Line) {
	v := parent.Value
	elems, ok := Elements(l.input[v.Start:v.End])
	if !ok {
		return
	}
	for _, e := range elems {
		start := v.Start + e.Start
		l.pending = append(l.pending, token.Line{
			Kind:   token.ITEM,
			Level:  parent.Level + 1,
			Value:  token.Span{Start: start, End: v.Start + e.End},
			Line:   parent.Line,
			Column: start - l.lineStart(start) + 1,
		})
	}
}

// Elements returns the spans, relative to s, of the comma separated
// elements of an inline array "[a, b, c]". Commas inside quoted runs do not
// split and empty elements are dropped. ok is false when s is not enclosed
// in brackets.
func Elements(s []byte) (elems []token.Span, ok bool) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	var quote byte
	start := 1
	emit := func(end int) {
		if e := trim(s, start, end); !e.Empty() {
			elems = append(elems, e)
		}
	}
	for j := start; j < len(s)-1; j++ {
		c := s[j]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				j++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			if opensQuote(s, start, j) {
				quote = c
			}
		case c == ',':
			emit(j)
			start = j + 1
		}
	}
	emit(len(s) - 1)
	return elems, true
}

// lineStart returns the offset of the first byte of the line holding off.
func (l *Lexer) lineStart(off int) int {
	return bytes.LastIndexByte(l.input[:off], '\n') + 1
}

// opensQuote reports whether a quote at j starts a quoted run: only at the
// start of the content or after whitespace and separators.
func opensQuote(in []byte, i, j int) bool {
	if j == i {
		return true
	}
	switch in[j-1] {
	case ' ', '\t', '[', ',', ':':
		return true
	}
	return false
}

func trim(in []byte, i, end int) token.Span {
	for i < end && isSpace(in[i]) {
		i++
	}
	end = trimRight(in, i, end)
	if end <= i {
		return token.Span{}
	}
	return token.Span{Start: i, End: end}
}

func trimRight(in []byte, i, end int) int {
	for end > i && isSpace(in[end-1]) {
		end--
	}
	return end
}

func (l *Lexer) illegal(col int, msg string) token.Line {
	return token.Line{Kind: token.ILLEGAL, Line: l.line, Column: col, Msg: msg}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
