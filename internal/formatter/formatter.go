package formatter

import (
	"io"
	"strings"
)

const (
	defaultIndent = 2
	defaultMarker = "-"
)

// Line is one row to be written.
type Line struct {
	Level int
	Item  bool
	Key   string
	Value string
}

// Formatter writes rows back out as indented text.
type Formatter struct {
	w       io.Writer
	indent  string
	marker  string
	compact bool
	folds   []int // levels of open compact items
	n       int64
}

// New returns a new formatter that writes to w. With compact set, the
// lines that follow a "- key: value" item are indented one extra level,
// the way they are written in source.
func New(w io.Writer, indentSpaces int, marker string, compact bool) *Formatter {
	if indentSpaces <= 0 {
		indentSpaces = defaultIndent
	}
	if marker == "" {
		marker = defaultMarker
	}
	return &Formatter{
		w:       w,
		indent:  strings.Repeat(" ", indentSpaces),
		marker:  marker,
		compact: compact,
	}
}

// Written returns the number of bytes written so far.
func (f *Formatter) Written() int64 { return f.n }

// WriteLine writes one row.
func (f *Formatter) WriteLine(ln Line) error {
	depth := ln.Level
	if f.compact {
		for len(f.folds) > 0 {
			top := f.folds[len(f.folds)-1]
			if ln.Level > top || (ln.Level == top && !ln.Item) {
				break
			}
			f.folds = f.folds[:len(f.folds)-1]
		}
		depth += len(f.folds)
		if ln.Item && ln.Key != "" {
			f.folds = append(f.folds, ln.Level)
		}
	}

	var b strings.Builder
	for range depth {
		b.WriteString(f.indent)
	}
	if ln.Item {
		b.WriteString(f.marker)
		if ln.Key != "" || ln.Value != "" {
			b.WriteByte(' ')
		}
	}
	if ln.Key != "" || f.needsColon(ln) {
		b.WriteString(ln.Key)
		b.WriteByte(':')
		if ln.Value != "" {
			b.WriteByte(' ')
		}
	}
	b.WriteString(ln.Value)
	b.WriteByte('\n')

	n, err := io.WriteString(f.w, b.String())
	f.n += int64(n)
	return err
}

// needsColon reports whether a row without a key must be written with an
// empty key so that its value is not read back as a key or an item.
func (f *Formatter) needsColon(ln Line) bool {
	if ln.Key != "" {
		return false
	}
	if ln.Value == "" {
		return !ln.Item
	}
	if !ln.Item && strings.HasPrefix(ln.Value, f.marker) {
		rest := ln.Value[len(f.marker):]
		if rest == "" || isSpace(rest[0]) {
			return true
		}
	}
	return splits(ln.Value)
}

// splits reports whether s holds an unquoted ':' followed by whitespace or
// the end of the text, the separator between a key and a value.
func splits(s string) bool {
	var quote byte
	for j := 0; j < len(s); j++ {
		c := s[j]
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
			if j == 0 || strings.IndexByte(" \t[,:", s[j-1]) >= 0 {
				quote = c
			}
		case c == ':':
			if j+1 == len(s) || isSpace(s[j+1]) {
				return true
			}
		}
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
