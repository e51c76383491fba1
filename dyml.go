package dyml

import (
	"fmt"
	"io"
	"time"

	"github.com/KimNorgaard/go-dyml/internal/buffer"
	"github.com/KimNorgaard/go-dyml/internal/lexer"
	"github.com/KimNorgaard/go-dyml/internal/parser"
)

// Parse parses data into a Document.
//
// By default the document borrows data: the caller must keep it alive and
// must not modify it while the document or any of its nodes are in use.
// Document.Verify reports whether that contract still holds. With the
// Managed option the document copies data instead.
//
// Parsing is all or nothing. Empty input fails with ErrEmptyInput and a
// malformed indentation with a *MalformedIndentError; no document is
// returned in either case.
func Parse(data []byte, opts ...Option) (*Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	start := time.Now()
	var buf *buffer.Buffer
	if o.managed {
		buf = buffer.Own(data)
	} else {
		buf = buffer.Borrow(data)
	}

	p := parser.New(lexer.New(buf.Data(), o.lexer))
	tbl := p.Parse()
	if err := p.Err(); err != nil {
		if o.logger != nil {
			o.logger.Debug("dyml: parse failed", "error", err)
		}
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("dyml: parsed document",
			"bytes", buf.Len(),
			"rows", tbl.Len(),
			"managed", buf.Owned(),
			"elapsed", time.Since(start))
	}
	return &Document{buf: buf, tbl: tbl, opts: o}, nil
}

// ParseString parses s into a Document. The document always owns its text.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse([]byte(s), append(opts[:len(opts):len(opts)], Managed())...)
}

// ParseReader reads r to the end and parses the result. The document owns
// the bytes it read.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("dyml: ParseReader(nil reader)")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, append(opts[:len(opts):len(opts)], Managed())...)
}

// Unmarshal parses data and stores the root of the document in the value
// pointed to by v. See Decode for the mapping rules.
func Unmarshal(data []byte, v any, opts ...Option) error {
	doc, err := Parse(data, opts...)
	if err != nil {
		return err
	}
	return doc.Root().Decode(v)
}
