package dyml

import (
	"bytes"
	"io"

	"github.com/KimNorgaard/go-dyml/internal/formatter"
)

// WriteTo writes the document to w in canonical form: one row per line,
// indented with the document's indentation width, comments and blank lines
// dropped. Parsing the output with the same options yields the same rows.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cfg := d.opts.lexer
	f := formatter.New(w, cfg.IndentWidth, cfg.SequenceMarker, cfg.CompactSequences)
	prevLine := 0
	for _, r := range d.tbl.Rows() {
		// Inline array elements share the line of the array.
		if r.Line == prevLine {
			continue
		}
		prevLine = r.Line
		err := f.WriteLine(formatter.Line{
			Level: r.Level,
			Item:  r.Item,
			Key:   d.buf.Text(r.Key),
			Value: d.buf.Text(r.Value),
		})
		if err != nil {
			return f.Written(), err
		}
	}
	return f.Written(), nil
}

// Format parses data and returns it in canonical form.
func Format(data []byte, opts ...Option) ([]byte, error) {
	doc, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
