package dyml

import (
	"github.com/KimNorgaard/go-dyml/internal/buffer"
	"github.com/KimNorgaard/go-dyml/internal/parser"
)

// Document is a parsed document. It is immutable once Parse returns and
// safe for concurrent use by multiple goroutines, provided a borrowed input
// buffer is not modified.
type Document struct {
	buf  *buffer.Buffer
	tbl  *parser.Table
	opts *options
}

// Row is one parsed line of a document. Absent text is the empty string; a
// present key or value is never empty.
type Row struct {
	Level int
	Key   string
	Value string
}

// Root returns the synthetic node above the document's level 0 rows.
func (d *Document) Root() Node {
	return Node{doc: d, idx: parser.Root}
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return d.tbl.Len()
}

// Row returns row i in document order.
func (d *Document) Row(i int) Row {
	r := d.tbl.Row(i)
	return Row{Level: r.Level, Key: d.buf.Text(r.Key), Value: d.buf.Text(r.Value)}
}

// Rows returns every row in document order.
func (d *Document) Rows() []Row {
	rows := make([]Row, d.tbl.Len())
	for i := range rows {
		rows[i] = d.Row(i)
	}
	return rows
}

// Node returns the node for row i.
func (d *Document) Node(i int) Node {
	if i < 0 || i >= d.tbl.Len() {
		return Node{}
	}
	return Node{doc: d, idx: i}
}

// Managed reports whether the document owns a copy of its input.
func (d *Document) Managed() bool {
	return d.buf.Owned()
}

// Verify reports ErrBufferModified when the document borrows its input and
// the caller changed that input after parsing. Text read from a document
// that fails verification is not meaningful.
func (d *Document) Verify() error {
	return d.buf.Verify()
}
