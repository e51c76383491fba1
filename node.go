package dyml

import (
	"fmt"
	"iter"

	"github.com/KimNorgaard/go-dyml/errors"
	"github.com/KimNorgaard/go-dyml/internal/parser"
)

// Node is a read-only view of one row of a Document, or of the document's
// synthetic root. Nodes are small values; copy them freely.
//
// The zero Node is the "not found" node returned by failed lookups. It is
// safe to query: it has no key, no value and no children, so lookups can be
// chained and checked once at the end with Valid.
type Node struct {
	doc *Document
	idx int
}

// Valid reports whether n refers to a node of a document.
func (n Node) Valid() bool { return n.doc != nil }

// IsRoot reports whether n is the root of its document.
func (n Node) IsRoot() bool { return n.doc != nil && n.idx == parser.Root }

// Document returns the document n belongs to, nil for the zero Node.
func (n Node) Document() *Document { return n.doc }

func (n Node) row() (parser.Row, bool) {
	if n.doc == nil || n.idx == parser.Root {
		return parser.Row{}, false
	}
	return n.doc.tbl.Row(n.idx), true
}

// Key returns the node's key, or "" when it has none.
func (n Node) Key() string {
	r, ok := n.row()
	if !ok {
		return ""
	}
	return n.doc.buf.Text(r.Key)
}

// HasKey reports whether the node has a key.
func (n Node) HasKey() bool {
	r, ok := n.row()
	return ok && !r.Key.Empty()
}

// Value returns the node's raw value text, or "" when it has none.
func (n Node) Value() string {
	r, ok := n.row()
	if !ok {
		return ""
	}
	return n.doc.buf.Text(r.Value)
}

// HasValue reports whether the node has a value.
func (n Node) HasValue() bool {
	r, ok := n.row()
	return ok && !r.Value.Empty()
}

// Level returns the node's indentation level. The root and the zero Node
// are at level -1.
func (n Node) Level() int {
	r, ok := n.row()
	if !ok {
		return -1
	}
	return r.Level
}

// Line returns the 1-based source line of the node, 0 for the root and the
// zero Node.
func (n Node) Line() int {
	r, _ := n.row()
	return r.Line
}

// IsItem reports whether the node was written as a sequence item.
func (n Node) IsItem() bool {
	r, _ := n.row()
	return r.Item
}

func (n Node) kids() []int {
	if n.doc == nil {
		return nil
	}
	return n.doc.tbl.Children(n.idx)
}

// Children returns the number of children.
func (n Node) Children() int { return len(n.kids()) }

// Child returns the i-th child. It fails with an *IndexOutOfRangeError
// when i is outside [0, Children()).
func (n Node) Child(i int) (Node, error) {
	kids := n.kids()
	if i < 0 || i >= len(kids) {
		return Node{}, &errors.IndexError{Index: i, Len: len(kids)}
	}
	return Node{doc: n.doc, idx: kids[i]}, nil
}

// At returns the i-th child, or the zero Node when i is out of range.
func (n Node) At(i int) Node {
	c, _ := n.Child(i)
	return c
}

// Get returns the first child whose key equals key, or the zero Node.
func (n Node) Get(key string) Node {
	for _, k := range n.kids() {
		span := n.doc.tbl.Row(k).Key
		if !span.Empty() && string(n.doc.buf.Bytes(span)) == key {
			return Node{doc: n.doc, idx: k}
		}
	}
	return Node{}
}

// Lookup is like Get but reports a missing key as ErrKeyNotFound.
func (n Node) Lookup(key string) (Node, error) {
	c := n.Get(key)
	if !c.Valid() {
		return Node{}, fmt.Errorf("%w: %q", errors.ErrKeyNotFound, key)
	}
	return c, nil
}

// Path follows keys from n, one Get per key.
func (n Node) Path(keys ...string) Node {
	for _, k := range keys {
		n = n.Get(k)
	}
	return n
}

// Parent returns the node's parent. The parent of a level 0 node is the
// root; the root and the zero Node have no parent.
func (n Node) Parent() Node {
	if _, ok := n.row(); !ok {
		return Node{}
	}
	return Node{doc: n.doc, idx: n.doc.tbl.Parent(n.idx)}
}

// All returns an iterator over the node's children and their positions.
func (n Node) All() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		for i, k := range n.kids() {
			if !yield(i, Node{doc: n.doc, idx: k}) {
				return
			}
		}
	}
}

// String returns the node formatted as a single source line.
func (n Node) String() string {
	switch {
	case !n.Valid():
		return "<invalid>"
	case n.IsRoot():
		return "<root>"
	}
	var s string
	if n.IsItem() {
		s = "- "
	}
	if n.HasKey() {
		s += n.Key() + ":"
		if n.HasValue() {
			s += " "
		}
	}
	return s + n.Value()
}
