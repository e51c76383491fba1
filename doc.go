/*
Package dyml parses a small, indentation-structured configuration dialect
that looks like YAML:

	# comments run to the end of the line
	GeneralSettings:
	  FieldOfView: 65.5
	  PivotPosition: [0.1, -0.2, 0.3]
	  Colors:
	    - red
	    - blue
	CamForces:
	  EmptyReloadLoop:
	    - Delay: 0.1
	      Force: [1, 2, 3]

Every non-blank line becomes one row holding its nesting level, an optional
key and an optional value. The hierarchy is derived from the levels alone:
the children of a row are the rows one level deeper that follow it, up to
the next row at its own level or above. The dialect is deliberately small;
anchors, tags, multi-document streams and block scalars are not supported.

The package offers two views of a parsed Document.

1. Rows

Rows returns the flat row table in document order. It is the authoritative
record of what was parsed:

	doc, err := dyml.Parse(data)
	if err != nil {
		// handle error
	}
	for _, r := range doc.Rows() {
		fmt.Println(r.Level, r.Key, r.Value)
	}

2. Nodes

Root returns the synthetic node above all top-level rows. Nodes are cheap
values that navigate the tree by key or position. A failed lookup returns the
zero Node rather than panicking, so lookups chain and are checked once:

	fov := doc.Root().Get("GeneralSettings").Get("FieldOfView")
	if !fov.Valid() {
		// missing
	}
	first := doc.Root().Path("GeneralSettings", "Colors").At(0).Value() // "red"

Values are always raw text. The scalar package turns text into numbers,
booleans and vectors, and Decode maps whole subtrees onto Go structs, slices
and maps.

# Buffer ownership

By default a Document borrows the bytes passed to Parse: the caller must keep
them unmodified for as long as the document is in use, and Document.Verify
reports a violation. The Managed option makes the document copy its input
instead. ParseString and ParseReader always produce documents that own their
text.

A Document is immutable after Parse returns and may be read from multiple
goroutines.
*/
package dyml
