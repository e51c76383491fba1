// Package buffer holds the text a document was parsed from, either borrowed
// from the caller or owned as a private copy.
package buffer

import (
	"github.com/cespare/xxhash/v2"

	"github.com/KimNorgaard/go-dyml/errors"
	"github.com/KimNorgaard/go-dyml/internal/token"
)

// Buffer is the single source of bytes every span of a document refers to.
type Buffer struct {
	data  []byte
	owned bool
	sum   uint64 // fingerprint of a borrowed buffer at capture time
}

// Borrow returns a Buffer that refers to b without copying it. The caller
// must keep b alive and unmodified for as long as the buffer is in use.
func Borrow(b []byte) *Buffer {
	return &Buffer{data: b, sum: xxhash.Sum64(b)}
}

// Own returns a Buffer holding a private copy of b.
func Own(b []byte) *Buffer {
	data := make([]byte, len(b))
	copy(data, b)
	return &Buffer{data: data, owned: true}
}

// Owned reports whether the buffer holds its own copy of the text.
func (b *Buffer) Owned() bool { return b.owned }

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Data returns the whole buffer. The result must not be modified.
func (b *Buffer) Data() []byte { return b.data }

// Bytes returns the bytes covered by s. The slice aliases the buffer and is
// capped so appending to it cannot overwrite the buffer.
func (b *Buffer) Bytes(s token.Span) []byte {
	if s.Empty() {
		return nil
	}
	return b.data[s.Start:s.End:s.End]
}

// Text returns a copy of the bytes covered by s as a string.
func (b *Buffer) Text(s token.Span) string {
	if s.Empty() {
		return ""
	}
	return string(b.data[s.Start:s.End])
}

// Verify checks that a borrowed buffer still holds the bytes it was captured
// with. An owned buffer always verifies.
func (b *Buffer) Verify() error {
	if b.owned {
		return nil
	}
	if xxhash.Sum64(b.data) != b.sum {
		return errors.ErrBufferModified
	}
	return nil
}
