package thriftwire

// Buffer is an owned, growable byte buffer that supports detaching a
// prefix by reference. BufferReader consumes one; the detached slices
// share the backing array, with the garbage collector standing in for
// reference counting.
type Buffer struct {
	b []byte
}

// NewBuffer wraps b. Ownership of b transfers to the Buffer; callers
// must not mutate it afterwards.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{b: b}
}

// Window returns the currently addressable remainder of the buffer. It
// must be re-acquired after every Advance or SplitTo.
func (b *Buffer) Window() []byte {
	return b.b
}

// Len returns the number of unconsumed bytes.
func (b *Buffer) Len() int {
	return len(b.b)
}

// Advance consumes the first n bytes.
func (b *Buffer) Advance(n int) {
	b.b = b.b[n:]
}

// SplitTo detaches the first n bytes as an independently owned slice
// without copying. The three-index slice pins the detached slice's
// capacity so appends to it can never reach into the remainder.
func (b *Buffer) SplitTo(n int) []byte {
	head := b.b[:n:n]
	b.b = b.b[n:]
	return head
}

// Write appends p, growing the buffer; Buffer therefore satisfies
// io.Writer, so it can be filled straight from an io.Copy or
// ReadFrom off a connection.
func (b *Buffer) Write(p []byte) (int, error) {
	b.b = append(b.b, p...)
	return len(p), nil
}
