package thriftwire

import "net"

// ChainBuffer is a sequence of independently owned byte segments
// logically concatenated. It supports O(1) append of an externally
// owned segment, which is how a ChainWriter splices large payloads in
// without copying. Writes land in the current tail block; committed
// tail prefixes and spliced segments accumulate in order.
type ChainBuffer struct {
	segs [][]byte
	// tail's length is the committed byte count within the current
	// block; the region tail[len:cap] is the writable window.
	tail []byte
}

// Reserve ensures the current tail block has at least n writable
// bytes, starting a fresh block when it does not. Any committed bytes
// in the old tail are preserved as a segment.
func (c *ChainBuffer) Reserve(n int) {
	if cap(c.tail)-len(c.tail) >= n {
		return
	}
	if len(c.tail) > 0 {
		c.segs = append(c.segs, c.tail)
	}
	c.tail = make([]byte, 0, n)
}

// Window returns the writable region of the current tail block. It
// must be re-acquired after every Append or Reserve; stale windows
// alias memory the chain no longer writes to.
func (c *ChainBuffer) Window() []byte {
	return c.tail[len(c.tail):cap(c.tail)]
}

// Commit marks the first n bytes of the current window as written.
func (c *ChainBuffer) Commit(n int) {
	c.tail = c.tail[:len(c.tail)+n]
}

// Append splices seg into the chain by reference; ownership of seg's
// bytes transfers to the chain and the caller must not mutate them
// afterwards. The uncommitted remainder of the old tail block becomes
// the new tail.
func (c *ChainBuffer) Append(seg []byte) {
	rest := c.tail[len(c.tail):len(c.tail)]
	if len(c.tail) > 0 {
		c.segs = append(c.segs, c.tail)
	}
	c.segs = append(c.segs, seg)
	c.tail = rest
}

// Len returns the total committed bytes across all segments.
func (c *ChainBuffer) Len() int {
	n := len(c.tail)
	for _, s := range c.segs {
		n += len(s)
	}
	return n
}

// Buffers returns the chain's segments as a net.Buffers so a message
// straddling many regions can be sent with a single vectored write.
func (c *ChainBuffer) Buffers() net.Buffers {
	bufs := make(net.Buffers, 0, len(c.segs)+1)
	for _, s := range c.segs {
		bufs = append(bufs, s)
	}
	if len(c.tail) > 0 {
		bufs = append(bufs, c.tail)
	}
	return bufs
}

// Bytes concatenates the chain into a single flat slice. It copies;
// transports that can should prefer Buffers.
func (c *ChainBuffer) Bytes() []byte {
	out := make([]byte, 0, c.Len())
	for _, s := range c.segs {
		out = append(out, s...)
	}
	return append(out, c.tail...)
}
