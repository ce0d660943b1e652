package thriftwire

// ChainWriter serializes with the same wire encoding as BufferWriter,
// but into a ChainBuffer, which lets it transfer large payloads by
// reference: a string or bytes value at or above the zero-copy
// threshold is spliced into the chain as its own segment instead of
// being copied into the tail block. After a splice the writer
// re-acquires a fresh window over the chain's new tail, so a single
// message may straddle many non-contiguous regions; downstream
// transmission uses ChainBuffer.Buffers for vectored writes.
//
// The tail block must be reserved up front for the value's total size
// minus its zero-copy bytes, both as reported by a Sizer constructed
// with the same zeroCopy flag. As with BufferWriter, an undersized
// reservation panics.
type ChainWriter struct {
	BufferWriter
	chain       *ChainBuffer
	zeroCopy    bool
	threshold   int
	zeroCopyLen int
}

var _ WriteProtocol = (*ChainWriter)(nil)

// NewChainWriter returns a writer over chain's current window. The
// threshold is snapshotted from ZeroCopyThreshold.
func NewChainWriter(chain *ChainBuffer, zeroCopy bool) *ChainWriter {
	return &ChainWriter{
		BufferWriter: BufferWriter{raw: chain.Window()},
		chain:        chain,
		zeroCopy:     zeroCopy,
		threshold:    ZeroCopyThreshold,
	}
}

// WriteMessageBegin is redeclared so the message name goes through
// this writer's WriteString and stays eligible for splicing.
func (w *ChainWriter) WriteMessageBegin(h MessageHeader) error {
	if err := w.WriteI32(int32(version1 | uint32(h.Type))); err != nil {
		return err
	}
	if err := w.WriteString(h.Name); err != nil {
		return err
	}
	return w.WriteI32(h.SeqID)
}

func (w *ChainWriter) WriteString(v string) error {
	if err := w.WriteI32(int32(len(v))); err != nil {
		return err
	}
	if w.zeroCopy && len(v) >= w.threshold {
		w.splice(unsafeBytes(v))
		return nil
	}
	copy(w.raw[w.off:], v)
	w.off += len(v)
	return nil
}

func (w *ChainWriter) WriteBytes(v []byte) error {
	if err := w.WriteI32(int32(len(v))); err != nil {
		return err
	}
	if w.zeroCopy && len(v) >= w.threshold {
		w.splice(v)
		return nil
	}
	copy(w.raw[w.off:], v)
	w.off += len(v)
	return nil
}

// splice commits the already-written prefix of the current window,
// appends seg to the chain by reference, and re-acquires a window over
// the new tail. The old window must not be touched again.
func (w *ChainWriter) splice(seg []byte) {
	w.chain.Commit(w.off)
	w.chain.Append(seg)
	w.raw = w.chain.Window()
	w.off = 0
	w.zeroCopyLen += len(seg)
}

// Flush commits the written prefix of the current window so the chain
// is complete. It must be called once after the last write and before
// the chain is read or transmitted.
func (w *ChainWriter) Flush() error {
	w.chain.Commit(w.off)
	w.raw = w.chain.Window()
	w.off = 0
	return nil
}

// ZeroCopyLength reports the payload bytes this writer has transferred
// by reference so far.
func (w *ChainWriter) ZeroCopyLength() int { return w.zeroCopyLen }
