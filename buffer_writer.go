package thriftwire

import (
	"encoding/binary"
	"math"
)

// BufferWriter serializes into a caller-supplied flat buffer via
// position-tracked stores, big-endian throughout. It performs no
// capacity checks of its own: the buffer must hold at least as many
// bytes as a Sizer pass over the same value reports, and an undersized
// buffer panics on the store that overruns it. Payload bytes are
// always copied into the flat region; this writer has no zero-copy
// path.
type BufferWriter struct {
	raw []byte
	off int
}

var _ WriteProtocol = (*BufferWriter)(nil)

// NewBufferWriter returns a writer over raw. Size raw with a Sizer
// first; that is the precondition everything below relies on.
func NewBufferWriter(raw []byte) *BufferWriter {
	return &BufferWriter{raw: raw}
}

// Bytes returns the written prefix of the underlying buffer.
func (w *BufferWriter) Bytes() []byte {
	return w.raw[:w.off]
}

func (w *BufferWriter) WriteMessageBegin(h MessageHeader) error {
	if err := w.WriteI32(int32(version1 | uint32(h.Type))); err != nil {
		return err
	}
	if err := w.WriteString(h.Name); err != nil {
		return err
	}
	return w.WriteI32(h.SeqID)
}

func (w *BufferWriter) WriteMessageEnd() error { return nil }

func (w *BufferWriter) WriteStructBegin(h StructHeader) error { return nil }

func (w *BufferWriter) WriteStructEnd() error { return nil }

func (w *BufferWriter) WriteFieldBegin(typ Type, id int16) error {
	w.raw[w.off] = byte(typ)
	binary.BigEndian.PutUint16(w.raw[w.off+1:], uint16(id))
	w.off += 3
	return nil
}

func (w *BufferWriter) WriteFieldEnd() error { return nil }

func (w *BufferWriter) WriteFieldStop() error {
	return w.WriteByte(byte(Stop))
}

func (w *BufferWriter) WriteBool(v bool) error {
	if v {
		return w.WriteByte(1)
	}
	return w.WriteByte(0)
}

func (w *BufferWriter) WriteByte(v byte) error {
	w.raw[w.off] = v
	w.off++
	return nil
}

func (w *BufferWriter) WriteI8(v int8) error {
	return w.WriteByte(byte(v))
}

func (w *BufferWriter) WriteI16(v int16) error {
	binary.BigEndian.PutUint16(w.raw[w.off:], uint16(v))
	w.off += 2
	return nil
}

func (w *BufferWriter) WriteI32(v int32) error {
	binary.BigEndian.PutUint32(w.raw[w.off:], uint32(v))
	w.off += 4
	return nil
}

func (w *BufferWriter) WriteI64(v int64) error {
	binary.BigEndian.PutUint64(w.raw[w.off:], uint64(v))
	w.off += 8
	return nil
}

func (w *BufferWriter) WriteDouble(v float64) error {
	binary.BigEndian.PutUint64(w.raw[w.off:], math.Float64bits(v))
	w.off += 8
	return nil
}

func (w *BufferWriter) WriteString(v string) error {
	binary.BigEndian.PutUint32(w.raw[w.off:], uint32(len(v)))
	w.off += 4
	copy(w.raw[w.off:], v)
	w.off += len(v)
	return nil
}

func (w *BufferWriter) WriteBytes(v []byte) error {
	binary.BigEndian.PutUint32(w.raw[w.off:], uint32(len(v)))
	w.off += 4
	copy(w.raw[w.off:], v)
	w.off += len(v)
	return nil
}

func (w *BufferWriter) WriteUUID(v [16]byte) error {
	copy(w.raw[w.off:], v[:])
	w.off += 16
	return nil
}

func (w *BufferWriter) WriteListBegin(h ListHeader) error {
	if err := w.WriteByte(byte(h.ElementType)); err != nil {
		return err
	}
	return w.WriteI32(int32(h.Size))
}

func (w *BufferWriter) WriteListEnd() error { return nil }

func (w *BufferWriter) WriteSetBegin(h SetHeader) error {
	if err := w.WriteByte(byte(h.ElementType)); err != nil {
		return err
	}
	return w.WriteI32(int32(h.Size))
}

func (w *BufferWriter) WriteSetEnd() error { return nil }

func (w *BufferWriter) WriteMapBegin(h MapHeader) error {
	if err := w.WriteByte(byte(h.KeyType)); err != nil {
		return err
	}
	if err := w.WriteByte(byte(h.ValueType)); err != nil {
		return err
	}
	return w.WriteI32(int32(h.Size))
}

func (w *BufferWriter) WriteMapEnd() error { return nil }

func (w *BufferWriter) Flush() error { return nil }
