package thriftwire

import (
	"encoding/binary"
	"math"
)

// BufferReader decodes from an owned Buffer via position-tracked loads
// with no per-read capacity checks: the buffer must actually contain
// the message it claims to, and a truncated buffer panics on the load
// that overruns it. Callers decoding from untrusted sources must
// validate framing upstream or use a StreamReader.
//
// String and bytes payloads at or above the zero-copy threshold are
// detached from the buffer by reference instead of copied; smaller
// payloads are copied out. Strings are produced without UTF-8
// validation in either case — the wire is trusted to be well-formed.
type BufferReader struct {
	trans     *Buffer
	buf       []byte
	off       int
	threshold int
}

var _ ReadProtocol = (*BufferReader)(nil)

// NewBufferReader returns a reader over trans. The threshold is
// snapshotted from ZeroCopyThreshold.
func NewBufferReader(trans *Buffer) *BufferReader {
	return &BufferReader{trans: trans, buf: trans.Window(), threshold: ZeroCopyThreshold}
}

func (r *BufferReader) ReadMessageBegin() (MessageHeader, error) {
	size, err := r.ReadI32()
	if err != nil {
		return MessageHeader{}, err
	}
	typ, err := checkVersion(size)
	if err != nil {
		return MessageHeader{}, err
	}
	name, err := r.ReadString()
	if err != nil {
		return MessageHeader{}, err
	}
	seq, err := r.ReadI32()
	if err != nil {
		return MessageHeader{}, err
	}
	return MessageHeader{Name: name, Type: typ, SeqID: seq}, nil
}

func (r *BufferReader) ReadMessageEnd() error { return nil }

func (r *BufferReader) ReadStructBegin() (StructHeader, error) {
	return StructHeader{}, nil
}

func (r *BufferReader) ReadStructEnd() error { return nil }

func (r *BufferReader) ReadFieldBegin() (FieldHeader, error) {
	b, err := r.ReadByte()
	if err != nil {
		return FieldHeader{}, err
	}
	typ, err := typeFromByte(b)
	if err != nil {
		return FieldHeader{}, err
	}
	if typ == Stop {
		return FieldHeader{Type: Stop}, nil
	}
	id, err := r.ReadI16()
	if err != nil {
		return FieldHeader{}, err
	}
	return FieldHeader{Type: typ, ID: id}, nil
}

func (r *BufferReader) ReadFieldEnd() error { return nil }

func (r *BufferReader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	return b != 0, err
}

func (r *BufferReader) ReadByte() (byte, error) {
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *BufferReader) ReadI8() (int8, error) {
	v, err := r.ReadByte()
	return int8(v), err
}

func (r *BufferReader) ReadI16() (int16, error) {
	v := int16(binary.BigEndian.Uint16(r.buf[r.off:]))
	r.off += 2
	return v, nil
}

func (r *BufferReader) ReadI32() (int32, error) {
	v := int32(binary.BigEndian.Uint32(r.buf[r.off:]))
	r.off += 4
	return v, nil
}

func (r *BufferReader) ReadI64() (int64, error) {
	v := int64(binary.BigEndian.Uint64(r.buf[r.off:]))
	r.off += 8
	return v, nil
}

func (r *BufferReader) ReadDouble() (float64, error) {
	v := math.Float64frombits(binary.BigEndian.Uint64(r.buf[r.off:]))
	r.off += 8
	return v, nil
}

func (r *BufferReader) ReadString() (string, error) {
	size, err := r.ReadI32()
	if err != nil {
		return "", err
	}
	n := int(size)
	if n >= r.threshold {
		return unsafeString(r.detach(n)), nil
	}
	v := string(r.buf[r.off : r.off+n])
	r.off += n
	return v, nil
}

func (r *BufferReader) ReadBytes() ([]byte, error) {
	size, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	n := int(size)
	if n >= r.threshold {
		return r.detach(n), nil
	}
	v := make([]byte, n)
	copy(v, r.buf[r.off:r.off+n])
	r.off += n
	return v, nil
}

// detach consumes everything read so far, splits the next n bytes out
// of the underlying buffer by reference, and re-acquires the window
// over the remainder.
func (r *BufferReader) detach(n int) []byte {
	r.trans.Advance(r.off)
	r.off = 0
	v := r.trans.SplitTo(n)
	r.buf = r.trans.Window()
	return v
}

func (r *BufferReader) ReadUUID() ([16]byte, error) {
	var v [16]byte
	copy(v[:], r.buf[r.off:r.off+16])
	r.off += 16
	return v, nil
}

func (r *BufferReader) ReadListBegin() (ListHeader, error) {
	b, err := r.ReadByte()
	if err != nil {
		return ListHeader{}, err
	}
	elem, err := typeFromByte(b)
	if err != nil {
		return ListHeader{}, err
	}
	size, err := r.ReadI32()
	if err != nil {
		return ListHeader{}, err
	}
	return ListHeader{ElementType: elem, Size: int(size)}, nil
}

func (r *BufferReader) ReadListEnd() error { return nil }

func (r *BufferReader) ReadSetBegin() (SetHeader, error) {
	b, err := r.ReadByte()
	if err != nil {
		return SetHeader{}, err
	}
	elem, err := typeFromByte(b)
	if err != nil {
		return SetHeader{}, err
	}
	size, err := r.ReadI32()
	if err != nil {
		return SetHeader{}, err
	}
	return SetHeader{ElementType: elem, Size: int(size)}, nil
}

func (r *BufferReader) ReadSetEnd() error { return nil }

func (r *BufferReader) ReadMapBegin() (MapHeader, error) {
	kb, err := r.ReadByte()
	if err != nil {
		return MapHeader{}, err
	}
	key, err := typeFromByte(kb)
	if err != nil {
		return MapHeader{}, err
	}
	vb, err := r.ReadByte()
	if err != nil {
		return MapHeader{}, err
	}
	val, err := typeFromByte(vb)
	if err != nil {
		return MapHeader{}, err
	}
	size, err := r.ReadI32()
	if err != nil {
		return MapHeader{}, err
	}
	return MapHeader{KeyType: key, ValueType: val, Size: int(size)}, nil
}

func (r *BufferReader) ReadMapEnd() error { return nil }
