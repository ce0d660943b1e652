package thriftwire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// StreamReader decodes sequentially from a byte stream with no backing
// buffer to slice from: every payload is copied into freshly allocated
// storage and every primitive read may block on I/O. It is the only
// reader usable when the transport is a live connection rather than an
// in-memory buffer. Wrap the connection in a bufio.Reader to avoid a
// syscall per primitive.
type StreamReader struct {
	r       io.Reader
	scratch [16]byte
}

var _ ReadProtocol = (*StreamReader)(nil)

// NewStreamReader returns a reader over r.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r}
}

// readFull fills n bytes of the scratch array from the stream, n <= 16.
func (s *StreamReader) readFull(n int) ([]byte, error) {
	b := s.scratch[:n]
	if _, err := io.ReadFull(s.r, b); err != nil {
		return nil, DecodeError{Kind: IOFailure, Info: "short read from stream", cause: err}
	}
	return b, nil
}

func (s *StreamReader) ReadMessageBegin() (MessageHeader, error) {
	size, err := s.ReadI32()
	if err != nil {
		return MessageHeader{}, err
	}
	typ, err := checkVersion(size)
	if err != nil {
		return MessageHeader{}, err
	}
	name, err := s.ReadString()
	if err != nil {
		return MessageHeader{}, err
	}
	seq, err := s.ReadI32()
	if err != nil {
		return MessageHeader{}, err
	}
	return MessageHeader{Name: name, Type: typ, SeqID: seq}, nil
}

func (s *StreamReader) ReadMessageEnd() error { return nil }

func (s *StreamReader) ReadStructBegin() (StructHeader, error) {
	return StructHeader{}, nil
}

func (s *StreamReader) ReadStructEnd() error { return nil }

func (s *StreamReader) ReadFieldBegin() (FieldHeader, error) {
	b, err := s.ReadByte()
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
	id, err := s.ReadI16()
	if err != nil {
		return FieldHeader{}, err
	}
	return FieldHeader{Type: typ, ID: id}, nil
}

func (s *StreamReader) ReadFieldEnd() error { return nil }

func (s *StreamReader) ReadBool() (bool, error) {
	b, err := s.ReadByte()
	return b != 0, err
}

func (s *StreamReader) ReadByte() (byte, error) {
	b, err := s.readFull(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *StreamReader) ReadI8() (int8, error) {
	b, err := s.ReadByte()
	return int8(b), err
}

func (s *StreamReader) ReadI16() (int16, error) {
	b, err := s.readFull(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func (s *StreamReader) ReadI32() (int32, error) {
	b, err := s.readFull(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (s *StreamReader) ReadI64() (int64, error) {
	b, err := s.readFull(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (s *StreamReader) ReadDouble() (float64, error) {
	b, err := s.readFull(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

func (s *StreamReader) ReadString() (string, error) {
	v, err := s.ReadBytes()
	if err != nil {
		return "", err
	}
	// freshly allocated, never aliased again: aliasing it as a string
	// avoids a second copy, and UTF-8 validity is trusted as elsewhere
	return unsafeString(v), nil
}

func (s *StreamReader) ReadBytes() ([]byte, error) {
	size, err := s.ReadI32()
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, DecodeError{Kind: InvalidData, Info: fmt.Sprintf("negative payload length %d", size)}
	}
	v := make([]byte, size)
	if _, err := io.ReadFull(s.r, v); err != nil {
		return nil, DecodeError{Kind: IOFailure, Info: "short read from stream", cause: err}
	}
	return v, nil
}

func (s *StreamReader) ReadUUID() ([16]byte, error) {
	var v [16]byte
	if _, err := io.ReadFull(s.r, v[:]); err != nil {
		return v, DecodeError{Kind: IOFailure, Info: "short read from stream", cause: err}
	}
	return v, nil
}

func (s *StreamReader) ReadListBegin() (ListHeader, error) {
	b, err := s.ReadByte()
	if err != nil {
		return ListHeader{}, err
	}
	elem, err := typeFromByte(b)
	if err != nil {
		return ListHeader{}, err
	}
	size, err := s.ReadI32()
	if err != nil {
		return ListHeader{}, err
	}
	return ListHeader{ElementType: elem, Size: int(size)}, nil
}

func (s *StreamReader) ReadListEnd() error { return nil }

func (s *StreamReader) ReadSetBegin() (SetHeader, error) {
	b, err := s.ReadByte()
	if err != nil {
		return SetHeader{}, err
	}
	elem, err := typeFromByte(b)
	if err != nil {
		return SetHeader{}, err
	}
	size, err := s.ReadI32()
	if err != nil {
		return SetHeader{}, err
	}
	return SetHeader{ElementType: elem, Size: int(size)}, nil
}

func (s *StreamReader) ReadSetEnd() error { return nil }

func (s *StreamReader) ReadMapBegin() (MapHeader, error) {
	kb, err := s.ReadByte()
	if err != nil {
		return MapHeader{}, err
	}
	key, err := typeFromByte(kb)
	if err != nil {
		return MapHeader{}, err
	}
	vb, err := s.ReadByte()
	if err != nil {
		return MapHeader{}, err
	}
	val, err := typeFromByte(vb)
	if err != nil {
		return MapHeader{}, err
	}
	size, err := s.ReadI32()
	if err != nil {
		return MapHeader{}, err
	}
	return MapHeader{KeyType: key, ValueType: val, Size: int(size)}, nil
}

func (s *StreamReader) ReadMapEnd() error { return nil }
