package thriftwire

// LengthProtocol mirrors every write operation with a method returning
// the exact number of bytes that write will occupy, without writing
// anything. The central soundness contract of the package is that for
// any sequence of calls, the sum of the lengths returned here equals
// the number of bytes the matching WriteProtocol calls advance their
// cursor by; the writers rely on this to skip per-write capacity
// checks.
type LengthProtocol interface {
	MessageBeginLength(h MessageHeader) int
	MessageEndLength() int
	StructBeginLength(h StructHeader) int
	StructEndLength() int
	FieldBeginLength(typ Type, id int16) int
	FieldEndLength() int
	FieldStopLength() int
	BoolLength(v bool) int
	ByteLength(v byte) int
	I8Length(v int8) int
	I16Length(v int16) int
	I32Length(v int32) int
	I64Length(v int64) int
	DoubleLength(v float64) int
	StringLength(v string) int
	BytesLength(v []byte) int
	UUIDLength(v [16]byte) int
	ListBeginLength(h ListHeader) int
	ListEndLength() int
	SetBeginLength(h SetHeader) int
	SetEndLength() int
	MapBeginLength(h MapHeader) int
	MapEndLength() int

	// ZeroCopyLength reports the accumulated payload bytes that the
	// matching zero-copy writer will transfer by reference rather than
	// copy. Reset clears the accumulator between messages.
	ZeroCopyLength() int
	Reset()
}

// WriteProtocol serializes one message. The begin/end bracketing calls
// for struct, field, list, set and map are preserved for symmetry even
// where they emit nothing on the wire.
type WriteProtocol interface {
	WriteMessageBegin(h MessageHeader) error
	WriteMessageEnd() error
	WriteStructBegin(h StructHeader) error
	WriteStructEnd() error
	WriteFieldBegin(typ Type, id int16) error
	WriteFieldEnd() error
	WriteFieldStop() error
	WriteBool(v bool) error
	WriteByte(v byte) error
	WriteI8(v int8) error
	WriteI16(v int16) error
	WriteI32(v int32) error
	WriteI64(v int64) error
	WriteDouble(v float64) error
	WriteString(v string) error
	WriteBytes(v []byte) error
	WriteUUID(v [16]byte) error
	WriteListBegin(h ListHeader) error
	WriteListEnd() error
	WriteSetBegin(h SetHeader) error
	WriteSetEnd() error
	WriteMapBegin(h MapHeader) error
	WriteMapEnd() error
	Flush() error
}

// ReadProtocol deserializes one message, discovering structure (field
// tags, collection sizes) from the stream itself. Implementations over
// an in-memory buffer never block; the StreamReader may block on every
// primitive.
type ReadProtocol interface {
	ReadMessageBegin() (MessageHeader, error)
	ReadMessageEnd() error
	ReadStructBegin() (StructHeader, error)
	ReadStructEnd() error
	ReadFieldBegin() (FieldHeader, error)
	ReadFieldEnd() error
	ReadBool() (bool, error)
	ReadByte() (byte, error)
	ReadI8() (int8, error)
	ReadI16() (int16, error)
	ReadI32() (int32, error)
	ReadI64() (int64, error)
	ReadDouble() (float64, error)
	ReadString() (string, error)
	ReadBytes() ([]byte, error)
	ReadUUID() ([16]byte, error)
	ReadListBegin() (ListHeader, error)
	ReadListEnd() error
	ReadSetBegin() (SetHeader, error)
	ReadSetEnd() error
	ReadMapBegin() (MapHeader, error)
	ReadMapEnd() error
}
