package thriftwire

// MessageHeader identifies one RPC message envelope.
type MessageHeader struct {
	Name  string
	Type  MessageType
	SeqID int32
}

// FieldHeader identifies one struct field. The wire format never
// carries the name; it is populated only by callers that know it. A
// Stop field terminates a struct and carries no ID.
type FieldHeader struct {
	Name string
	Type Type
	ID   int16
}

// StructHeader exists only at the API boundary; struct begin/end emit
// nothing on the wire.
type StructHeader struct {
	Name string
}

// ListHeader describes a list's element type and length.
type ListHeader struct {
	ElementType Type
	Size        int
}

// SetHeader describes a set's element type and length.
type SetHeader struct {
	ElementType Type
	Size        int
}

// MapHeader describes a map's key type, value type and entry count.
type MapHeader struct {
	KeyType   Type
	ValueType Type
	Size      int
}
