package thriftwire

import "fmt"

// Type is the one-byte tag identifying the shape of a value on the wire.
type Type byte

const (
	Stop   Type = 0
	Void   Type = 1
	Bool   Type = 2
	Byte   Type = 3
	Double Type = 4
	I16    Type = 6
	I32    Type = 8
	I64    Type = 10
	String Type = 11
	Struct Type = 12
	Map    Type = 13
	Set    Type = 14
	List   Type = 15
	UUID   Type = 16
)

func (t Type) String() string {
	switch t {
	case Stop:
		return "STOP"
	case Void:
		return "VOID"
	case Bool:
		return "BOOL"
	case Byte:
		return "BYTE"
	case Double:
		return "DOUBLE"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case String:
		return "STRING"
	case Struct:
		return "STRUCT"
	case Map:
		return "MAP"
	case Set:
		return "SET"
	case List:
		return "LIST"
	case UUID:
		return "UUID"
	}
	return fmt.Sprintf("UNKNOWN(%d)", byte(t))
}

// typeFromByte rejects any tag with no corresponding Type.
func typeFromByte(b byte) (Type, error) {
	switch t := Type(b); t {
	case Stop, Void, Bool, Byte, Double, I16, I32, I64, String, Struct, Map, Set, List, UUID:
		return t, nil
	}
	return 0, DecodeError{Kind: InvalidData, Info: fmt.Sprintf("invalid type tag %d", b)}
}

// MessageType identifies the role of a message envelope.
type MessageType byte

const (
	Call      MessageType = 1
	Reply     MessageType = 2
	Exception MessageType = 3
	Oneway    MessageType = 4
)

func (t MessageType) String() string {
	switch t {
	case Call:
		return "CALL"
	case Reply:
		return "REPLY"
	case Exception:
		return "EXCEPTION"
	case Oneway:
		return "ONEWAY"
	}
	return fmt.Sprintf("UNKNOWN(%d)", byte(t))
}

const (
	version1    uint32 = 0x80010000
	versionMask uint32 = 0xffff0000
)

// checkVersion validates the leading word of a message header and
// extracts the message type from its low nibble. Legacy unversioned
// headers (a non-negative size) are rejected outright.
func checkVersion(size int32) (MessageType, error) {
	if size > 0 {
		return 0, DecodeError{Kind: BadVersion, Info: "missing version in message header"}
	}
	typ := MessageType(size & 0xf)
	switch typ {
	case Call, Reply, Exception, Oneway:
	default:
		return 0, DecodeError{Kind: InvalidData, Info: fmt.Sprintf("invalid message type %d", byte(size&0xf))}
	}
	if uint32(size)&versionMask != version1 {
		return 0, DecodeError{Kind: BadVersion, Info: "bad version in message header"}
	}
	return typ, nil
}
