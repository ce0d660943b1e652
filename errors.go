package thriftwire

// ErrorKind tags a DecodeError with its failure class.
type ErrorKind int8

const (
	// BadVersion means the message header was missing or carried a
	// mismatched version marker.
	BadVersion ErrorKind = iota + 1
	// InvalidData means an unrecognized wire-type or message-type byte
	// was found on the wire.
	InvalidData
	// IOFailure means the underlying stream failed; it is produced only
	// by the StreamReader, since the buffer readers operate on memory
	// that is already resident.
	IOFailure
)

func (k ErrorKind) String() string {
	switch k {
	case BadVersion:
		return "bad version"
	case InvalidData:
		return "invalid data"
	case IOFailure:
		return "i/o failure"
	}
	return "unknown"
}

// DecodeError is returned from a failure while decoding a message. All
// decode errors are terminal for the current message; there is no
// resynchronization.
type DecodeError struct {
	Kind  ErrorKind
	Info  string
	cause error
}

func (e DecodeError) Error() string {
	return "thriftwire: " + e.Info
}

// Unwrap exposes the underlying stream error on IOFailure errors.
func (e DecodeError) Unwrap() error {
	return e.cause
}

// EncodeError is returned from a failure while encoding a message, such
// as a value exceeding MaxMessageSize or a disagreement between the
// sizing pass and the write pass.
type EncodeError struct {
	Info string
}

func (e EncodeError) Error() string {
	return "thriftwire: " + e.Info
}
