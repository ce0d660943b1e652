package thriftwire

// Sizer is the length-computation pass. Given the same sequence of
// calls a writer will receive, it returns the exact byte count each
// call will occupy. When constructed with zeroCopy set it also
// accumulates the total payload bytes a ChainWriter will splice in by
// reference instead of copying; those bytes still count towards the
// returned lengths, since they occupy wire space either way.
type Sizer struct {
	zeroCopy    bool
	threshold   int
	zeroCopyLen int
}

var _ LengthProtocol = (*Sizer)(nil)

// NewSizer returns a Sizer. zeroCopy should be set when the value will
// be written through a ChainWriter; the threshold is snapshotted from
// ZeroCopyThreshold.
func NewSizer(zeroCopy bool) *Sizer {
	return &Sizer{zeroCopy: zeroCopy, threshold: ZeroCopyThreshold}
}

func (s *Sizer) MessageBeginLength(h MessageHeader) int {
	return s.I32Length(0) + s.StringLength(h.Name) + s.I32Length(0)
}

func (s *Sizer) MessageEndLength() int { return 0 }

func (s *Sizer) StructBeginLength(h StructHeader) int { return 0 }

func (s *Sizer) StructEndLength() int { return 0 }

func (s *Sizer) FieldBeginLength(typ Type, id int16) int {
	return s.ByteLength(0) + s.I16Length(0)
}

func (s *Sizer) FieldEndLength() int { return 0 }

func (s *Sizer) FieldStopLength() int { return s.ByteLength(0) }

func (s *Sizer) BoolLength(v bool) int { return 1 }

func (s *Sizer) ByteLength(v byte) int { return 1 }

func (s *Sizer) I8Length(v int8) int { return 1 }

func (s *Sizer) I16Length(v int16) int { return 2 }

func (s *Sizer) I32Length(v int32) int { return 4 }

func (s *Sizer) I64Length(v int64) int { return 8 }

func (s *Sizer) DoubleLength(v float64) int { return 8 }

func (s *Sizer) StringLength(v string) int {
	if s.zeroCopy && len(v) >= s.threshold {
		s.zeroCopyLen += len(v)
	}
	return 4 + len(v)
}

func (s *Sizer) BytesLength(v []byte) int {
	if s.zeroCopy && len(v) >= s.threshold {
		s.zeroCopyLen += len(v)
	}
	return 4 + len(v)
}

func (s *Sizer) UUIDLength(v [16]byte) int { return 16 }

func (s *Sizer) ListBeginLength(h ListHeader) int {
	return s.ByteLength(0) + s.I32Length(0)
}

func (s *Sizer) ListEndLength() int { return 0 }

func (s *Sizer) SetBeginLength(h SetHeader) int {
	return s.ByteLength(0) + s.I32Length(0)
}

func (s *Sizer) SetEndLength() int { return 0 }

func (s *Sizer) MapBeginLength(h MapHeader) int {
	return s.ByteLength(0) + s.ByteLength(0) + s.I32Length(0)
}

func (s *Sizer) MapEndLength() int { return 0 }

// ZeroCopyLength reports the bytes that the matching ChainWriter will
// transfer by reference. It is only nonzero when the Sizer was
// constructed with zeroCopy set.
func (s *Sizer) ZeroCopyLength() int { return s.zeroCopyLen }

// Reset clears the zero-copy accumulator so the Sizer can be reused
// for another message.
func (s *Sizer) Reset() { s.zeroCopyLen = 0 }
