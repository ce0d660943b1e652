package thriftwire

import (
	"fmt"

	"github.com/rcrowley/go-metrics"
)

// Encoder is implemented by values that can serialize themselves. The
// two methods must mirror each other exactly: EncodedLength makes the
// same sequence of calls against the LengthProtocol that Encode makes
// against the WriteProtocol. Generated codecs guarantee this by
// construction.
type Encoder interface {
	EncodedLength(p LengthProtocol) int
	Encode(p WriteProtocol) error
}

// Decoder is implemented by values that can deserialize themselves
// from any ReadProtocol.
type Decoder interface {
	Decode(p ReadProtocol) error
}

// Marshal runs the sizing pass over e, allocates exactly that many
// bytes, and runs the write pass into them.
func Marshal(e Encoder) ([]byte, error) {
	return MarshalWithMetrics(e, nil)
}

// MarshalWithMetrics is Marshal, additionally recording the encoded
// size in a "message-size" histogram on the given registry.
func MarshalWithMetrics(e Encoder, registry metrics.Registry) ([]byte, error) {
	sizer := NewSizer(false)
	length := e.EncodedLength(sizer)
	if length > int(MaxMessageSize) {
		return nil, EncodeError{Info: fmt.Sprintf("message of length %d larger than MaxMessageSize", length)}
	}
	w := NewBufferWriter(make([]byte, length))
	if err := e.Encode(w); err != nil {
		return nil, err
	}
	if w.off != length {
		Logger.Printf("sizing pass computed %d bytes but write pass produced %d\n", length, w.off)
		return nil, EncodeError{Info: "sizing pass disagrees with write pass"}
	}
	if registry != nil {
		getOrRegisterHistogram("message-size", registry).Update(int64(length))
	}
	return w.raw, nil
}

// MarshalChain encodes e into a ChainBuffer with zero-copy transfer of
// large payloads: the sizing pass reports how many bytes will be
// spliced in by reference, only the remainder is reserved as flat tail
// space, and the write pass splices the rest.
func MarshalChain(e Encoder) (*ChainBuffer, error) {
	return MarshalChainWithMetrics(e, nil)
}

// MarshalChainWithMetrics is MarshalChain, additionally recording the
// encoded size in a "message-size" histogram and the spliced bytes on
// a "zero-copy-bytes" meter.
func MarshalChainWithMetrics(e Encoder, registry metrics.Registry) (*ChainBuffer, error) {
	sizer := NewSizer(true)
	length := e.EncodedLength(sizer)
	if length > int(MaxMessageSize) {
		return nil, EncodeError{Info: fmt.Sprintf("message of length %d larger than MaxMessageSize", length)}
	}
	chain := new(ChainBuffer)
	chain.Reserve(length - sizer.ZeroCopyLength())
	w := NewChainWriter(chain, true)
	if err := e.Encode(w); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	if chain.Len() != length {
		Logger.Printf("sizing pass computed %d bytes but chain holds %d\n", length, chain.Len())
		return nil, EncodeError{Info: "sizing pass disagrees with write pass"}
	}
	if registry != nil {
		getOrRegisterHistogram("message-size", registry).Update(int64(length))
		metrics.GetOrRegisterMeter("zero-copy-bytes", registry).Mark(int64(w.ZeroCopyLength()))
	}
	return chain, nil
}

// Unmarshal decodes d from b. Ownership of b transfers to the decode:
// payloads at or above the zero-copy threshold alias b rather than
// copy it.
func Unmarshal(b []byte, d Decoder) error {
	return d.Decode(NewBufferReader(NewBuffer(b)))
}
