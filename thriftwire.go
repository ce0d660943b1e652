/*
Package thriftwire implements the Thrift binary wire protocol.

The package converts structured values (message envelopes, structs,
fields, collections and scalars) to and from their byte-exact wire
representation. Encoding is a two-pass affair: a sizing pass over the
value computes the exact number of bytes the write pass will produce,
the caller allocates or reserves exactly that much, and the write pass
then serializes into the preallocated space with position-tracked
stores and no per-write capacity checks. Decoding either slices
payloads out of an owned buffer by reference (BufferReader) or copies
them out of a byte stream (StreamReader).

Generated per-type codecs drive the Sizer, writers and readers through
the LengthProtocol, WriteProtocol and ReadProtocol interfaces; Marshal,
MarshalChain and Unmarshal wrap the common flows.
*/
package thriftwire

import (
	"io"
	"log"
)

// StdLogger is used to log protocol anomalies.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// Logger is the instance of a StdLogger interface that thriftwire writes
// diagnostic messages to. By default it is set to discard all log messages,
// but you can set it to redirect wherever you want.
var Logger StdLogger = log.New(io.Discard, "[thriftwire] ", log.LstdFlags)

// ZeroCopyThreshold is the payload size, in bytes, at which string and
// bytes values are transferred by reference instead of copied, on the
// components that support zero-copy transfer. Each Sizer, ChainWriter
// and BufferReader snapshots this value at construction so that a
// single message is sized and written under one threshold.
var ZeroCopyThreshold = 4 * 1024

// MaxMessageSize is the maximum number of bytes a single message is
// allowed to occupy on the wire. Marshal and MarshalChain refuse to
// encode anything larger.
var MaxMessageSize int32 = 100 * 1024 * 1024
