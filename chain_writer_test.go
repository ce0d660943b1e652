package thriftwire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainWriterCopiesBelowThreshold(t *testing.T) {
	setZeroCopyThreshold(t, 8)

	payload := []byte("1234567") // threshold - 1
	chain := new(ChainBuffer)
	chain.Reserve(4 + len(payload))
	w := NewChainWriter(chain, true)
	require.NoError(t, w.WriteBytes(payload))
	require.NoError(t, w.Flush())

	require.Equal(t, 0, w.ZeroCopyLength())
	require.Equal(t, append([]byte{0x00, 0x00, 0x00, 0x07}, payload...), chain.Bytes())

	bufs := chain.Buffers()
	require.Len(t, bufs, 1)
	require.NotSame(t, &payload[0], &bufs[0][4])
}

func TestChainWriterSplicesAtThreshold(t *testing.T) {
	setZeroCopyThreshold(t, 8)

	payload := []byte("12345678") // exactly threshold
	chain := new(ChainBuffer)
	chain.Reserve(4 + 4) // length prefix plus a trailing i32; payload travels by reference
	w := NewChainWriter(chain, true)
	require.NoError(t, w.WriteBytes(payload))
	require.NoError(t, w.WriteI32(42))
	require.NoError(t, w.Flush())

	require.Equal(t, 8, w.ZeroCopyLength())
	expected := append([]byte{0x00, 0x00, 0x00, 0x08}, payload...)
	expected = append(expected, 0x00, 0x00, 0x00, 0x2a)
	require.Equal(t, expected, chain.Bytes())

	bufs := chain.Buffers()
	require.Len(t, bufs, 3)
	require.Same(t, &payload[0], &bufs[1][0])
}

func TestChainWriterZeroCopyDisabled(t *testing.T) {
	setZeroCopyThreshold(t, 8)

	payload := []byte("0123456789abcdef")
	chain := new(ChainBuffer)
	chain.Reserve(4 + len(payload))
	w := NewChainWriter(chain, false)
	require.NoError(t, w.WriteBytes(payload))
	require.NoError(t, w.Flush())

	require.Equal(t, 0, w.ZeroCopyLength())
	require.Len(t, chain.Buffers(), 1)
}

func TestChainWriterSplicesMessageName(t *testing.T) {
	setZeroCopyThreshold(t, 8)

	name := "a-method-name-over-threshold"
	chain := new(ChainBuffer)
	chain.Reserve(4 + 4 + 4) // version word, name length prefix, sequence number
	w := NewChainWriter(chain, true)
	require.NoError(t, w.WriteMessageBegin(MessageHeader{Name: name, Type: Call, SeqID: 1}))
	require.NoError(t, w.Flush())

	require.Equal(t, len(name), w.ZeroCopyLength())

	flat := make([]byte, 12+len(name))
	bw := NewBufferWriter(flat)
	require.NoError(t, bw.WriteMessageBegin(MessageHeader{Name: name, Type: Call, SeqID: 1}))
	require.Equal(t, flat, chain.Bytes())
}

func TestMarshalChainMatchesMarshal(t *testing.T) {
	setZeroCopyThreshold(t, 8)

	rec := testProfileRecord()
	rec.avatar = bytes.Repeat([]byte{0x5a}, 64)

	flat, err := Marshal(rec)
	require.NoError(t, err)
	chain, err := MarshalChain(rec)
	require.NoError(t, err)

	require.Equal(t, flat, chain.Bytes())
	require.Equal(t, len(flat), chain.Len())

	// the avatar travels by reference, straddling the chain
	found := false
	for _, seg := range chain.Buffers() {
		if len(seg) == 64 && &seg[0] == &rec.avatar[0] {
			found = true
		}
	}
	require.True(t, found, "expected the avatar segment to be spliced by reference")

	// and the chained output decodes like the flat one
	got := new(profileRecord)
	require.NoError(t, Unmarshal(chain.Bytes(), got))
	requireRecordsEqual(t, rec, got)
}
