package thriftwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainBufferCommit(t *testing.T) {
	chain := new(ChainBuffer)
	chain.Reserve(8)

	win := chain.Window()
	require.Len(t, win, 8)
	copy(win, "abcd")
	chain.Commit(4)

	require.Equal(t, 4, chain.Len())
	require.Equal(t, []byte("abcd"), chain.Bytes())
	require.Len(t, chain.Window(), 4)
}

func TestChainBufferAppendSplitsTail(t *testing.T) {
	chain := new(ChainBuffer)
	chain.Reserve(8)

	copy(chain.Window(), "ab")
	chain.Commit(2)

	seg := []byte("0123456789")
	chain.Append(seg)

	copy(chain.Window(), "cd")
	chain.Commit(2)

	require.Equal(t, []byte("ab0123456789cd"), chain.Bytes())

	bufs := chain.Buffers()
	require.Len(t, bufs, 3)
	// the spliced segment is the caller's slice, not a copy
	require.Same(t, &seg[0], &bufs[1][0])
}

func TestChainBufferAppendToEmptyTail(t *testing.T) {
	chain := new(ChainBuffer)
	seg := []byte("xyz")
	chain.Append(seg)
	require.Equal(t, []byte("xyz"), chain.Bytes())
	require.Equal(t, 3, chain.Len())
}

func TestChainBufferReserveStartsFreshBlock(t *testing.T) {
	chain := new(ChainBuffer)
	chain.Reserve(4)
	copy(chain.Window(), "abcd")
	chain.Commit(4)

	chain.Reserve(4)
	copy(chain.Window(), "efgh")
	chain.Commit(4)

	require.Equal(t, []byte("abcdefgh"), chain.Bytes())
	require.Len(t, chain.Buffers(), 2)
}
