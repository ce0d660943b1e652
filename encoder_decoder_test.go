package thriftwire

import (
	"strings"
	"testing"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/require"
)

// brokenSizer wraps an Encoder and misreports its length, to prove the
// marshal driver catches sizing/write disagreement instead of returning
// a corrupt buffer.
type brokenSizer struct {
	*profileRecord
}

func (b brokenSizer) EncodedLength(p LengthProtocol) int {
	return b.profileRecord.EncodedLength(p) + 1
}

// testLogger records what the package logs.
type testLogger struct {
	lines []string
}

func (l *testLogger) Print(v ...interface{})                 {}
func (l *testLogger) Println(v ...interface{})               {}
func (l *testLogger) Printf(format string, v ...interface{}) { l.lines = append(l.lines, format) }

func TestMarshalUnmarshal(t *testing.T) {
	rec := testProfileRecord()
	packet, err := Marshal(rec)
	require.NoError(t, err)

	got := new(profileRecord)
	require.NoError(t, Unmarshal(packet, got))
	requireRecordsEqual(t, rec, got)
}

func TestMarshalWithMetrics(t *testing.T) {
	registry := metrics.NewRegistry()
	rec := testProfileRecord()

	packet, err := MarshalWithMetrics(rec, registry)
	require.NoError(t, err)

	h := registry.Get("message-size").(metrics.Histogram)
	require.EqualValues(t, 1, h.Count())
	require.EqualValues(t, len(packet), h.Max())
}

func TestMarshalChainWithMetrics(t *testing.T) {
	setZeroCopyThreshold(t, 8)

	registry := metrics.NewRegistry()
	rec := testProfileRecord()
	rec.avatar = make([]byte, 32)

	chain, err := MarshalChainWithMetrics(rec, registry)
	require.NoError(t, err)

	h := registry.Get("message-size").(metrics.Histogram)
	require.EqualValues(t, 1, h.Count())
	require.EqualValues(t, chain.Len(), h.Max())

	m := registry.Get("zero-copy-bytes").(metrics.Meter)
	require.EqualValues(t, 32+len(rec.name), m.Count())
}

func TestMarshalTooLarge(t *testing.T) {
	old := MaxMessageSize
	MaxMessageSize = 8
	defer func() { MaxMessageSize = old }()

	_, err := Marshal(testProfileRecord())
	var ee EncodeError
	require.ErrorAs(t, err, &ee)

	_, err = MarshalChain(testProfileRecord())
	require.ErrorAs(t, err, &ee)
}

func TestMarshalLengthDisagreement(t *testing.T) {
	logger := new(testLogger)
	old := Logger
	Logger = logger
	defer func() { Logger = old }()

	_, err := Marshal(brokenSizer{testProfileRecord()})
	var ee EncodeError
	require.ErrorAs(t, err, &ee)
	require.Contains(t, ee.Info, "disagrees")

	require.Len(t, logger.lines, 1)
	require.True(t, strings.Contains(logger.lines[0], "sizing pass"))
}

func TestUnmarshalAliasesLargePayloads(t *testing.T) {
	setZeroCopyThreshold(t, 8)

	rec := testProfileRecord()
	rec.avatar = make([]byte, 32)
	packet, err := Marshal(rec)
	require.NoError(t, err)

	got := new(profileRecord)
	require.NoError(t, Unmarshal(packet, got))

	// the avatar slice is a view into packet, not a copy
	idx := indexOfSubslice(packet, got.avatar)
	require.GreaterOrEqual(t, idx, 0)
	require.Same(t, &packet[idx], &got.avatar[0])
}

func indexOfSubslice(outer, inner []byte) int {
	if len(inner) == 0 {
		return -1
	}
	for i := 0; i+len(inner) <= len(outer); i++ {
		if &outer[i] == &inner[0] {
			return i
		}
	}
	return -1
}
