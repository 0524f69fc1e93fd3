package graphstore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamRecords(recs ...EdgeRecordIn) <-chan EdgeRecordIn {
	ch := make(chan EdgeRecordIn, len(recs))
	for _, r := range recs {
		ch <- r
	}
	close(ch)
	return ch
}

func TestBulkLoadRegistersNodesAndAppIDs(t *testing.T) {
	s := New()
	err := BulkLoad(s, streamRecords(EdgeRecordIn{
		FromID: 1, ToID: 2, RelType: "IMPLIES",
		FromLabel: "Concept", ToLabel: "Concept",
		FromAppID: "c_1", HasFromApp: true,
		ToAppID: "c_2", HasToApp: true,
		Confidence: float32(math.NaN()),
	}))
	require.NoError(t, err)

	assert.Equal(t, 2, s.NodeCount())
	assert.Equal(t, 1, s.EdgeCount())

	id, ok := s.ResolveAppID("c_1")
	require.True(t, ok)
	assert.Equal(t, NodeID(1), id)
}

func TestBulkLoadFirstOccurrenceWinsForLabel(t *testing.T) {
	s := New()
	err := BulkLoad(s, streamRecords(
		EdgeRecordIn{FromID: 1, ToID: 2, RelType: "A", FromLabel: "First", ToLabel: "X"},
		EdgeRecordIn{FromID: 1, ToID: 3, RelType: "B", FromLabel: "Second", ToLabel: "X"},
	))
	require.NoError(t, err)

	info, ok := s.Node(1)
	require.True(t, ok)
	assert.Equal(t, "First", info.Label)
}

func TestBulkLoadInternsRelTypesOnce(t *testing.T) {
	s := New()
	err := BulkLoad(s, streamRecords(
		EdgeRecordIn{FromID: 1, ToID: 2, RelType: "IMPLIES", FromLabel: "A", ToLabel: "B"},
		EdgeRecordIn{FromID: 2, ToID: 3, RelType: "IMPLIES", FromLabel: "B", ToLabel: "C"},
	))
	require.NoError(t, err)
	assert.Equal(t, 1, s.RelTypeCount())
}

func TestBulkLoadNodeOnlyRegistersVertexWithoutEdge(t *testing.T) {
	s := New()
	err := BulkLoad(s, streamRecords(
		EdgeRecordIn{NodeOnly: true, FromID: 5, FromLabel: "Isolated", FromAppID: "iso_5", HasFromApp: true},
	))
	require.NoError(t, err)

	assert.Equal(t, 1, s.NodeCount())
	assert.Equal(t, 0, s.EdgeCount())
	info, ok := s.Node(5)
	require.True(t, ok)
	assert.Equal(t, "Isolated", info.Label)
}

func TestBulkLoadDoesNotRequireMaterializingAllRecords(t *testing.T) {
	// A streaming loader must accept records as they arrive, without the
	// caller buffering them all first — verified by feeding from a
	// goroutine that produces records lazily.
	s := New()
	ch := make(chan EdgeRecordIn)
	go func() {
		defer close(ch)
		for i := uint64(0); i < 1000; i++ {
			ch <- EdgeRecordIn{FromID: i, ToID: i + 1, RelType: "NEXT", FromLabel: "N", ToLabel: "N"}
		}
	}()
	err := BulkLoad(s, ch)
	require.NoError(t, err)
	assert.Equal(t, 1000, s.EdgeCount())
}
