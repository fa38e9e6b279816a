package loopbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliceengine/sliceengine/geom2d"
	"github.com/sliceengine/sliceengine/loopbuilder"
)

func intPtr(v int) *int { return &v }

// square builds 4 segments chained by vertex id into a closed square,
// 0->1->2->3->0.
func square() []geom2d.Segment {
	pt := func(x, y int64, id int) geom2d.Point {
		return geom2d.Point{X: x, Y: y, VertexID: intPtr(id)}
	}
	return []geom2d.Segment{
		{A: pt(0, 0, 0), B: pt(1, 0, 1), VertexIDA: intPtr(0), VertexIDB: intPtr(1)},
		{A: pt(1, 0, 1), B: pt(1, 1, 2), VertexIDA: intPtr(1), VertexIDB: intPtr(2)},
		{A: pt(1, 1, 2), B: pt(0, 1, 3), VertexIDA: intPtr(2), VertexIDB: intPtr(3)},
		{A: pt(0, 1, 3), B: pt(0, 0, 0), VertexIDA: intPtr(3), VertexIDB: intPtr(0)},
	}
}

func TestBuildClosesSquareLoop(t *testing.T) {
	segs := square()
	polys := loopbuilder.Build(segs)

	require.Len(t, polys, 1)
	assert.Len(t, polys[0], 4)
}

func TestBuildDropsUnclosedChain(t *testing.T) {
	segs := square()[:3] // missing the closing segment
	polys := loopbuilder.Build(segs)

	assert.Empty(t, polys, "an unclosed chain must be dropped, not returned")
}

func TestBuildPrunesOpposedTangentPair(t *testing.T) {
	a := intPtr(10)
	b := intPtr(11)
	segs := []geom2d.Segment{
		{VertexIDA: a, VertexIDB: b, EdgeType: geom2d.EdgeTop},
		{VertexIDA: a, VertexIDB: b, EdgeType: geom2d.EdgeBottom},
	}
	polys := loopbuilder.Build(segs)
	assert.Empty(t, polys, "an opposed top/bottom tangent pair is pruned to one segment, which alone cannot close a loop")
}

func TestBuildEdgeIDPreferredOverVertexID(t *testing.T) {
	// Two segments share a start VertexID (1); only one of them also
	// shares the tail's EdgeID. The edge-id match must be chosen as
	// successor, leaving the vertex-only decoy stranded (and dropped,
	// since nothing else chains into it).
	eid1 := intPtr(100)
	vid1 := intPtr(1)
	vid2 := intPtr(2)

	segs := []geom2d.Segment{
		{VertexIDA: intPtr(0), VertexIDB: vid1, EdgeIDA: nil, EdgeIDB: eid1},
		{VertexIDA: vid1, VertexIDB: vid2, EdgeIDA: eid1, EdgeIDB: nil}, // correct successor, matches edge id
		{VertexIDA: vid1, VertexIDB: intPtr(2)},                        // decoy: matches only vertex id, never reachable
		{VertexIDA: vid2, VertexIDB: intPtr(0)},
	}
	polys := loopbuilder.Build(segs)
	require.Len(t, polys, 1, "the decoy must not be incorporated into the closed chain")
	assert.Len(t, polys[0], 3, "the closed chain is seed(0) -> edge-matched(1) -> (3), skipping the decoy entirely")
}
