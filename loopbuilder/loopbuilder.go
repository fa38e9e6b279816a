// Package loopbuilder stitches one plane's intersection segments into
// closed polygons using topological adjacency (edge ids, vertex ids) —
// never geometry (spec §4.3). Segments that cannot be incorporated into
// a closed loop are dropped, not reported as an error.
//
// Phase 3's chaining is a bounded state machine: a for loop that, each
// iteration, either extends the current chain or terminates it — no
// goto, matching spec §9's design note on re-expressing the original's
// per-layer goto-based restart.
package loopbuilder

import (
	"github.com/sliceengine/sliceengine/geom2d"
)

// Build assembles segments into closed polygons. segments is mutated in
// place (Skip flags are set during phase 1).
func Build(segments []geom2d.Segment, opts ...Option) []geom2d.Polygon {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pruneTangentPairs(segments)

	byEdgeStart, byVertexStart := buildAdjacency(segments)

	var polygons []geom2d.Polygon
	used := make([]bool, len(segments))
	for i := range segments {
		if used[i] || segments[i].Skip {
			continue
		}
		if poly, ok := chain(segments, used, byEdgeStart, byVertexStart, i, o); ok {
			polygons = append(polygons, poly)
		}
	}
	return polygons
}

// pruneTangentPairs implements phase 1: two horizontal-edge segments on
// the same plane that share both endpoint vertex ids contribute no
// boundary. A Top/Bottom pair retains one representative (Top segments
// were already reversed at emission to match Bottom's winding); an
// identically-oriented pair (both Top or both Bottom) retains none.
func pruneTangentPairs(segments []geom2d.Segment) {
	for i := range segments {
		if segments[i].Skip || segments[i].EdgeType == geom2d.EdgeNone {
			continue
		}
		for j := i + 1; j < len(segments); j++ {
			if segments[j].Skip || segments[j].EdgeType == geom2d.EdgeNone {
				continue
			}
			if !geom2d.SameVertex(segments[i].VertexIDA, segments[j].VertexIDA) ||
				!geom2d.SameVertex(segments[i].VertexIDB, segments[j].VertexIDB) {
				continue
			}
			segments[j].Skip = true
			if segments[i].EdgeType == segments[j].EdgeType {
				segments[i].Skip = true
				break // i itself is gone; no point pairing it against further j
			}
		}
	}
}

// byEdgeStart/byVertexStart index surviving segments by their start
// identifiers (spec §4.3 phase 2: by_edge_start, by_vertex_start).
func buildAdjacency(segments []geom2d.Segment) (byEdgeStart, byVertexStart map[int][]int) {
	byEdgeStart = make(map[int][]int)
	byVertexStart = make(map[int][]int)
	for i, seg := range segments {
		if seg.Skip {
			continue
		}
		if seg.EdgeIDA != nil {
			byEdgeStart[*seg.EdgeIDA] = append(byEdgeStart[*seg.EdgeIDA], i)
		}
		if seg.VertexIDA != nil {
			byVertexStart[*seg.VertexIDA] = append(byVertexStart[*seg.VertexIDA], i)
		}
	}
	return byEdgeStart, byVertexStart
}

// chain runs phase 3 for one seed segment: seeking -> extending ->
// (closed | stuck). Returns the assembled polygon and true on closure.
func chain(segments []geom2d.Segment, used []bool, byEdge, byVertex map[int][]int, seed int, o Options) (geom2d.Polygon, bool) {
	used[seed] = true
	order := []int{seed}
	tail := seed

	for {
		next, ok := successor(segments, used, byEdge, byVertex, tail)
		if ok {
			used[next] = true
			order = append(order, next)
			tail = next
			continue
		}

		if closesLoop(segments[tail], segments[seed]) {
			return polygonFrom(segments, order), true
		}

		o.Logger.Warnf("loopbuilder: discarding unclosed chain of %d segment(s)", len(order))
		return nil, false
	}
}

// successor finds the first unused, non-skipped segment whose start
// matches tail's end, preferring an edge-id match over a vertex-id one.
func successor(segments []geom2d.Segment, used []bool, byEdge, byVertex map[int][]int, tail int) (int, bool) {
	t := segments[tail]

	if t.EdgeIDB != nil {
		if idx, ok := firstUnused(segments, used, byEdge[*t.EdgeIDB], tail); ok {
			return idx, true
		}
	}
	if t.VertexIDB != nil {
		if idx, ok := firstUnused(segments, used, byVertex[*t.VertexIDB], tail); ok {
			return idx, true
		}
	}
	return 0, false
}

func firstUnused(segments []geom2d.Segment, used []bool, candidates []int, exclude int) (int, bool) {
	for _, idx := range candidates {
		if idx == exclude || used[idx] || segments[idx].Skip {
			continue
		}
		return idx, true
	}
	return 0, false
}

// closesLoop reports whether tail's end matches head's start by either identifier.
func closesLoop(tail, head geom2d.Segment) bool {
	return geom2d.SameEdge(tail.EdgeIDB, head.EdgeIDA) || geom2d.SameVertex(tail.VertexIDB, head.VertexIDA)
}

// polygonFrom builds the output polygon: one point per segment's A
// endpoint, in chain order.
func polygonFrom(segments []geom2d.Segment, order []int) geom2d.Polygon {
	poly := make(geom2d.Polygon, len(order))
	for i, idx := range order {
		poly[i] = segments[idx].A
	}
	return poly
}
