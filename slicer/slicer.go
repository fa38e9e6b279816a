// Package slicer is the plane-sweep kernel (spec §4.2): for each facet,
// it locates the range of cutting planes crossing the facet's Z extent
// and emits zero or one intersection segment per plane.
//
// A small struct carries mutable per-call state, a loop processes work
// items one at a time, and errors from user-visible hooks (here: the
// logger) never stop the loop — they are recorded and iteration
// continues, matching the "errors are values, best-effort" policy of
// spec §7.
package slicer

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/sliceengine/sliceengine/edgeindex"
	"github.com/sliceengine/sliceengine/geom2d"
	"github.com/sliceengine/sliceengine/mesh"
	"github.com/sliceengine/sliceengine/slicelog"
)

// sweep encapsulates the mutable state of one Slice call.
type sweep struct {
	store   *mesh.Store
	idx     *edgeindex.Index
	zs      []float64
	opts    Options
	buckets [][]geom2d.Segment
}

// Slice computes, for every plane in the sorted list zs (unscaled mm
// heights; neither sorted nor deduplicated by this function), the set
// of intersection segments every facet of store contributes. Output
// coordinates are scaled integers per Options.ScalingFactor.
//
// store must be repaired (see the repair package); Slice does not
// invoke the repair collaborator itself — that auto-invocation is the
// caller's responsibility, not the kernel's.
func Slice(store *mesh.Store, idx *edgeindex.Index, zs []float64, opts ...Option) ([][]geom2d.Segment, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sw := &sweep{
		store:   store,
		idx:     idx,
		zs:      zs,
		opts:    o,
		buckets: make([][]geom2d.Segment, len(zs)),
	}

	for fi := range store.Facets {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		sw.sliceFacet(fi)
	}

	return sw.buckets, nil
}

// sliceFacet finds the plane range crossing facet fi's Z extent and
// emits one segment per covered plane (spec §4.2 steps 1-2).
func (sw *sweep) sliceFacet(fi int) {
	f := &sw.store.Facets[fi]
	zmin, zmax := f.ZRange()
	if zmin == zmax {
		return // horizontal facet: its boundary is recovered via neighbours' coincident edges
	}

	lo := sort.Search(len(sw.zs), func(i int) bool { return sw.zs[i] >= zmin })
	hi := sort.Search(len(sw.zs), func(i int) bool { return sw.zs[i] > zmax }) - 1
	if lo > hi {
		return
	}

	order := rotateToZMin(f, zmin)
	for k := lo; k <= hi; k++ {
		if seg, ok := sw.sliceFacetAtPlane(fi, f, order, sw.zs[k]); ok {
			seg.SourceFace = fi
			sw.buckets[k] = append(sw.buckets[k], seg)
		}
	}
}

// rotateToZMin returns the vertex-index rotation starting at the vertex
// whose Z equals zmin (spec step 3a). zmin is always the exact Z of one
// of the three vertices, so the search never falls through.
func rotateToZMin(f *mesh.Facet, zmin float64) [3]int {
	for start := 0; start < 3; start++ {
		if f.Vertices[start].Z() == zmin {
			return [3]int{start, (start + 1) % 3, (start + 2) % 3}
		}
	}
	return [3]int{0, 1, 2} // unreachable given zmin's definition
}

// facetHasVertexBelow reports whether any of facet f's three vertices
// lies strictly below z.
func facetHasVertexBelow(f *mesh.Facet, z float64) bool {
	for _, v := range f.Vertices {
		if v.Z() < z {
			return true
		}
	}
	return false
}

// sliceFacetAtPlane implements spec §4.2 step 3b-3c for one facet/plane pair.
func (sw *sweep) sliceFacetAtPlane(fi int, f *mesh.Facet, order [3]int, zhat float64) (geom2d.Segment, bool) {
	scale := 1 / sw.opts.ScalingFactor

	var points []geom2d.Point
	for s := 0; s < 3; s++ {
		ia, ib := order[s], order[(s+1)%3]
		a, b := f.Vertices[ia], f.Vertices[ib]
		az, bz := a.Z(), b.Z()
		eid := sw.idx.FacetEdges[fi][ia] // rotation preserves original side indexing

		switch {
		case az == zhat && bz == zhat:
			// Coincident horizontal edge: emit immediately and stop walking this facet/plane.
			return sw.emitHorizontalEdge(f, ia, ib, zhat, scale), true

		case az == zhat:
			points = append(points, vertexPoint(a, f.VertexIDs[ia], scale))

		case bz == zhat:
			points = append(points, vertexPoint(b, f.VertexIDs[ib], scale))

		case sign(az-zhat) != sign(bz-zhat):
			points = append(points, crossingPoint(a, b, zhat, eid, scale))
		default:
			// Both endpoints strictly on the same side of the plane: no contribution.
		}
	}

	points = dedupVertexPoints(points, sw.opts.Logger, fi)

	switch len(points) {
	case 0, 1:
		return geom2d.Segment{}, false // touches the plane at a single vertex only: drop
	case 2:
		return assembleSegment(points), true
	default:
		sw.opts.Logger.Warnf("facet %d: malformed slice at z=%v: %d intersection points", fi, zhat, len(points))
		return geom2d.Segment{}, false
	}
}

// emitHorizontalEdge handles the tangent horizontal-edge shortcut (spec
// step 3b first case): ia->ib lies exactly on the cutting plane.
func (sw *sweep) emitHorizontalEdge(f *mesh.Facet, ia, ib int, zhat, scale float64) geom2d.Segment {
	a, b := f.Vertices[ia], f.Vertices[ib]
	idA, idB := f.VertexIDs[ia], f.VertexIDs[ib]

	et := geom2d.EdgeBottom
	if facetHasVertexBelow(f, zhat) {
		et = geom2d.EdgeTop
		a, b = b, a
		idA, idB = idB, idA
	}

	pa := vertexPoint(a, idA, scale)
	pb := vertexPoint(b, idB, scale)

	return geom2d.Segment{
		A: pa, B: pb,
		VertexIDA: intPtr(idA), VertexIDB: intPtr(idB),
		EdgeType: et,
	}
}

// dedupVertexPoints removes the duplicate entry produced when a facet
// vertex sits exactly on the cutting plane: that vertex is seen once per
// incident side (two sides), so it always arrives as two points sharing
// a VertexID. This holds regardless of whether a third, crossing point
// from the facet's opposite side is also present in the same points
// slice.
//
// points is at most 3 elements (one facet, one plane), so the per-call
// allocation below is not worth avoiding with an in-place compaction.
func dedupVertexPoints(points []geom2d.Point, logger *slicelog.Logger, fi int) []geom2d.Point {
	var firstIdx = -1
	for i, p := range points {
		if p.VertexID == nil {
			continue
		}
		if firstIdx == -1 {
			firstIdx = i
			continue
		}
		if *points[firstIdx].VertexID != *p.VertexID {
			logger.Warnf("facet %d: vertex-on-plane points disagree (%d vs %d)", fi, *points[firstIdx].VertexID, *p.VertexID)
			return points // leave as-is; caller's count check will flag it as malformed
		}
		// p duplicates points[firstIdx]: drop it.
		out := make([]geom2d.Point, 0, len(points)-1)
		out = append(out, points[:i]...)
		out = append(out, points[i+1:]...)
		return out
	}
	return points
}

// assembleSegment builds the final segment per spec step 3c: "Assemble
// one segment from points[1] -> points[0]".
func assembleSegment(points []geom2d.Point) geom2d.Segment {
	a, b := points[1], points[0]
	return geom2d.Segment{
		A: a, B: b,
		VertexIDA: a.VertexID, VertexIDB: b.VertexID,
		EdgeIDA: a.EdgeID, EdgeIDB: b.EdgeID,
	}
}

// vertexPoint builds an on-plane point carrying a vertex id.
func vertexPoint(v mgl64.Vec3, vertexID int, scale float64) geom2d.Point {
	return geom2d.Point{
		X:        roundScaled(v.X(), scale),
		Y:        roundScaled(v.Y(), scale),
		VertexID: intPtr(vertexID),
	}
}

// crossingPoint linearly interpolates the XY position where side a->b
// crosses the plane at zhat and carries the side's edge id.
func crossingPoint(a, b mgl64.Vec3, zhat float64, edgeID int, scale float64) geom2d.Point {
	t := (zhat - a.Z()) / (b.Z() - a.Z())
	x := a.X() + t*(b.X()-a.X())
	y := a.Y() + t*(b.Y()-a.Y())
	return geom2d.Point{
		X:      roundScaled(x, scale),
		Y:      roundScaled(y, scale),
		EdgeID: intPtr(edgeID),
	}
}

func roundScaled(v, scale float64) int64 {
	return int64(math.Round(v * scale))
}

func intPtr(v int) *int { return &v }

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
