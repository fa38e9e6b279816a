// Package geom2d defines the scaled-integer 2D primitives shared by the
// slicer, loopbuilder, and projection packages: points on the cut plane,
// the segments a facet contributes to one plane, and the closed polygons
// a loop builder assembles from them.
//
// Coordinates are integers on a fixed grid (see slicer.DefaultScalingFactor);
// conversion from floating-point millimetres happens once, at emission,
// and nowhere else downstream.
package geom2d

// Point is a 2D point in scaled integer units. On points the slicer emits,
// exactly one of VertexID or EdgeID is non-nil: VertexID when the point
// coincides with a mesh vertex, EdgeID when it lies strictly inside a mesh
// edge. Points built by the projection package carry neither.
type Point struct {
	X, Y     int64
	VertexID *int
	EdgeID   *int
}

// EdgeType marks a segment that came from a horizontal facet edge lying
// exactly on the cutting plane.
type EdgeType int

const (
	// EdgeNone marks an ordinary crossing segment.
	EdgeNone EdgeType = iota
	// EdgeTop marks a horizontal edge capping the solid from above.
	EdgeTop
	// EdgeBottom marks a horizontal edge capping the solid from below.
	EdgeBottom
)

func (t EdgeType) String() string {
	switch t {
	case EdgeTop:
		return "Top"
	case EdgeBottom:
		return "Bottom"
	default:
		return "None"
	}
}

// Segment is the ordered intersection of one facet with one cutting plane.
// VertexID/EdgeID fields mirror Point's: they let LoopBuilder chain
// segments by topology instead of by re-comparing coordinates.
type Segment struct {
	A, B       Point
	VertexIDA  *int
	VertexIDB  *int
	EdgeIDA    *int
	EdgeIDB    *int
	Skip       bool
	EdgeType   EdgeType
	SourceFace int // facet id that emitted this segment; a stable key for ordering segments by source facet
}

// Polygon is a closed sequence of points; the edge from the last point back
// to the first is implicit. Winding (CW/CCW) is whatever the source facet
// ordering produced; callers re-orient if they need a canonical winding.
type Polygon []Point

// SameVertex reports whether two optional vertex ids refer to the same
// shared vertex. Both nil compares false: "no vertex id" is never a match.
func SameVertex(a, b *int) bool {
	return a != nil && b != nil && *a == *b
}

// SameEdge reports whether two optional edge ids refer to the same edge.
func SameEdge(a, b *int) bool {
	return a != nil && b != nil && *a == *b
}
