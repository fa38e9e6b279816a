// File: types.go
// Role: Facet, Store, and aggregate-statistics types; sentinel errors.
package mesh

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for mesh operations.
var (
	// ErrInvalidState indicates an operation required a repaired mesh that is not.
	ErrInvalidState = errors.New("mesh: operation requires a repaired mesh")

	// ErrVertexNotFound indicates a VertexID referenced a shared vertex that does not exist.
	ErrVertexNotFound = errors.New("mesh: vertex id out of range")

	// ErrFacetNotFound indicates a FacetID outside [0, FacetCount).
	ErrFacetNotFound = errors.New("mesh: facet id out of range")

	// ErrNoSharedVertices indicates an operation needs VertexIDs but GenerateSharedVertices has not run.
	ErrNoSharedVertices = errors.New("mesh: shared vertices not generated")
)

// boundaryNeighbour marks a facet edge with no neighbouring facet.
const boundaryNeighbour = -1

// unsetVertexID marks a facet corner whose shared-vertex id has not been assigned.
const unsetVertexID = -1

// FacetType classifies a facet as normal, horizontal, or degenerate.
// Store.Analyze uses it to count degenerate facets; the slicer applies
// its horizontal-skip rule (spec §4.2 step 1) from Facet.ZRange directly.
type FacetType int

const (
	// FacetNormal is an ordinary non-degenerate, non-horizontal facet.
	FacetNormal FacetType = iota
	// FacetHorizontal has all three vertices at the same Z.
	FacetHorizontal
	// FacetDegenerate has near-zero area (collapsed triangle).
	FacetDegenerate
)

// degenerateAreaEpsilon bounds the squared cross-product magnitude below
// which a facet is considered collapsed rather than merely thin.
const degenerateAreaEpsilon = 1e-18

// Facet is a single oriented triangle of the surface mesh. Vertices are
// cached in full so slicing never needs an index lookup; VertexIDs point
// into the Store's shared-vertex table once GenerateSharedVertices has
// run (unsetVertexID before that). Neighbour holds, per edge i (the side
// Vertices[i] -> Vertices[(i+1)%3]), the adjacent facet id, or
// boundaryNeighbour if the edge is a mesh boundary.
type Facet struct {
	Vertices  [3]mgl64.Vec3
	VertexIDs [3]int
	Normal    mgl64.Vec3
	Neighbour [3]int
}

// newFacet builds a Facet with unset vertex ids and boundary neighbours,
// computing its normal from vertex winding.
func newFacet(v0, v1, v2 mgl64.Vec3) Facet {
	normal := v1.Sub(v0).Cross(v2.Sub(v0))
	if lenSq := normal.LenSqr(); lenSq > 0 {
		normal = normal.Mul(1 / math.Sqrt(lenSq))
	}

	return Facet{
		Vertices:  [3]mgl64.Vec3{v0, v1, v2},
		VertexIDs: [3]int{unsetVertexID, unsetVertexID, unsetVertexID},
		Normal:    normal,
		Neighbour: [3]int{boundaryNeighbour, boundaryNeighbour, boundaryNeighbour},
	}
}

// ZRange returns the facet's minimum and maximum Z among its three vertices.
func (f *Facet) ZRange() (zmin, zmax float64) {
	zmin = f.Vertices[0].Z()
	zmax = zmin
	for i := 1; i < 3; i++ {
		z := f.Vertices[i].Z()
		if z < zmin {
			zmin = z
		}
		if z > zmax {
			zmax = z
		}
	}
	return zmin, zmax
}

// Type classifies the facet per FacetType's rules.
func (f *Facet) Type() FacetType {
	zmin, zmax := f.ZRange()
	if zmin == zmax {
		return FacetHorizontal
	}
	e1 := f.Vertices[1].Sub(f.Vertices[0])
	e2 := f.Vertices[2].Sub(f.Vertices[0])
	if e1.Cross(e2).LenSqr() < degenerateAreaEpsilon {
		return FacetDegenerate
	}
	return FacetNormal
}

// BoundingBox is an axis-aligned box in mesh units.
type BoundingBox struct {
	Min, Max mgl64.Vec3
}

// Size returns Max - Min.
func (b BoundingBox) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Stats is the aggregate summary returned by Store.Analyze: facet and
// vertex counts, boundary-edge count, and a cheap watertightness signal.
type Stats struct {
	FacetCount       int
	VertexCount      int
	BoundaryEdges    int // facet sides with no neighbour
	LooksWatertight  bool
	DegenerateFacets int
}

// Store owns the facet array, the shared-vertex table, and aggregate
// state for one mesh. It is mutated only by AddFacet, Merge, and the
// transform package's affine operations, each of which invalidates the
// cached bounding box and, where documented, the Repaired/shared-vertex
// state.
type Store struct {
	Facets   []Facet
	Vertices []mgl64.Vec3 // nil until GenerateSharedVertices runs

	// Repaired mirrors the spec's "repaired mesh" precondition. Set by
	// the repair collaborator; cleared by any topology-invalidating
	// mutation (Merge).
	Repaired bool

	bbox      BoundingBox
	bboxValid bool
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// FacetCount returns the number of facets.
func (s *Store) FacetCount() int { return len(s.Facets) }

// VertexCount returns the number of shared vertices, or 0 if
// GenerateSharedVertices has not run.
func (s *Store) VertexCount() int { return len(s.Vertices) }

// AddFacet appends a new triangle given its three world-space vertex
// positions and returns its dense facet id. Neighbour pointers and
// VertexIDs are left unset (boundary / unassigned) until repair and
// shared-vertex generation run. Invalidates the cached bounding box.
func (s *Store) AddFacet(v0, v1, v2 mgl64.Vec3) int {
	s.Facets = append(s.Facets, newFacet(v0, v1, v2))
	s.bboxValid = false
	return len(s.Facets) - 1
}

// Facet returns a read-only cursor (copy) to the facet at id.
func (s *Store) Facet(id int) (Facet, error) {
	if id < 0 || id >= len(s.Facets) {
		return Facet{}, ErrFacetNotFound
	}
	return s.Facets[id], nil
}
