// Package projection implements the two auxiliary operations named in
// spec §4.6: flattening a mesh to its horizontal footprint, and the
// convex hull of a mesh's vertex cloud.
//
// Horizontal projection is not a simple per-facet union: an unmodified
// union of every facet's triangle can leave gap slivers along shared
// edges where floating point noise in the source STL nudges adjacent
// triangles apart by a fraction of a scaled unit. Each triangle is
// therefore dilated slightly before the union, via
// github.com/go-clipper/clipper2's InflatePaths, same as the Vatti
// scanline engine that package wraps.
package projection

import (
	clipper "github.com/go-clipper/clipper2"

	"github.com/sliceengine/sliceengine/geom2d"
	"github.com/sliceengine/sliceengine/mesh"
)

// footprintOffset is the dilation applied to each facet footprint before
// union, in scaled grid units, to close coincident-edge slivers (spec
// §4.6 "0.01 scaled-unit offset").
const footprintOffset = 0.01

// Horizontal returns the union footprint of every facet's projection
// onto the XY plane; each projected triangle is dilated by
// footprintOffset before the union to close slivers left by
// near-coincident triangle edges.
func Horizontal(store *mesh.Store, scalingFactor float64) ([]geom2d.Polygon, error) {
	subjects := make(clipper.Paths64, 0, store.FacetCount())
	for i := range store.Facets {
		f := store.Facets[i]
		path := facetFootprint(f, scalingFactor)
		if path == nil {
			continue // degenerate (zero-area) projection, contributes nothing
		}
		subjects = append(subjects, path)
	}
	if len(subjects) == 0 {
		return nil, nil
	}

	dilated := clipper.InflatePaths(subjects, footprintOffset, clipper.JoinTypeRound, clipper.EndTypePolygon, 2.0)
	union := clipper.Union(dilated, clipper.FillRuleNonZero)
	return toPolygons(union), nil
}

// facetFootprint projects a facet's three vertices to scaled-integer XY,
// oriented CCW as clipper2 expects for a positive-area subject path. A
// facet that collapses to a degenerate 2D triangle (near-vertical wall,
// edge-on to the projection) contributes no area and returns nil.
func facetFootprint(f mesh.Facet, scalingFactor float64) clipper.Path64 {
	p := clipper.Path64{
		toPoint64(f.Vertices[0], scalingFactor),
		toPoint64(f.Vertices[1], scalingFactor),
		toPoint64(f.Vertices[2], scalingFactor),
	}
	if signedArea2(p) == 0 {
		return nil
	}
	if signedArea2(p) < 0 {
		p[1], p[2] = p[2], p[1]
	}
	return p
}

func signedArea2(p clipper.Path64) int64 {
	return (p[1].X-p[0].X)*(p[2].Y-p[0].Y) - (p[2].X-p[0].X)*(p[1].Y-p[0].Y)
}

func toPoint64(v interface{ X() float64; Y() float64 }, scalingFactor float64) clipper.Point64 {
	return clipper.Point64{
		X: int64(v.X() / scalingFactor),
		Y: int64(v.Y() / scalingFactor),
	}
}

func toPolygons(paths clipper.Paths64) []geom2d.Polygon {
	polys := make([]geom2d.Polygon, len(paths))
	for i, path := range paths {
		poly := make(geom2d.Polygon, len(path))
		for j, pt := range path {
			poly[j] = geom2d.Point{X: pt.X, Y: pt.Y}
		}
		polys[i] = poly
	}
	return polys
}

// ConvexHull returns the convex hull of every vertex position in store,
// projected onto XY, as a CCW polygon in scaled-integer units, computed
// with a small local monotone-chain implementation.
func ConvexHull(store *mesh.Store, scalingFactor float64) (geom2d.Polygon, error) {
	if store.FacetCount() == 0 {
		return nil, nil
	}

	pts := make([]geom2d.Point, 0, store.FacetCount()*3)
	for i := range store.Facets {
		f := store.Facets[i]
		for _, v := range f.Vertices {
			pts = append(pts, geom2d.Point{
				X: int64(v.X() / scalingFactor),
				Y: int64(v.Y() / scalingFactor),
			})
		}
	}

	return monotoneChainHull(pts), nil
}

func monotoneChainHull(pts []geom2d.Point) geom2d.Polygon {
	sorted := append([]geom2d.Point(nil), pts...)
	sortPoints(sorted)
	sorted = dedupSorted(sorted)
	if len(sorted) < 3 {
		return sorted
	}

	lower := buildChain(sorted)
	upper := buildChain(reversed(sorted))

	hull := make(geom2d.Polygon, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

func buildChain(pts []geom2d.Point) []geom2d.Point {
	chain := make([]geom2d.Point, 0, len(pts))
	for _, p := range pts {
		for len(chain) >= 2 && cross(chain[len(chain)-2], chain[len(chain)-1], p) <= 0 {
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, p)
	}
	return chain
}

func cross(o, a, b geom2d.Point) int64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func sortPoints(pts []geom2d.Point) {
	// insertion sort: hull inputs are small (vertex counts of one
	// mesh), and this keeps the package dependency-free for ordering.
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && less(pts[j], pts[j-1]); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}

func less(a, b geom2d.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func dedupSorted(pts []geom2d.Point) []geom2d.Point {
	out := pts[:0]
	for i, p := range pts {
		if i == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func reversed(pts []geom2d.Point) []geom2d.Point {
	out := make([]geom2d.Point, len(pts))
	for i, p := range pts {
		out[len(out)-1-i] = p
	}
	return out
}
