// Package sliceengine is a triangle-mesh plane-sweep slicing engine: it
// cuts a repaired mesh with a set of horizontal planes and assembles
// each plane's intersection segments into closed 2D polygons.
//
// The engine is organized as narrow collaborating packages rather than
// one monolith:
//
//	mesh/        — Store, Facet, Merge: the mesh's in-memory representation
//	edgeindex/   — canonical undirected edge enumeration for one slice call
//	slicer/      — the plane-sweep kernel
//	loopbuilder/ — stitches one plane's segments into closed polygons
//	toposplit/   — splits a mesh into its connected components
//	repair/      — the Repairer contract and its default neighbour-recomputing impl
//	meshio/      — STL load/save and shared-vertex generation
//	transform/   — affine operations (scale, translate, rotate, align-to-origin)
//	projection/  — horizontal footprint and convex hull
//	geom2d/      — the scaled-integer 2D primitives shared by the above
//	slicelog/    — the ambient logging wrapper
//	meshbuilder/ — deterministic mesh fixtures for tests and the CLI demo
//	cmd/meshslicer/ — a thin CLI wiring the above end to end
package sliceengine
