// Package mesh owns the facet array, the shared-vertex table, and the
// per-facet neighbour pointers that every other package in this module
// (edgeindex, slicer, toposplit, transform, projection) reads from.
//
//	types.go     — Store, Facet, aggregate stats, sentinel errors
//	methods.go   — bounding box, normal recalculation, and Analyze on Store
//	merge.go     — append-only MeshMerge
//
// Store does not lock itself: the slicing pipeline is a single-threaded
// cooperative core (see the slicer package), and the contract that a
// Store is not mutated while a slice is in progress is enforced by the
// caller, not by a mutex.
package mesh
