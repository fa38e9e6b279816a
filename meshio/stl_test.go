package meshio_test

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliceengine/sliceengine/mesh"
	"github.com/sliceengine/sliceengine/meshio"
)

func TestSaveAndLoadSTLRoundTrip(t *testing.T) {
	s := mesh.NewStore()
	s.AddFacet(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	s.AddFacet(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 1}, mgl64.Vec3{0, 1, 1})

	path := filepath.Join(t.TempDir(), "roundtrip.stl")
	require.NoError(t, meshio.SaveSTL(path, s))

	loaded, err := meshio.LoadSTL(path)
	require.NoError(t, err)

	require.Equal(t, s.FacetCount(), loaded.FacetCount())
	for i := range s.Facets {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, s.Facets[i].Vertices[c].X(), loaded.Facets[i].Vertices[c].X(), 1e-6)
			assert.InDelta(t, s.Facets[i].Vertices[c].Y(), loaded.Facets[i].Vertices[c].Y(), 1e-6)
			assert.InDelta(t, s.Facets[i].Vertices[c].Z(), loaded.Facets[i].Vertices[c].Z(), 1e-6)
		}
	}
	assert.False(t, loaded.Repaired, "a freshly loaded mesh must not report itself repaired")
}

func TestLoadSTLMissingFile(t *testing.T) {
	_, err := meshio.LoadSTL(filepath.Join(t.TempDir(), "does-not-exist.stl"))
	assert.ErrorIs(t, err, meshio.ErrIOFailure)
}
