package transform_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/sliceengine/sliceengine/meshbuilder"
	"github.com/sliceengine/sliceengine/transform"
)

func TestScale(t *testing.T) {
	store := meshbuilder.UnitCube()
	transform.Scale(store, 2)

	bb := store.BoundingBox()
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, bb.Min)
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, bb.Max)
}

func TestTranslate(t *testing.T) {
	store := meshbuilder.UnitCube()
	transform.Translate(store, mgl64.Vec3{5, -1, 3})

	bb := store.BoundingBox()
	assert.Equal(t, mgl64.Vec3{5, -1, 3}, bb.Min)
	assert.Equal(t, mgl64.Vec3{6, 0, 4}, bb.Max)
}

func TestAlignToOrigin(t *testing.T) {
	store := meshbuilder.UnitCube()
	transform.Translate(store, mgl64.Vec3{5, -1, 3})

	transform.AlignToOrigin(store)

	bb := store.BoundingBox()
	assert.InDelta(t, 0, bb.Min.X(), 1e-9)
	assert.InDelta(t, 0, bb.Min.Y(), 1e-9)
	assert.InDelta(t, 0, bb.Min.Z(), 1e-9)
}

func TestRotatePreservesVolumeBounds(t *testing.T) {
	store := meshbuilder.UnitCube()
	q := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	transform.Rotate(store, q)

	bb := store.BoundingBox()
	size := bb.Size()
	assert.InDelta(t, 1, size.X(), 1e-9)
	assert.InDelta(t, 1, size.Y(), 1e-9)
	assert.InDelta(t, 1, size.Z(), 1e-9)
}

func TestApplyRecalculatesNormals(t *testing.T) {
	store := meshbuilder.UnitCube()
	before := store.Facets[0].Normal

	transform.Apply(store, func(v mgl64.Vec3) mgl64.Vec3 { return v.Mul(3) })

	after := store.Facets[0].Normal
	assert.InDelta(t, before.X(), after.X(), 1e-9, "uniform scale must not change the normal direction")
}
