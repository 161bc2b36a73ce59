package objects

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upFacingPlane(width, height float64) *Plane {
	tr := transform.NewTransform(core.Identity(3), core.NewVec3(0, 0, 0))
	return NewPlane(tr, width, height, stubMaterial{core.NewVec3(0.5, 0.5, 0.5)})
}

func TestPlane_HitWithinBounds(t *testing.T) {
	p := upFacingPlane(2, 2)
	ray := transform.NewRay(core.NewVec3(0.2, 5, -0.3), core.NewVec3(0, -1, 0))

	isect := p.Intersect(ray)
	require.True(t, isect.Hit)
	assert.InDelta(t, 0.2, isect.Position.X, 1e-9)
	assert.InDelta(t, -0.3, isect.Position.Z, 1e-9)
	assert.Less(t, isect.Position.X, 1.0)
	assert.Greater(t, isect.Position.X, -1.0)
}

func TestPlane_MissOutsideBounds(t *testing.T) {
	p := upFacingPlane(2, 2)
	ray := transform.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, -1, 0))
	isect := p.Intersect(ray)
	assert.False(t, isect.Hit)
}

func TestPlane_MissParallel(t *testing.T) {
	p := upFacingPlane(2, 2)
	ray := transform.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))
	isect := p.Intersect(ray)
	assert.False(t, isect.Hit)
}

func TestPlane_UVRoundTrip(t *testing.T) {
	p := upFacingPlane(4, 4)
	world := p.UVToWorld(0.75, 0.25)
	uv := p.WorldToUV(world)
	assert.InDelta(t, 0.75, uv.X, 1e-9)
	assert.InDelta(t, 0.25, uv.Y, 1e-9)
}
