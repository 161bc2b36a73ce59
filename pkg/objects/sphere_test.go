package objects

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphere_HeadOnHit(t *testing.T) {
	tr := transform.NewTransform(core.Identity(3), core.NewVec3(0, 0, 0))
	sphere := NewSphere(tr, 1.0, stubMaterial{core.NewVec3(1, 0, 0)})

	ray := transform.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	isect := sphere.Intersect(ray)

	require.True(t, isect.Hit)
	dist := isect.Position.Subtract(core.NewVec3(0, 0, 0)).Length()
	assert.InDelta(t, 1.0, dist, 1e-9)
	assert.InDelta(t, 1.0, isect.Position.Z, 1e-9)
}

func TestSphere_Miss(t *testing.T) {
	tr := transform.NewTransform(core.Identity(3), core.NewVec3(0, 0, 0))
	sphere := NewSphere(tr, 1.0, stubMaterial{})

	ray := transform.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1))
	isect := sphere.Intersect(ray)
	assert.False(t, isect.Hit)
}

func TestSphere_NormalIsUnitAndOutward(t *testing.T) {
	tr := transform.NewTransform(core.Identity(3), core.NewVec3(0, 0, 0))
	sphere := NewSphere(tr, 2.0, stubMaterial{})

	p := core.NewVec3(0, 2, 0)
	n := sphere.NormalAt(p)
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
	assert.InDelta(t, 1.0, n.Y, 1e-9)
}
