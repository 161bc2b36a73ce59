package objects

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitCube() *Cube {
	tr := transform.NewTransform(core.Identity(3), core.NewVec3(0, 0, 0))
	return NewCube(tr, 2, 2, 2, stubMaterial{core.NewVec3(0.2, 0.2, 0.2)})
}

func TestCube_StraightIntoFaceHits(t *testing.T) {
	c := unitCube()
	ray := transform.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	isect := c.Intersect(ray)
	require.True(t, isect.Hit)
	assert.InDelta(t, 1.0, isect.Position.Z, 1e-9)
}

func TestCube_ParallelMissOffBox(t *testing.T) {
	c := unitCube()
	ray := transform.NewRay(core.NewVec3(5, 0, -5), core.NewVec3(0, 0, 1))
	isect := c.Intersect(ray)
	assert.False(t, isect.Hit)
}

func TestCube_OriginInsideBoxMisses(t *testing.T) {
	c := unitCube()
	ray := transform.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	isect := c.Intersect(ray)
	assert.False(t, isect.Hit)
}

func TestCube_NormalAtFace(t *testing.T) {
	c := unitCube()
	n := c.NormalAt(core.NewVec3(1, 0.2, 0.3))
	assert.Equal(t, core.NewVec3(1, 0, 0), n)
}
