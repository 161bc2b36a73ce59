package lights

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/transform"
	"github.com/stretchr/testify/assert"
)

func gridAt(pos core.Vec3, w, h float64) *objects.Plane {
	t := transform.NewTransform(core.Identity(3), pos)
	return objects.NewPlane(t, w, h, stubMaterial{})
}

func TestArea_SampleUsesCallerDirectionAndGridDistance(t *testing.T) {
	grid := gridAt(core.NewVec3(0, 4, 0), 2, 2)
	a := NewArea(grid, core.NewVec3(1, 1, 1), 3.0, 1.0, 4, false)
	rng := rand.New(rand.NewSource(1))

	dir := core.NewVec3(0, 1, 0)
	s := a.Sample(rng, core.Vec3{}, dir, core.NewVec3(0, 0, 1), SamplerSettings{})

	assert.Equal(t, dir, s.Ray.Direction)
	assert.InDelta(t, 4.0, s.Distance, 1e-9)
	assert.Equal(t, core.NewVec3(3, 3, 3), s.Color)
}

func TestArea_ShadowFullyVisibleWithNoOccluders(t *testing.T) {
	grid := gridAt(core.NewVec3(0, 4, 0), 2, 2)
	a := NewArea(grid, core.NewVec3(1, 1, 1), 1, 0.6, 4, false)
	rng := rand.New(rand.NewSource(1))

	v := a.Shadow(rng, nil, core.Vec3{})
	assert.InDelta(t, 1-0.6, v, 1e-9)
}

func TestArea_ShadowFullyOccluded(t *testing.T) {
	grid := gridAt(core.NewVec3(0, 4, 0), 2, 2)
	a := NewArea(grid, core.NewVec3(1, 1, 1), 1, 0.5, 4, false)

	occluder := objects.NewSphere(transform.NewTransform(core.Identity(3), core.NewVec3(0, 2, 0)), 1, stubMaterial{})
	rng := rand.New(rand.NewSource(1))

	v := a.Shadow(rng, []objects.Object{occluder}, core.Vec3{})
	assert.Equal(t, 0.0, v)
}
