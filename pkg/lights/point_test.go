package lights

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/transform"
	"github.com/stretchr/testify/assert"
)

func TestPoint_SampleReturnsRayAndDistanceToPosition(t *testing.T) {
	p := NewPoint(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1), 2.0, 1.0)
	rng := rand.New(rand.NewSource(1))

	s := p.Sample(rng, core.Vec3{}, core.Vec3{}, core.Vec3{}, SamplerSettings{})

	assert.InDelta(t, 5.0, s.Distance, 1e-9)
	assert.Equal(t, core.NewVec3(2, 2, 2), s.Color)
	assert.InDelta(t, 1.0, s.Ray.Direction.Length(), 1e-9)
}

func TestPoint_ShadowUnoccluded(t *testing.T) {
	p := NewPoint(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1), 1, 1)
	rng := rand.New(rand.NewSource(1))

	v := p.Shadow(rng, nil, core.Vec3{})
	assert.Equal(t, 1.0, v)
}

func TestPoint_ShadowOccluded(t *testing.T) {
	p := NewPoint(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1), 1, 0.8)
	occluder := objects.NewSphere(transform.NewTransform(core.Identity(3), core.NewVec3(0, 2, 0)), 0.5, stubMaterial{})
	rng := rand.New(rand.NewSource(1))

	v := p.Shadow(rng, []objects.Object{occluder}, core.Vec3{})
	assert.InDelta(t, 0.2, v, 1e-9)
}
