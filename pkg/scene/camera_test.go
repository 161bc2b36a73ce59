package scene

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
	"github.com/stretchr/testify/assert"
)

func TestCamera_CreateRayIsNormalized(t *testing.T) {
	tr := transform.NewTransform(core.Identity(3), core.NewVec3(0, 0, 5))
	cam := NewCamera(1.0, tr, 8, 8, 0.1)
	rng := rand.New(rand.NewSource(1))

	ray := cam.CreateRay(rng, 10)
	assert.InDelta(t, 1.0, ray.Direction.Length(), 1e-9)
	assert.Equal(t, tr.Position(), ray.Origin)
}

func TestCamera_SetAspectRatioForwardsToViewport(t *testing.T) {
	tr := transform.NewTransform(core.Identity(3), core.Vec3{})
	cam := NewCamera(1.0, tr, 100, 50, 0.1)
	cam.SetAspectRatio(2, 1)
	assert.Equal(t, 50, cam.Viewport.PixelsX)
}
