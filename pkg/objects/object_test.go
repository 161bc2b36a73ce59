package objects

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sphereAt(x, z float64, r float64) *Sphere {
	tr := transform.NewTransform(core.Identity(3), core.NewVec3(x, 0, z))
	return NewSphere(tr, r, stubMaterial{})
}

func TestIntersectScene_ClosestHitIsFirst(t *testing.T) {
	far := sphereAt(0, -10, 1)
	near := sphereAt(0, -2, 1)
	objs := []Object{far, near}

	ray := transform.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hits := IntersectScene(objs, ray, true)

	require.Len(t, hits, 2)
	minDist := hits[0].Position.Subtract(ray.Origin).Length()
	for _, h := range hits {
		d := h.Position.Subtract(ray.Origin).Length()
		assert.GreaterOrEqual(t, d, minDist-1e-9)
	}
	assert.Same(t, near, hits[0].Object)
}

func TestIntersectScene_FirstHitOnlyWhenNotAll(t *testing.T) {
	far := sphereAt(0, -10, 1)
	near := sphereAt(0, -2, 1)
	objs := []Object{far, near}

	ray := transform.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hits := IntersectScene(objs, ray, false)
	require.Len(t, hits, 1)
	assert.Same(t, far, hits[0].Object)
}
