package lights

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// Area is a rectangular area light backed by a grid plane. Samples is the
// requested shadow-sample count; Shadow rounds it up to a square grid of
// ceil(sqrt(Samples))^2 stratified cells.
// RenderGeometry, when set, makes the grid directly visible by having the
// scene inject it into the object list (see scene.Scene.Initialize), and
// biases shadow-sample offsets away from its own geometry.
type Area struct {
	LightBase
	Grid           *objects.Plane
	RenderGeometry bool
}

// NewArea creates an area light backed by grid.
func NewArea(grid *objects.Plane, color core.Vec3, intensity, shadowIntensity float64, samples int, renderGeometry bool) *Area {
	return &Area{
		LightBase:      LightBase{Color: color, Intensity: intensity, ShadowIntensity: shadowIntensity, Samples: samples},
		Grid:           grid,
		RenderGeometry: renderGeometry,
	}
}

// Sample returns a ray from origin along the caller-supplied direction,
// used as the reflection probe direction by the shader's specular leg.
func (a *Area) Sample(rng *rand.Rand, origin, direction, up core.Vec3, settings SamplerSettings) LightSample {
	center := a.Grid.Transform.Position()
	return LightSample{
		Ray:      transform.NewRay(origin, direction),
		Color:    a.Color.Multiply(a.Intensity),
		Distance: center.Subtract(origin).Length(),
	}
}

// Shadow stratifies the grid plane into ceil(sqrt(Samples))^2 cells, taking
// one jittered sample per cell, and returns the visible fraction scaled by
// (1 - ShadowIntensity).
func (a *Area) Shadow(rng *rand.Rand, objs []objects.Object, hit core.Vec3) float64 {
	n := int(math.Ceil(math.Sqrt(float64(a.Samples))))
	if n < 1 {
		n = 1
	}
	step := 1.0 / float64(n)

	surfaceOffset := 0.0
	if a.RenderGeometry {
		surfaceOffset = 1.5
	}

	visible := 0
	total := n * n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			u := float64(i)*step + rng.Float64()*step
			v := float64(j)*step + rng.Float64()*step
			samplePoint := a.Grid.UVToWorld(u, v, surfaceOffset)

			toSample := samplePoint.Subtract(hit)
			dist := toSample.Length()
			ray := transform.NewRay(hit, toSample)

			occluded := false
			for _, isect := range objects.IntersectScene(objs, ray, true) {
				if isect.Position.Subtract(hit).Length() < dist-shadowRayBias {
					occluded = true
					break
				}
			}
			if !occluded {
				visible++
			}
		}
	}

	fraction := float64(visible) / float64(total)
	return fraction * (1 - a.ShadowIntensity)
}
