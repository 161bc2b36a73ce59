package lights

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// shadowRayBias pulls a shadow ray's far bound in slightly short of the
// light so an occluder sitting exactly at the light's position (or a hit
// on the light's own geometry) doesn't self-shadow.
const shadowRayBias = 1e-3

// Point is a point light at a fixed world-space position. Samples is
// always effectively 1 (NewPoint defaults it so).
type Point struct {
	LightBase
	Position core.Vec3
}

// NewPoint creates a point light.
func NewPoint(position core.Vec3, color core.Vec3, intensity, shadowIntensity float64) *Point {
	return &Point{
		LightBase: LightBase{Color: color, Intensity: intensity, ShadowIntensity: shadowIntensity, Samples: 1},
		Position:  position,
	}
}

// Sample returns a ray from origin to the light's position; roughness and
// direction/up are ignored (both legs of the BSDF collapse to the same
// sample for a point light, per the design note on this quirk).
func (p *Point) Sample(rng *rand.Rand, origin, direction, up core.Vec3, settings SamplerSettings) LightSample {
	toLight := p.Position.Subtract(origin)
	return LightSample{
		Ray:      transform.NewRay(origin, toLight),
		Color:    p.Color.Multiply(p.Intensity),
		Distance: toLight.Length(),
	}
}

// Shadow casts a single shadow ray toward the light's position.
func (p *Point) Shadow(rng *rand.Rand, objs []objects.Object, hit core.Vec3) float64 {
	toLight := p.Position.Subtract(hit)
	lightDist := toLight.Length()
	ray := transform.NewRay(hit, toLight)

	hits := objects.IntersectScene(objs, ray, true)
	for _, isect := range hits {
		if isect.Position.Subtract(hit).Length() < lightDist-shadowRayBias {
			return 1 - p.ShadowIntensity
		}
	}
	return 1
}
