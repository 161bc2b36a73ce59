// Package lights implements the renderer's closed set of light kinds
// (Point, Area, Environment). Each exposes a shadow test, a sampler
// returning an incoming-light sample, and an inverse-square attenuation
// policy shared via LightBase.
package lights

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// SamplerType selects the distribution a light's Sample method draws from
// when it needs a direction. Only Environment uses this; Point and Area
// ignore it so every Light shares one Sample signature.
type SamplerType int

const (
	SamplerUniform SamplerType = iota
	SamplerGGX
)

// SamplerSettings configures direction sampling for Light.Sample.
type SamplerSettings struct {
	Type      SamplerType
	Roughness float64
}

// LightSample is the incoming radiance the shader convolves with the BRDF.
type LightSample struct {
	Ray      transform.Ray
	Color    core.Vec3
	Distance float64
}

// Light is implemented by Point, Area and Environment.
type Light interface {
	// Shadow returns the visibility fraction in [0, 1] of the light from
	// hit, given the scene's objects for occlusion testing.
	Shadow(rng *rand.Rand, objs []objects.Object, hit core.Vec3) float64

	// Sample returns an incoming-light sample toward origin. direction is
	// a caller-supplied probe direction (used by Area as its reflection
	// probe direction and by Environment as the hemisphere's pole); up is
	// a tangent hint for lights that build a local frame.
	Sample(rng *rand.Rand, origin, direction, up core.Vec3, settings SamplerSettings) LightSample

	// Attenuate applies this light's distance-falloff policy.
	Attenuate(color core.Vec3, intensity, distance float64) core.Vec3

	// SampleCount is how many taps the shader should take per shading
	// point: the configured Samples value for every kind (NewPoint sets
	// it to 1 for Point).
	SampleCount() int

	// LightIntensity returns the light's configured intensity scalar, for
	// callers (the shader's direct-lighting loop) that need to pass it
	// explicitly into Attenuate.
	LightIntensity() float64
}

// LightBase holds the fields and attenuation policy shared by every light
// kind: a color, an intensity, a shadow-darkening factor in [0, 1], and a
// sample count.
type LightBase struct {
	Color           core.Vec3
	Intensity       float64
	ShadowIntensity float64
	Samples         int
}

// Attenuate applies inverse-square falloff: color * intensity / d^2.
func (b LightBase) Attenuate(color core.Vec3, intensity, distance float64) core.Vec3 {
	return color.Multiply(intensity / (distance * distance))
}

// SampleCount returns the configured sample count.
func (b LightBase) SampleCount() int { return b.Samples }

// LightIntensity returns the configured intensity scalar.
func (b LightBase) LightIntensity() float64 { return b.Intensity }
