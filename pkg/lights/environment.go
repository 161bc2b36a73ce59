package lights

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/texture"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// Environment is an image-based light sourced from a six-face cube map. It
// has no position or falloff of its own. Attenuate is the plain inherited
// inverse-square policy; because Sample reports Distance 1, applying it
// (as Shader.BSDF does for every light) scales the sample by the given
// intensity with no falloff.
type Environment struct {
	LightBase
	Cube *texture.CubeMap
}

// NewEnvironment creates an environment light backed by cube.
func NewEnvironment(cube *texture.CubeMap, intensity float64, samples int) *Environment {
	return &Environment{
		LightBase: LightBase{Color: core.NewVec3(1, 1, 1), Intensity: intensity, ShadowIntensity: 0, Samples: samples},
		Cube:      cube,
	}
}

// Sample builds a local frame around direction (the hemisphere pole) and up
// (the tangent hint), draws a direction from that frame according to
// settings.Type, and reads the cube map along the resulting world-space
// ray. Distance is reported as 1 since the environment has no real depth.
func (e *Environment) Sample(rng *rand.Rand, origin, direction, up core.Vec3, settings SamplerSettings) LightSample {
	frame := transform.NewTransformFromVectors(direction, up, core.Vec3{})

	r1, r2 := core.Random(rng), core.Random(rng)
	var local core.Vec3
	if settings.Type == SamplerGGX {
		local = core.ImportanceSampleHemisphereGGX(r1, r2, settings.Roughness)
	} else {
		local = core.SampleHemisphere(r1, r2)
	}

	worldDir := frame.LocalToWorldDirection(local)
	sampleRay := transform.NewRay(origin, worldDir)
	color := e.Cube.Sample(sampleRay)

	return LightSample{
		Ray:      sampleRay,
		Color:    color.Multiply(e.Intensity),
		Distance: 1,
	}
}

// Shadow always returns full visibility: the environment has no occluding
// geometry of its own, and this method does not test objs for occlusion.
func (e *Environment) Shadow(rng *rand.Rand, objs []objects.Object, hit core.Vec3) float64 {
	return 1
}
