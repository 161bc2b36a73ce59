// Package shader implements the Cook-Torrance microfacet BRDF that backs
// every Object's material. It depends on objects and lights rather than
// the other way around, so Shader can freely hand light samples and scene
// geometry to its BSDF evaluation without an import cycle.
package shader

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/texture"
	"github.com/df07/go-pathtracer/pkg/transform"
)

const (
	normalBias          = 0.0001
	specularDenomMin    = 0.001
	reflectionEnvBoost  = 100.0
	flatAmbientFactor   = 0.03
	envAmbientFactor    = 0.1
	hemispherePdf       = 1.0 / (2 * math.Pi)
	gammaExponent       = 2.2
)

// Shader is the renderer's one material kind: a Cook-Torrance microfacet
// BRDF parameterized by diffuse color, roughness and metalness, with a
// glossy self-reflection term. Emission is a settable field that BSDF
// does not read. The base
// color is named Diffuse, not Albedo, because Shader needs an Albedo()
// method to satisfy objects.Material and a type can't have both.
type Shader struct {
	Diffuse           core.Vec3
	Roughness         float64
	Metalness         float64
	IOR               float64
	Emission          core.Vec3
	DiffuseTexture    *texture.Texture
	ReflectionDepth   int
	ReflectionSamples int
}

// NewShader creates a shader with the given base parameters and no
// reflection or texture extras; callers set those fields directly.
func NewShader(diffuse core.Vec3, roughness, metalness, ior float64) *Shader {
	return &Shader{Diffuse: diffuse, Roughness: roughness, Metalness: metalness, IOR: ior}
}

// Albedo implements objects.Material with the shader's flat base color.
func (s *Shader) Albedo() core.Vec3 { return s.Diffuse }

// AlbedoAt implements objects.UVMaterial: when a diffuse texture is set it
// modulates the flat diffuse color by the texel at (u, v); otherwise it
// falls back to the flat color.
func (s *Shader) AlbedoAt(u, v float64) core.Vec3 {
	if s.DiffuseTexture == nil {
		return s.Diffuse
	}
	return s.Diffuse.MultiplyVec(s.DiffuseTexture.Sample(u, v))
}

// fresnelSchlick computes F(cosTheta, F0) = F0 + (1-F0)*(1-cosTheta)^5.
func fresnelSchlick(cosTheta float64, f0 core.Vec3) core.Vec3 {
	t := math.Pow(1-cosTheta, 5)
	return f0.Add(core.Splat3(1).Subtract(f0).Multiply(t))
}

// distributionGGX evaluates the GGX (Trowbridge-Reitz) normal distribution.
func distributionGGX(n, h core.Vec3, roughness float64) float64 {
	a := roughness * roughness
	a2 := a * a
	nDotH := math.Max(n.Dot(h), 0)
	nDotH2 := nDotH * nDotH

	denom := nDotH2*(a2-1) + 1
	denom = math.Pi * denom * denom
	return a2 / math.Max(denom, specularDenomMin)
}

// geometrySmith evaluates the Smith-Schlick geometry term G(N,V,L).
func geometrySmith(n, v, l core.Vec3, roughness float64) float64 {
	g1 := func(cos float64) float64 {
		r := roughness + 1
		k := (r * r) / 8
		return cos / (cos*(1-k) + k)
	}
	nDotV := math.Max(n.Dot(v), 0)
	nDotL := math.Max(n.Dot(l), 0)
	return g1(nDotV) * g1(nDotL)
}

// SceneReflections walks ReflectionDepth hops of glossy self-reflection
// starting at hit, drawing ReflectionSamples GGX-importance rays per hop
// and averaging the surface colors of whatever they strike. It returns
// the zero vector the moment any hop's rays all miss.
func (s *Shader) SceneReflections(rng *rand.Rand, origin, hit, normal core.Vec3, objs []objects.Object) core.Vec3 {
	color := core.Vec3{}
	if s.ReflectionDepth <= 0 || s.ReflectionSamples <= 0 {
		return color
	}

	for i := 0; i < s.ReflectionDepth; i++ {
		view := origin.Subtract(hit).Normalize()
		reflection := transform.Reflect(normal, view)
		frame := transform.NewTransformFromVectors(reflection, view, hit)

		var hopColor core.Vec3
		var lastIsect objects.Intersection
		hitCount := 0

		for j := 0; j < s.ReflectionSamples; j++ {
			r1, r2 := core.Random(rng), core.Random(rng)
			localDir := core.ImportanceSampleHemisphereGGX(r1, r2, s.Roughness)
			worldDir := frame.LocalToWorldDirection(localDir)
			ray := transform.NewRay(hit, worldDir)

			hits := objects.IntersectScene(objs, ray, true)
			if len(hits) == 0 {
				continue
			}
			lastIsect = hits[0]
			hopColor = hopColor.Add(lastIsect.SurfaceColor)
			hitCount++
		}
		if hitCount == 0 {
			return core.Vec3{}
		}

		hopColor = hopColor.Multiply(1.0 / float64(hitCount))
		color = color.Add(hopColor)

		origin = hit
		hit = lastIsect.Position.Add(normal.Multiply(normalBias))
		normal = lastIsect.Object.NormalAt(lastIsect.Position)
	}

	return color
}

// ambient computes the shader's ambient term: an environment-driven
// hemisphere estimate when any Environment light is present in lts,
// otherwise a flat fraction of the diffuse color. hit and reflection are
// the shading point and its mirror-reflection direction, used as the
// environment sampler's origin and tangent hint.
func (s *Shader) ambient(rng *rand.Rand, hit, normal, view, reflection core.Vec3, f0 core.Vec3, lts []lights.Light) core.Vec3 {
	var env *lights.Environment
	for _, l := range lts {
		if e, ok := l.(*lights.Environment); ok {
			env = e
			break
		}
	}
	if env == nil {
		return s.Diffuse.Multiply(flatAmbientFactor)
	}

	nDotV := math.Max(normal.Dot(view), 0)
	f := fresnelSchlick(nDotV, f0)
	kD := core.Splat3(1).Subtract(f).Multiply(1 - s.Metalness)

	samples := env.SampleCount()
	if samples <= 0 {
		samples = 1
	}
	var radiance core.Vec3
	for i := 0; i < samples; i++ {
		sample := env.Sample(rng, hit, normal, reflection, lights.SamplerSettings{Type: lights.SamplerUniform})
		radiance = radiance.Add(sample.Color)
	}
	radiance = radiance.Multiply(1.0 / float64(samples) * hemispherePdf)

	diffuse := radiance.MultiplyVec(s.Diffuse)
	return kD.MultiplyVec(diffuse).Multiply(envAmbientFactor)
}

// BSDF evaluates the full direct-lighting and ambient term at a shading
// point and returns it tonemapped and gamma-corrected, per the Shader
// component's output contract. ray is the incoming view ray, normal and
// hit are the shading-point normal and epsilon-offset position, objs and
// lts are the scene's objects and lights.
func (s *Shader) BSDF(rng *rand.Rand, ray transform.Ray, normal, hit core.Vec3, objs []objects.Object, lts []lights.Light) core.Vec3 {
	view := ray.Origin.Subtract(hit).Normalize()
	reflection := transform.Reflect(normal, view)
	nDotV := math.Max(normal.Dot(view), 0)
	f0 := core.Splat3(0.04).Mix(s.Diffuse, s.Metalness)

	ambient := s.ambient(rng, hit, normal, view, reflection, f0, lts)

	hasEnvironment := false
	for _, l := range lts {
		if _, ok := l.(*lights.Environment); ok {
			hasEnvironment = true
			break
		}
	}

	var reflections core.Vec3
	if hasEnvironment {
		reflections = s.SceneReflections(rng, ray.Origin, hit, normal, objs)
	}

	var lo core.Vec3
	for _, light := range lts {
		samples := light.SampleCount()
		if samples <= 0 {
			samples = 1
		}

		var accum core.Vec3
		for i := 0; i < samples; i++ {
			spec := light.Sample(rng, hit, reflection, normal, lights.SamplerSettings{Type: lights.SamplerGGX, Roughness: s.Roughness})
			lDir := spec.Ray.Direction
			h := view.Add(lDir).Normalize()
			hDotV := math.Max(h.Dot(view), 0)
			nDotL := math.Max(normal.Dot(lDir), 0)

			color := spec.Color
			if hasEnvironment {
				color = color.Add(reflections.Multiply(reflectionEnvBoost))
			}
			radiance := light.Attenuate(color, light.LightIntensity(), spec.Distance)

			d := distributionGGX(normal, h, s.Roughness)
			g := geometrySmith(normal, view, lDir, s.Roughness)
			f := fresnelSchlick(hDotV, f0)

			specular := f.Multiply(d * g).Multiply(1.0 / math.Max(4*nDotV*nDotL, specularDenomMin))

			kD := core.Splat3(1).Subtract(f).Multiply(1 - s.Metalness)
			diffuse := kD.MultiplyVec(s.Diffuse).Multiply(1.0 / math.Pi)

			accum = accum.Add(diffuse.Add(specular).MultiplyVec(radiance).Multiply(nDotL))
		}
		accum = accum.Multiply(1.0 / float64(samples))
		lo = lo.Add(accum)
	}

	color := ambient.Add(lo)
	color = color.Reinhard()
	color = color.GammaCorrect(gammaExponent)
	return color.SetNansOrInfs()
}
