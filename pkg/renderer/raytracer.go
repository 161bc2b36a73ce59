package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/pkg/shader"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// hitBias offsets a hit point along its surface normal before it is used
// as a new ray origin, so self-intersection doesn't reoccur at t=0.
const hitBias = 0.0001

// globalIlluminationPDF is the constant hemisphere-sampling density used
// by GlobalIllumination's Monte Carlo estimator.
const globalIlluminationPDF = 1.0 / (2 * math.Pi)

// RayTracer evaluates trace(ray, depth) against a fixed scene and
// settings. It is read-only after construction and safe to share across
// worker goroutines, provided each caller supplies its own *rand.Rand.
type RayTracer struct {
	Scene    *scene.Scene
	Settings scene.Settings
}

// NewRayTracer creates a ray tracer bound to s and settings.
func NewRayTracer(s *scene.Scene, settings scene.Settings) *RayTracer {
	return &RayTracer{Scene: s, Settings: settings}
}

// Trace recursively traces ray, returning the closest intersection with
// its SurfaceColor populated by direct lighting, global illumination, and
// the hit object's albedo, or the background color on a miss.
func (rt *RayTracer) Trace(rng *rand.Rand, ray transform.Ray, depth int) objects.Intersection {
	if depth > rt.Settings.MaxDepth {
		return objects.Intersection{}
	}

	hits := objects.IntersectScene(rt.Scene.RenderObjects, ray, true)
	if len(hits) == 0 {
		return objects.Intersection{Hit: false, SurfaceColor: rt.Settings.BackgroundColor}
	}

	isect := hits[0]
	normal := isect.Object.NormalAt(isect.Position)
	hit := isect.Position.Add(normal.Multiply(hitBias))

	var direct core.Vec3
	if sh, ok := isect.Object.Material().(*shader.Shader); ok {
		direct = sh.BSDF(rng, ray, normal, hit, rt.Scene.RenderObjects, rt.Scene.Lights)
	}

	var indirect core.Vec3
	if depth < rt.Settings.MaxGIDepth {
		indirect = rt.GlobalIllumination(rng, ray, normal, hit, depth)
	}

	irradiance := direct.Multiply(1.0 / math.Pi).Add(indirect.Multiply(2)).MultiplyVec(isect.Object.Material().Albedo())
	irradiance = irradiance.Clamp(0, 1)

	isect.SurfaceColor = irradiance
	return isect
}

// GlobalIllumination estimates indirect lighting at hit by tracing
// settings.SecondaryBounces cosine-agnostic hemisphere samples from the
// frame built around normal, averaging the recursive trace results and
// attenuating by the depth denominator carried over from the source
// renderer's recursion policy.
func (rt *RayTracer) GlobalIllumination(rng *rand.Rand, ray transform.Ray, normal, hit core.Vec3, depth int) core.Vec3 {
	view := ray.Origin.Subtract(hit).Normalize()
	frame := transform.NewTransformFromVectors(normal, view, hit)

	var indirect core.Vec3
	bounces := rt.Settings.SecondaryBounces
	for i := 0; i < bounces; i++ {
		r1, r2 := core.Random(rng), core.Random(rng)
		local := core.SampleHemisphere(r1, r2)
		worldDir := frame.LocalToWorldDirection(local)
		giRay := transform.NewRay(hit, worldDir)

		giIsect := rt.Trace(rng, giRay, depth+1)
		contribution := giIsect.SurfaceColor.Multiply(r1 / globalIlluminationPDF)
		indirect = indirect.Add(contribution.SetNansOrInfs())
	}

	if bounces > 0 {
		indirect = indirect.Multiply(1.0 / float64(bounces))
	}
	indirect = indirect.Multiply(1.0 / float64(depth+1))
	return indirect
}
