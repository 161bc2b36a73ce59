// Package objects implements the renderer's closed set of scene primitives
// (Plane, Sphere, Cube) as a small tagged-variant-style interface: every
// primitive exposes Intersect and NormalAt, and nothing outside this
// package ever needs to add a new kind.
package objects

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// Material is the minimal surface contract an Object needs from its
// shader in order to report a first-hit color: a base reflectance.
// Full BSDF evaluation lives one layer up, in package shader, which
// depends on Object rather than the reverse.
type Material interface {
	Albedo() core.Vec3
}

// UVMaterial is an optional extension a Material may implement when it
// wants a surface color that varies by texture coordinate instead of the
// flat value Albedo returns. Plane checks for it with a type assertion so
// objects never needs to know about textures or the shader package.
type UVMaterial interface {
	Material
	AlbedoAt(u, v float64) core.Vec3
}

// Object is implemented by Plane, Sphere and Cube.
type Object interface {
	Intersect(ray transform.Ray) Intersection
	NormalAt(point core.Vec3) core.Vec3
	Material() Material
}

// Intersection is the result of testing a ray against the scene. Object is
// a non-owning, shared reference to the hit primitive: it is never the
// sole owner of that primitive's lifetime.
type Intersection struct {
	Hit          bool
	Position     core.Vec3
	SurfaceColor core.Vec3
	Object       Object
}

// IntersectScene tests ray against every object in objs, in insertion
// order. If all is false, it returns as soon as it finds a hit. If all is
// true, it collects every hit but keeps the closest one at the front of
// the returned slice: whenever a new hit is strictly closer than the
// running minimum, it is swapped to the front. Ties keep the
// first-inserted hit in front.
func IntersectScene(objs []Object, ray transform.Ray, all bool) []Intersection {
	var hits []Intersection
	closestDist := 0.0

	for _, obj := range objs {
		isect := obj.Intersect(ray)
		if !isect.Hit {
			continue
		}
		if !all {
			return []Intersection{isect}
		}

		dist := isect.Position.Subtract(ray.Origin).Length()
		if len(hits) == 0 {
			hits = append(hits, isect)
			closestDist = dist
			continue
		}
		if dist < closestDist {
			hits = append(hits, hits[0])
			hits[0] = isect
			closestDist = dist
		} else {
			hits = append(hits, isect)
		}
	}

	return hits
}
