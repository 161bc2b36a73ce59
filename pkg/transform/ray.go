// Package transform holds the oriented-frame and ray primitives shared by
// every renderer component that needs to reason about position and
// direction in world space.
package transform

import "github.com/df07/go-pathtracer/pkg/core"

// Ray is an origin point and a unit direction. Direction is normalized at
// construction so downstream code can assume |Direction| == 1.
type Ray struct {
	Origin    core.Vec3
	Direction core.Vec3
}

// NewRay builds a ray from an origin and an (unnormalized) direction.
func NewRay(origin, direction core.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) core.Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Project returns the orthogonal projection of p onto the ray's line.
func (r Ray) Project(p core.Vec3) core.Vec3 {
	t := p.Subtract(r.Origin).Dot(r.Direction)
	return r.At(t)
}

// Reflect mirrors direction d about normal n: 2*(n.d)*n - d.
func Reflect(n, d core.Vec3) core.Vec3 {
	return n.Multiply(2 * n.Dot(d)).Subtract(d)
}
