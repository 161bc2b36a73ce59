package objects

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// Sphere is a sphere of the given radius centered at its transform's position.
type Sphere struct {
	Transform *transform.Transform
	Radius    float64
	Mat       Material
}

// NewSphere creates a sphere centered at t's position.
func NewSphere(t *transform.Transform, radius float64, mat Material) *Sphere {
	return &Sphere{Transform: t, Radius: radius, Mat: mat}
}

// Material returns the sphere's material.
func (s *Sphere) Material() Material { return s.Mat }

// Intersect tests a ray against the sphere.
func (s *Sphere) Intersect(ray transform.Ray) Intersection {
	center := s.Transform.Position()
	toCenter := center.Subtract(ray.Origin)
	k := toCenter.Dot(ray.Direction)

	if k < 0 {
		if toCenter.Length() > s.Radius {
			return Intersection{}
		}
		if toCenter.Length() == s.Radius {
			return Intersection{Hit: true, Position: ray.Origin, SurfaceColor: s.Mat.Albedo(), Object: s}
		}
	}

	q := ray.Project(center)
	centerToQ := center.Subtract(q).Length()
	if centerToQ > s.Radius {
		return Intersection{}
	}

	h := math.Sqrt(s.Radius*s.Radius - centerToQ*centerToQ)
	qDist := q.Subtract(ray.Origin).Length()

	var t float64
	if toCenter.Length() > s.Radius {
		t = qDist - h
	} else {
		t = qDist + h
	}
	if t < 0 {
		return Intersection{}
	}

	point := ray.At(t)
	return Intersection{Hit: true, Position: point, SurfaceColor: s.Mat.Albedo(), Object: s}
}

// NormalAt returns the outward unit normal at a point on the sphere's surface.
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Transform.Position()).Normalize()
}
