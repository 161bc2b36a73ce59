package objects

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// planeDenomEpsilon guards the ray/plane denominator against division by
// (near) zero for rays parallel to the plane.
const planeDenomEpsilon = 1e-9

// Plane is a finite, axis-sized rectangle oriented by its transform's
// local +Y axis (Transform.NormalAxis). Width runs along local X, Height
// along local Z.
type Plane struct {
	Transform *transform.Transform
	Width     float64
	Height    float64
	Mat       Material
}

// NewPlane creates a plane oriented and positioned by t, sized width x height.
func NewPlane(t *transform.Transform, width, height float64, mat Material) *Plane {
	return &Plane{Transform: t, Width: width, Height: height, Mat: mat}
}

// Material returns the plane's material.
func (p *Plane) Material() Material { return p.Mat }

// Intersect tests a ray against the finite rectangle.
func (p *Plane) Intersect(ray transform.Ray) Intersection {
	n := p.Transform.NormalAxis()
	denom := ray.Direction.Dot(n)
	if math.Abs(denom) <= planeDenomEpsilon {
		return Intersection{}
	}

	center := p.Transform.Position()
	t := center.Subtract(ray.Origin).Dot(n) / denom
	if t < 0 {
		return Intersection{}
	}

	point := ray.At(t)
	local := p.Transform.WorldToLocalPoint(point)
	if math.Abs(local.X) >= p.Width/2 || math.Abs(local.Z) >= p.Height/2 {
		return Intersection{}
	}

	color := p.Mat.Albedo()
	if uvMat, ok := p.Mat.(UVMaterial); ok {
		uv := p.WorldToUV(point)
		color = uvMat.AlbedoAt(uv.X, uv.Y)
	}

	return Intersection{Hit: true, Position: point, SurfaceColor: color, Object: p}
}

// NormalAt returns the plane's facing normal, constant across its surface.
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Transform.NormalAxis()
}

// UVToWorld maps normalized (u, v) in [0,1]x[0,1] across the rectangle to a
// world-space point, offset along the plane's normal by offset (used to
// bias shadow-ray origins away from the plane's own geometry).
func (p *Plane) UVToWorld(u, v float64, offset ...float64) core.Vec3 {
	off := 0.0
	if len(offset) > 0 {
		off = offset[0]
	}
	local := core.NewVec3((u-0.5)*p.Width, off, (v-0.5)*p.Height)
	return p.Transform.LocalToWorldPoint(local)
}

// WorldToUV maps a world-space point on (or near) the plane back to its
// normalized (u, v) coordinates.
func (p *Plane) WorldToUV(point core.Vec3) core.Vec2 {
	local := p.Transform.WorldToLocalPoint(point)
	return core.NewVec2(local.X/p.Width+0.5, local.Z/p.Height+0.5)
}
