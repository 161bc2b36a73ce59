package objects

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// cubeNormalEpsilon is the tolerance used to decide which face of the box
// a hit point lies on when computing its normal.
const cubeNormalEpsilon = 1e-6

// Cube is an axis-aligned box of the given world-space extents, centered
// at its transform's position. The rotation component of Transform is
// intentionally ignored: the source renderer's cube intersection routine
// is world-axis-aligned regardless of the object's orientation, and this
// preserves that behavior rather than silently fixing it (see the design
// notes on cube rotation).
type Cube struct {
	Transform            *transform.Transform
	Width, Height, Length float64
	Mat                  Material
}

// NewCube creates an axis-aligned box centered at t's position.
func NewCube(t *transform.Transform, width, height, length float64, mat Material) *Cube {
	return &Cube{Transform: t, Width: width, Height: height, Length: length, Mat: mat}
}

// Material returns the cube's material.
func (c *Cube) Material() Material { return c.Mat }

func (c *Cube) half() core.Vec3 {
	return core.NewVec3(c.Width/2, c.Height/2, c.Length/2)
}

// Intersect tests a ray against the axis-aligned box via the slab method.
func (c *Cube) Intersect(ray transform.Ray) Intersection {
	half := c.half()
	center := c.Transform.Position()
	bmin := center.Subtract(half)
	bmax := center.Add(half)

	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	axes := [3]struct{ origin, dir, lo, hi float64 }{
		{ray.Origin.X, ray.Direction.X, bmin.X, bmax.X},
		{ray.Origin.Y, ray.Direction.Y, bmin.Y, bmax.Y},
		{ray.Origin.Z, ray.Direction.Z, bmin.Z, bmax.Z},
	}

	for _, a := range axes {
		if a.dir == 0 {
			if a.origin < a.lo || a.origin > a.hi {
				return Intersection{}
			}
			continue
		}
		t1 := (a.lo - a.origin) / a.dir
		t2 := (a.hi - a.origin) / a.dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmax < 0 || tmin < 0 {
		return Intersection{}
	}
	if tmin > tmax {
		return Intersection{}
	}

	t := tmin
	point := ray.At(t)
	return Intersection{Hit: true, Position: point, SurfaceColor: c.Mat.Albedo(), Object: c}
}

// NormalAt returns the axis-aligned face normal nearest to point.
func (c *Cube) NormalAt(point core.Vec3) core.Vec3 {
	half := c.half()
	center := c.Transform.Position()
	local := point.Subtract(center)

	if math.Abs(math.Abs(local.X)-half.X) < cubeNormalEpsilon {
		return core.NewVec3(math.Copysign(1, local.X), 0, 0)
	}
	if math.Abs(math.Abs(local.Y)-half.Y) < cubeNormalEpsilon {
		return core.NewVec3(0, math.Copysign(1, local.Y), 0)
	}
	return core.NewVec3(0, 0, math.Copysign(1, local.Z))
}
