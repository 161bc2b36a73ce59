package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// jitterScale scales CreateRay's stochastic antialiasing jitter: each
// component of the unnormalized ray direction is offset by up to
// ±jitterScale/2 in world units, independent of the viewport's
// PixelSpacing.
const jitterScale = 0.01

// Camera owns a Viewport and projects its pixels into world-space rays
// from the camera's Transform.
type Camera struct {
	FocalLength float64
	Transform   *transform.Transform
	Viewport    *Viewport
}

// NewCamera creates a camera at the given transform with a freshly
// allocated viewport of the given pixel dimensions.
func NewCamera(focalLength float64, t *transform.Transform, pixelsX, pixelsY int, pixelSpacing float64) *Camera {
	return &Camera{
		FocalLength: focalLength,
		Transform:   t,
		Viewport:    NewViewport(pixelsX, pixelsY, pixelSpacing),
	}
}

// SetAspectRatio forwards to the owned viewport.
func (c *Camera) SetAspectRatio(a, b float64) {
	c.Viewport.SetAspectRatio(a, b)
}

// CreateRay builds a world-space ray from the camera's position through
// the index'th pixel, jittered by a small random offset for antialiasing.
func (c *Camera) CreateRay(rng *rand.Rand, index int) transform.Ray {
	uv := c.Viewport.PixelUV(index)
	local := c.Viewport.PixelPosition(uv.X, uv.Y)
	// The viewport's (x, y) pixel-plane offset becomes the local X and Z
	// components; local Y carries FocalLength, the camera's forward
	// depth, per the transform basis convention where local Y maps to
	// the forward basis column.
	localWithDepth := core.NewVec3(local.X, c.FocalLength, local.Y)

	direction := c.Transform.LocalToWorldDirection(localWithDepth)

	r1 := rng.Float64() - 0.5
	r2 := rng.Float64() - 0.5
	r3 := rng.Float64() - 0.5
	jitter := core.NewVec3(r1, r2, r3).Multiply(jitterScale)

	return transform.NewRay(c.Transform.Position(), direction.Add(jitter))
}
