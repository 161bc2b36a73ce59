// Package scene holds the renderer's scene graph: the pixel grid, the
// camera that projects it into world space, and the insertion-ordered
// collection of objects and lights a frame is traced against.
package scene

import "github.com/df07/go-pathtracer/pkg/core"

// Pixels is a snapshot of a Viewport's three color channels.
type Pixels struct {
	R, G, B *core.Matrix
}

// Viewport is a pixels_x by pixels_y pixel grid backed by three matrices,
// one per color channel. PixelSpacing is the world-space size of one
// pixel on the viewport's pixel plane.
type Viewport struct {
	PixelsX      int
	PixelsY      int
	PixelSpacing float64
	r, g, b      *core.Matrix
}

// NewViewport creates a zeroed viewport of the given pixel dimensions.
func NewViewport(pixelsX, pixelsY int, pixelSpacing float64) *Viewport {
	return &Viewport{
		PixelsX:      pixelsX,
		PixelsY:      pixelsY,
		PixelSpacing: pixelSpacing,
		r:            core.NewMatrix(pixelsY, pixelsX),
		g:            core.NewMatrix(pixelsY, pixelsX),
		b:            core.NewMatrix(pixelsY, pixelsX),
	}
}

// SetAspectRatio divides PixelsX by a/b and reallocates the channel
// matrices, mirroring the source renderer's quirk of adjusting the pixel
// grid's X dimension (not rebuilding the whole viewport from scratch).
func (v *Viewport) SetAspectRatio(a, b float64) {
	ratio := a / b
	v.PixelsX = int(float64(v.PixelsX) / ratio)
	v.r = core.NewMatrix(v.PixelsY, v.PixelsX)
	v.g = core.NewMatrix(v.PixelsY, v.PixelsX)
	v.b = core.NewMatrix(v.PixelsY, v.PixelsX)
}

// SetPixel writes a color into the index'th cell of each channel.
func (v *Viewport) SetPixel(index int, r, g, b float64) {
	v.r.SetFlat(index, r)
	v.g.SetFlat(index, g)
	v.b.SetFlat(index, b)
}

// PixelUV returns the (u, v) in [0,1]x[0,1] of the index'th pixel.
func (v *Viewport) PixelUV(index int) core.Vec2 {
	row := v.r.Row(index)
	col := v.r.Col(index)
	u := float64(col) / float64(v.PixelsX)
	vv := float64(row) / float64(v.PixelsY)
	return core.NewVec2(u, vv)
}

// PixelPosition maps a normalized (u, v) to a point (x, y, 0) on the
// viewport's pixel plane. Camera.CreateRay places x and y on its local X
// and Z axes and adds the focal-length depth along its local Y axis.
func (v *Viewport) PixelPosition(u, vv float64) core.Vec3 {
	halfWidth := float64(v.PixelsX) / 2
	halfHeight := float64(v.PixelsY) / 2

	x := (float64(v.PixelsX)*u - halfWidth) * v.PixelSpacing
	y := (float64(v.PixelsY)*vv - halfHeight) * v.PixelSpacing
	return core.NewVec3(x, y, 0)
}

// Pixels returns a snapshot view of the three channel matrices. Since the
// matrices are written one disjoint cell at a time by render workers, a
// reader is allowed to observe a partially-completed frame.
func (v *Viewport) Pixels() Pixels {
	return Pixels{R: v.r, G: v.g, B: v.b}
}

// Area returns the total pixel count.
func (v *Viewport) Area() int {
	return v.PixelsX * v.PixelsY
}
