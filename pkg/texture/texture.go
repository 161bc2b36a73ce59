// Package texture holds 2D image data sampled by materials and by the
// environment cube-map light.
package texture

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture is a four-channel (R, G, B, A) image backed by equal-size
// matrices, with values in [0, 1].
type Texture struct {
	R, G, B, A *core.Matrix
	Width      int
	Height     int
}

// NewTexture allocates a black, fully-opaque texture of the given size.
func NewTexture(width, height int) *Texture {
	a := core.NewMatrix(height, width)
	for i := 0; i < a.Area(); i++ {
		a.SetFlat(i, 1)
	}
	return &Texture{
		R:      core.NewMatrix(height, width),
		G:      core.NewMatrix(height, width),
		B:      core.NewMatrix(height, width),
		A:      a,
		Width:  width,
		Height: height,
	}
}

func (t *Texture) texel(u, v float64) (int, int) {
	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x < 0 {
		x = 0
	}
	if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return x, y
}

// Sample returns the nearest-texel RGB color at normalized (u, v).
func (t *Texture) Sample(u, v float64) core.Vec3 {
	x, y := t.texel(u, v)
	return core.NewVec3(t.R.At(y, x), t.G.At(y, x), t.B.At(y, x))
}

// SetPixel writes an RGB value at normalized (u, v), leaving alpha untouched.
func (t *Texture) SetPixel(u, v float64, rgb core.Vec3) {
	x, y := t.texel(u, v)
	t.R.Set(y, x, rgb.X)
	t.G.Set(y, x, rgb.Y)
	t.B.Set(y, x, rgb.Z)
}
