package texture

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/transform"
	"github.com/stretchr/testify/assert"
)

func solidTexture(w, h int, c core.Vec3) *Texture {
	tex := NewTexture(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tex.SetPixel(float64(x)/float64(w), float64(y)/float64(h), c)
		}
	}
	return tex
}

func TestCubeMap_SampleHitsCorrectFace(t *testing.T) {
	cm := NewCubeMap(
		solidTexture(2, 2, core.NewVec3(1, 0, 0)), // top
		solidTexture(2, 2, core.NewVec3(0, 1, 0)), // bottom
		solidTexture(2, 2, core.NewVec3(0, 0, 1)), // left
		solidTexture(2, 2, core.NewVec3(1, 1, 0)), // right
		solidTexture(2, 2, core.NewVec3(1, 0, 1)), // back
		solidTexture(2, 2, core.NewVec3(0, 1, 1)), // front
	)

	up := transform.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	assert.Equal(t, core.NewVec3(1, 0, 0), cm.Sample(up))

	down := transform.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	assert.Equal(t, core.NewVec3(0, 1, 0), cm.Sample(down))
}
