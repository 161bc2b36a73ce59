package lights

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
	"github.com/stretchr/testify/assert"
)

func solidCube(c core.Vec3) *texture.CubeMap {
	tex := texture.NewTexture(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			tex.SetPixel(float64(x)/2, float64(y)/2, c)
		}
	}
	return texture.NewCubeMap(tex, tex, tex, tex, tex, tex)
}

func TestEnvironment_SampleReturnsScaledCubeColor(t *testing.T) {
	cube := solidCube(core.NewVec3(0.5, 0.5, 0.5))
	e := NewEnvironment(cube, 2.0, 8)
	rng := rand.New(rand.NewSource(7))

	s := e.Sample(rng, core.Vec3{}, core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1), SamplerSettings{Type: SamplerUniform})

	assert.Equal(t, core.NewVec3(1, 1, 1), s.Color)
	assert.Equal(t, 1.0, s.Distance)
}

func TestEnvironment_ShadowAlwaysVisible(t *testing.T) {
	e := NewEnvironment(solidCube(core.Vec3{}), 1.0, 4)
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, 1.0, e.Shadow(rng, nil, core.Vec3{}))
}
