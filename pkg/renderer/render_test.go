package renderer

import (
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/stretchr/testify/assert"
)

func TestRender_ProducesPixelsForEveryIndex(t *testing.T) {
	s := testScene()
	settings := scene.Settings{MaxDepth: 1, MaxGIDepth: 0, SamplesPerPixel: 1}

	saveCalls := 0
	save := func(pixels scene.Pixels, path string) { saveCalls++ }

	pixels := Render(s, settings, 4, 2, save, "out.png", 50*time.Millisecond)

	assert.Equal(t, s.Camera.Viewport.Area(), pixels.R.Area())
	for i := 0; i < pixels.R.Area(); i++ {
		v := pixels.R.AtFlat(i)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, clampMax)
	}
}
