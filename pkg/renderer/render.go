package renderer

import (
	"math/rand"
	"time"

	"github.com/df07/go-pathtracer/pkg/logging"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// SaveSink is invoked periodically during a render with a snapshot of the
// viewport's pixels and the caller-chosen output path. Encoding the
// snapshot to any file format is the caller's concern.
type SaveSink func(pixels scene.Pixels, path string)

// clampMax mirrors the source renderer's habit of clamping averaged pixel
// samples just short of 1.0 rather than to it.
const clampMax = 0.9999

// Render runs a full progressive render of s under settings. Pixel
// indices are shuffled before dispatch for a progressive-preview reveal
// order; each is averaged over settings.SamplesPerPixel independent
// traces through a per-worker RNG. Every progressInterval the save sink is
// invoked with a snapshot of the viewport; the caller is responsible for
// a final save once Render returns.
func Render(s *scene.Scene, settings scene.Settings, chunkSize, workers int, save SaveSink, path string, progressInterval time.Duration) scene.Pixels {
	s.Initialize()
	rt := NewRayTracer(s, settings)

	area := s.Camera.Viewport.Area()
	order := rand.Perm(area)

	scheduler := NewScheduler(chunkSize, workers)
	pump := NewSavePump(s.Camera.Viewport, save, path, progressInterval)

	newWorker := func() func(i int) {
		rng := rand.New(rand.NewSource(rand.Int63()))
		return func(i int) {
			idx := order[i]

			var sum [3]float64
			for sample := 0; sample < settings.SamplesPerPixel; sample++ {
				ray := s.Camera.CreateRay(rng, idx)
				result := rt.Trace(rng, ray, 0)
				sum[0] += result.SurfaceColor.X
				sum[1] += result.SurfaceColor.Y
				sum[2] += result.SurfaceColor.Z
			}

			n := float64(settings.SamplesPerPixel)
			r := clamp01To(sum[0]/n, clampMax)
			g := clamp01To(sum[1]/n, clampMax)
			b := clamp01To(sum[2]/n, clampMax)
			s.Camera.Viewport.SetPixel(idx, r, g, b)
		}
	}

	scheduler.Run(area, newWorker, pump.Tick)

	logging.Info("render complete: %d pixels", area)
	return s.Camera.Viewport.Pixels()
}

func clamp01To(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
