package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/logging"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// defaultProgressInterval is the sleep between progress snapshots when the
// caller doesn't specify one, matching the source renderer's ~2s cadence.
const defaultProgressInterval = 2 * time.Second

// SavePump periodically writes a snapshot of a viewport through a
// SaveSink while a render is in progress. It reads the viewport's pixel
// matrices without synchronizing with the render workers, which is
// deliberate: the writers only ever touch disjoint cells, and a mid-frame
// read is an acceptable progressive preview.
type SavePump struct {
	viewport *scene.Viewport
	save     SaveSink
	path     string
	interval time.Duration
}

// NewSavePump creates a pump that snapshots viewport through save every
// interval (defaultProgressInterval if interval <= 0).
func NewSavePump(viewport *scene.Viewport, save SaveSink, path string, interval time.Duration) *SavePump {
	if interval <= 0 {
		interval = defaultProgressInterval
	}
	return &SavePump{viewport: viewport, save: save, path: path, interval: interval}
}

// Tick sleeps for the pump's interval, then invokes the save sink with a
// fresh snapshot. It is meant to be called in a loop by Scheduler.Run's
// progress goroutine.
func (p *SavePump) Tick() {
	time.Sleep(p.interval)
	if p.save == nil {
		return
	}
	logging.Info("saving progress snapshot to %s", p.path)
	p.save(p.viewport.Pixels(), p.path)
}
