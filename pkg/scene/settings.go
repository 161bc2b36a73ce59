package scene

import "github.com/df07/go-pathtracer/pkg/core"

// Settings configures a single render pass.
type Settings struct {
	BackgroundColor  core.Vec3
	SamplesPerPixel  int
	MaxDepth         int
	MaxGIDepth       int
	SecondaryBounces int
}

// DefaultSettings returns reasonable defaults for a quick preview render.
func DefaultSettings() Settings {
	return Settings{
		BackgroundColor:  core.Vec3{},
		SamplesPerPixel:  4,
		MaxDepth:         3,
		MaxGIDepth:       1,
		SecondaryBounces: 4,
	}
}
