package scene

import (
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/objects"
)

// Scene is an insertion-ordered sequence of objects and lights plus a
// camera. It is built once by the caller and is read-only for the
// duration of a render.
type Scene struct {
	Objects []objects.Object
	Lights  []lights.Light
	Camera  *Camera

	// RenderObjects is Objects plus, after Initialize, any Area light
	// grid planes that asked to be directly visible.
	RenderObjects []objects.Object
}

// NewScene creates a scene from its objects, lights and camera.
// Initialize must be called once before rendering.
func NewScene(objs []objects.Object, lts []lights.Light, camera *Camera) *Scene {
	return &Scene{Objects: objs, Lights: lts, Camera: camera}
}

// Initialize builds RenderObjects: a copy of Objects with the grid plane
// of every Area light whose RenderGeometry flag is set appended, so that
// geometry is both a light source and directly visible to the camera.
func (s *Scene) Initialize() {
	s.RenderObjects = make([]objects.Object, len(s.Objects))
	copy(s.RenderObjects, s.Objects)

	for _, l := range s.Lights {
		if area, ok := l.(*lights.Area); ok && area.RenderGeometry {
			s.RenderObjects = append(s.RenderObjects, area.Grid)
		}
	}
}
