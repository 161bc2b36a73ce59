package scene

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/transform"
	"github.com/stretchr/testify/assert"
)

type stubMaterial struct{}

func (stubMaterial) Albedo() core.Vec3 { return core.Vec3{} }

func TestScene_InitializeInjectsVisibleAreaGrid(t *testing.T) {
	grid := objects.NewPlane(transform.NewTransform(core.Identity(3), core.NewVec3(0, 5, 0)), 2, 2, stubMaterial{})
	area := lights.NewArea(grid, core.NewVec3(1, 1, 1), 1, 0, 4, true)
	hiddenGrid := objects.NewPlane(transform.NewTransform(core.Identity(3), core.NewVec3(0, 3, 0)), 2, 2, stubMaterial{})
	hiddenArea := lights.NewArea(hiddenGrid, core.NewVec3(1, 1, 1), 1, 0, 4, false)

	sphere := objects.NewSphere(transform.NewTransform(core.Identity(3), core.Vec3{}), 1, stubMaterial{})

	s := NewScene([]objects.Object{sphere}, []lights.Light{area, hiddenArea}, nil)
	s.Initialize()

	assert.Len(t, s.RenderObjects, 2)
	assert.Contains(t, s.RenderObjects, objects.Object(grid))
	assert.NotContains(t, s.RenderObjects, objects.Object(hiddenGrid))
}
