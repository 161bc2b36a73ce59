package texture

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/transform"
)

// cubeSide is the side length of the environment cube. The cube is built
// larger than a unit cube so that any ray originating near the scene
// origin reliably reaches a face before it would graze a corner.
const cubeSide = 1.1

// faceMaterial satisfies objects.Material so the environment's planes can
// be built with objects.NewPlane; the environment cube never asks a face
// for its flat Albedo(), it samples the face's Texture by UV instead.
type faceMaterial struct{}

func (faceMaterial) Albedo() core.Vec3 { return core.Vec3{} }

// CubeMap is a six-plane environment map: six unit-ish planes forming a
// box centered at the origin, each facing inward and carrying one face
// texture. Order is (top, bottom, left, right, back, front).
type CubeMap struct {
	faces    [6]*objects.Plane
	textures [6]*Texture
}

// NewCubeMap builds a cube map from six equal-size face textures in the
// order (top, bottom, left, right, back, front).
func NewCubeMap(top, bottom, left, right, back, front *Texture) *CubeMap {
	textures := [6]*Texture{top, bottom, left, right, back, front}
	normals := [6]core.Vec3{
		core.NewVec3(0, -1, 0), // top face, inward normal points down
		core.NewVec3(0, 1, 0),  // bottom face, inward normal points up
		core.NewVec3(-1, 0, 0), // left face, inward normal points left
		core.NewVec3(1, 0, 0),  // right face, inward normal points right
		core.NewVec3(0, 0, 1),  // back face, inward normal points forward
		core.NewVec3(0, 0, -1), // front face, inward normal points backward
	}

	cm := &CubeMap{textures: textures}
	half := cubeSide / 2
	for i, inward := range normals {
		up := core.NewVec3(0, 0, 1)
		if inward.Y != 0 {
			up = core.NewVec3(0, 0, 1)
		} else {
			up = core.NewVec3(0, 1, 0)
		}
		position := inward.Multiply(-half)
		t := transform.NewTransformFromVectors(inward, up, position)
		cm.faces[i] = objects.NewPlane(t, cubeSide, cubeSide, faceMaterial{})
	}
	return cm
}

// Sample intersects ray (assumed to originate inside the cube) against the
// six faces and returns the radiance at the hit UV of whichever face it
// exits through.
func (cm *CubeMap) Sample(ray transform.Ray) core.Vec3 {
	faceObjs := make([]objects.Object, len(cm.faces))
	for i, f := range cm.faces {
		faceObjs[i] = f
	}

	hits := objects.IntersectScene(faceObjs, ray, true)
	if len(hits) == 0 {
		return core.Vec3{}
	}

	hit := hits[0]
	for i, f := range cm.faces {
		if hit.Object == objects.Object(f) {
			uv := f.WorldToUV(hit.Position)
			return cm.textures[i].Sample(uv.X, uv.Y)
		}
	}
	return core.Vec3{}
}
