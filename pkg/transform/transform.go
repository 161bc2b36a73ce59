package transform

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/logging"
)

// parallelEpsilon is how close |forward . up| must be to 1 to be treated
// as degenerate (forward and up parallel).
const parallelEpsilon = 1e-6

// Transform is an oriented frame: a 3x3 rotation basis plus a position,
// with the basis's inverse cached alongside it. The basis's columns are,
// in order, the local X, Y and Z axes expressed in world space; Column(1)
// (local +Y) is what Plane and the environment cube-map treat as the
// surface's facing direction.
type Transform struct {
	basis    *core.Matrix
	position core.Vec3
	inverse  *core.Matrix
}

// NewTransform builds a transform from an explicit basis and position.
func NewTransform(basis *core.Matrix, position core.Vec3) *Transform {
	t := &Transform{position: position}
	t.SetBasis(basis, false)
	return t
}

// NewTransformFromVectors builds a transform's basis from a forward
// direction, an up hint, and a position. When forward and up are (nearly)
// parallel the basis cannot be derived and falls back to identity; this is
// a degenerate-but-recoverable condition, logged as a warning rather than
// failing the render.
func NewTransformFromVectors(forward, up, position core.Vec3) *Transform {
	z := forward.Normalize()
	upN := up.Normalize()

	var basis *core.Matrix
	if math.Abs(z.Dot(upN)) >= 1-parallelEpsilon {
		logging.Warn("transform: forward and up are parallel (%v, %v), falling back to identity basis", forward, up)
		basis = core.Identity(3)
	} else {
		y := z.Cross(upN).Normalize()
		x := z.Cross(y).Normalize()
		basis = core.NewMatrix(3, 3)
		setColumn(basis, 0, y)
		setColumn(basis, 1, z)
		setColumn(basis, 2, x)
	}

	return NewTransform(basis, position)
}

func setColumn(m *core.Matrix, col int, v core.Vec3) {
	m.Set(0, col, v.X)
	m.Set(1, col, v.Y)
	m.Set(2, col, v.Z)
}

func getColumn(m *core.Matrix, col int) core.Vec3 {
	return core.NewVec3(m.At(0, col), m.At(1, col), m.At(2, col))
}

// SetBasis replaces the rotation basis. When skipInverseRecompute is true
// the cached inverse is left untouched, for callers that know they will
// overwrite the basis again before the inverse is next needed.
func (t *Transform) SetBasis(basis *core.Matrix, skipInverseRecompute bool) {
	t.basis = basis
	if !skipInverseRecompute {
		t.inverse = basis.Inverse()
	}
}

// Basis returns the 3x3 rotation basis.
func (t *Transform) Basis() *core.Matrix { return t.basis }

// Inverse returns the cached inverse basis.
func (t *Transform) Inverse() *core.Matrix { return t.inverse }

// Position returns the transform's world-space position.
func (t *Transform) Position() core.Vec3 { return t.position }

// SetPosition updates the transform's world-space position.
func (t *Transform) SetPosition(p core.Vec3) { t.position = p }

// Column returns the i'th basis column (0 = local X, 1 = local Y, 2 = local Z).
func (t *Transform) Column(i int) core.Vec3 { return getColumn(t.basis, i) }

// NormalAxis returns the local +Y axis in world space, used by Plane as
// its facing normal and by the environment cube-map faces.
func (t *Transform) NormalAxis() core.Vec3 { return t.Column(1) }

// LocalToWorldDirection rotates a local-space direction into world space.
func (t *Transform) LocalToWorldDirection(v core.Vec3) core.Vec3 {
	return t.basis.MultiplyVec3(v)
}

// WorldToLocalDirection rotates a world-space direction into local space.
func (t *Transform) WorldToLocalDirection(v core.Vec3) core.Vec3 {
	return t.inverse.MultiplyVec3(v)
}

// WorldToLocalPoint converts a world-space point into the transform's
// local coordinate frame.
func (t *Transform) WorldToLocalPoint(p core.Vec3) core.Vec3 {
	return t.inverse.MultiplyVec3(p.Subtract(t.position))
}

// LocalToWorldPoint converts a local-space point into world space.
func (t *Transform) LocalToWorldPoint(p core.Vec3) core.Vec3 {
	return t.basis.MultiplyVec3(p).Add(t.position)
}
