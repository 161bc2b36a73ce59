package lights

import "github.com/df07/go-pathtracer/pkg/core"

type stubMaterial struct{ albedo core.Vec3 }

func (m stubMaterial) Albedo() core.Vec3 { return m.albedo }
