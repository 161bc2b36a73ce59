// Package scenefile loads a scene and its render settings from a YAML
// description, so a render can be configured without a recompile.
package scenefile

import (
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/objects"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/pkg/shader"
	"github.com/df07/go-pathtracer/pkg/texture"
	"github.com/df07/go-pathtracer/pkg/transform"
	"gopkg.in/yaml.v3"
)

// vec3 is a YAML-friendly [x, y, z] triple that converts to core.Vec3.
type vec3 [3]float64

func (v vec3) toVec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

// CameraConfig describes the scene's single camera.
type CameraConfig struct {
	FocalLength  float64 `yaml:"focalLength"`
	Position     vec3    `yaml:"position"`
	Forward      vec3    `yaml:"forward"`
	Up           vec3    `yaml:"up"`
	PixelsX      int     `yaml:"pixelsX"`
	PixelsY      int     `yaml:"pixelsY"`
	PixelSpacing float64 `yaml:"pixelSpacing"`
}

// SettingsConfig mirrors scene.Settings for YAML decoding.
type SettingsConfig struct {
	BackgroundColor  vec3 `yaml:"backgroundColor"`
	SamplesPerPixel  int  `yaml:"samplesPerPixel"`
	MaxDepth         int  `yaml:"maxDepth"`
	MaxGIDepth       int  `yaml:"maxGIDepth"`
	SecondaryBounces int  `yaml:"secondaryBounces"`
}

// MaterialConfig describes a shader.Shader attached to an object.
type MaterialConfig struct {
	Diffuse           vec3    `yaml:"diffuse"`
	Roughness         float64 `yaml:"roughness"`
	Metalness         float64 `yaml:"metalness"`
	IOR               float64 `yaml:"ior"`
	Emission          vec3    `yaml:"emission"`
	DiffuseTexture    string  `yaml:"diffuseTexture"`
	ReflectionDepth   int     `yaml:"reflectionDepth"`
	ReflectionSamples int     `yaml:"reflectionSamples"`
}

func (m MaterialConfig) build() (*shader.Shader, error) {
	s := shader.NewShader(m.Diffuse.toVec3(), m.Roughness, m.Metalness, m.IOR)
	s.Emission = m.Emission.toVec3()
	s.ReflectionDepth = m.ReflectionDepth
	s.ReflectionSamples = m.ReflectionSamples
	if m.DiffuseTexture != "" {
		tex, err := loaders.LoadTexture(m.DiffuseTexture)
		if err != nil {
			return nil, fmt.Errorf("loading diffuse texture %q: %w", m.DiffuseTexture, err)
		}
		s.DiffuseTexture = tex
	}
	return s, nil
}

// ObjectConfig describes one of the three object kinds by Type: "sphere",
// "plane" or "cube". Fields irrelevant to the chosen kind are ignored.
type ObjectConfig struct {
	Type     string         `yaml:"type"`
	Position vec3           `yaml:"position"`
	Forward  vec3           `yaml:"forward"`
	Up       vec3           `yaml:"up"`
	Radius   float64        `yaml:"radius"`
	Width    float64        `yaml:"width"`
	Height   float64        `yaml:"height"`
	Length   float64        `yaml:"length"`
	Material MaterialConfig `yaml:"material"`
}

func (o ObjectConfig) transform() *transform.Transform {
	if o.Forward == (vec3{}) {
		return transform.NewTransform(core.Identity(3), o.Position.toVec3())
	}
	up := o.Up.toVec3()
	if up.IsZero() {
		up = core.NewVec3(0, 1, 0)
	}
	return transform.NewTransformFromVectors(o.Forward.toVec3(), up, o.Position.toVec3())
}

func (o ObjectConfig) build() (objects.Object, error) {
	mat, err := o.Material.build()
	if err != nil {
		return nil, fmt.Errorf("object %q material: %w", o.Type, err)
	}

	switch o.Type {
	case "sphere":
		return objects.NewSphere(o.transform(), o.Radius, mat), nil
	case "plane":
		return objects.NewPlane(o.transform(), o.Width, o.Height, mat), nil
	case "cube":
		return objects.NewCube(o.transform(), o.Width, o.Height, o.Length, mat), nil
	default:
		return nil, fmt.Errorf("unknown object type %q", o.Type)
	}
}

// EnvironmentFaces names the six image files for an environment cube map,
// in the order texture.CubeMap expects them.
type EnvironmentFaces struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Back   string `yaml:"back"`
	Front  string `yaml:"front"`
}

// LightConfig describes a light by Type: "point", "area" or "environment".
type LightConfig struct {
	Type            string            `yaml:"type"`
	Position        vec3              `yaml:"position"`
	Forward         vec3              `yaml:"forward"`
	Up              vec3              `yaml:"up"`
	Width           float64           `yaml:"width"`
	Height          float64           `yaml:"height"`
	Color           vec3              `yaml:"color"`
	Intensity       float64           `yaml:"intensity"`
	ShadowIntensity float64           `yaml:"shadowIntensity"`
	Samples         int               `yaml:"samples"`
	RenderGeometry  bool              `yaml:"renderGeometry"`
	Faces           EnvironmentFaces  `yaml:"faces"`
}

func (l LightConfig) build() (lights.Light, error) {
	switch l.Type {
	case "point":
		return lights.NewPoint(l.Position.toVec3(), l.Color.toVec3(), l.Intensity, l.ShadowIntensity), nil
	case "area":
		up := l.Up.toVec3()
		if up.IsZero() {
			up = core.NewVec3(0, 1, 0)
		}
		t := transform.NewTransformFromVectors(l.Forward.toVec3(), up, l.Position.toVec3())
		grid := objects.NewPlane(t, l.Width, l.Height, areaGridMaterial{l.Color.toVec3()})
		return lights.NewArea(grid, l.Color.toVec3(), l.Intensity, l.ShadowIntensity, l.Samples, l.RenderGeometry), nil
	case "environment":
		cube, err := l.buildCubeMap()
		if err != nil {
			return nil, err
		}
		return lights.NewEnvironment(cube, l.Intensity, l.Samples), nil
	default:
		return nil, fmt.Errorf("unknown light type %q", l.Type)
	}
}

func (l LightConfig) buildCubeMap() (*texture.CubeMap, error) {
	paths := map[string]string{
		"top": l.Faces.Top, "bottom": l.Faces.Bottom,
		"left": l.Faces.Left, "right": l.Faces.Right,
		"back": l.Faces.Back, "front": l.Faces.Front,
	}
	textures := make(map[string]*texture.Texture, len(paths))
	for name, path := range paths {
		if path == "" {
			return nil, fmt.Errorf("environment light missing %q face", name)
		}
		tex, err := loaders.LoadTexture(path)
		if err != nil {
			return nil, fmt.Errorf("loading %q face %q: %w", name, path, err)
		}
		textures[name] = tex
	}
	return texture.NewCubeMap(textures["top"], textures["bottom"], textures["left"], textures["right"], textures["back"], textures["front"]), nil
}

// areaGridMaterial gives an area light's grid plane a flat color, which
// its intersections report as SurfaceColor. It is not a shader.Shader, so
// when RenderGeometry makes the grid visible RayTracer.Trace computes no
// direct lighting for it and shades it only by global illumination times
// this color.
type areaGridMaterial struct{ color core.Vec3 }

func (m areaGridMaterial) Albedo() core.Vec3 { return m.color }

// File is the top-level decoded scene description.
type File struct {
	Camera   CameraConfig   `yaml:"camera"`
	Settings SettingsConfig `yaml:"settings"`
	Objects  []ObjectConfig `yaml:"objects"`
	Lights   []LightConfig  `yaml:"lights"`
}

// Load reads and decodes a scene file from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}
	return &f, nil
}

// Build constructs a scene.Scene and scene.Settings from the decoded file,
// loading any referenced texture files along the way.
func (f *File) Build() (*scene.Scene, scene.Settings, error) {
	forward := f.Camera.Forward.toVec3()
	if forward.IsZero() {
		forward = core.NewVec3(0, 0, -1)
	}
	up := f.Camera.Up.toVec3()
	if up.IsZero() {
		up = core.NewVec3(0, 1, 0)
	}
	camTransform := transform.NewTransformFromVectors(forward, up, f.Camera.Position.toVec3())
	cam := scene.NewCamera(f.Camera.FocalLength, camTransform, f.Camera.PixelsX, f.Camera.PixelsY, f.Camera.PixelSpacing)

	objs := make([]objects.Object, 0, len(f.Objects))
	for i, oc := range f.Objects {
		obj, err := oc.build()
		if err != nil {
			return nil, scene.Settings{}, fmt.Errorf("object %d: %w", i, err)
		}
		objs = append(objs, obj)
	}

	lts := make([]lights.Light, 0, len(f.Lights))
	for i, lc := range f.Lights {
		l, err := lc.build()
		if err != nil {
			return nil, scene.Settings{}, fmt.Errorf("light %d: %w", i, err)
		}
		lts = append(lts, l)
	}

	s := scene.NewScene(objs, lts, cam)
	settings := scene.Settings{
		BackgroundColor:  f.Settings.BackgroundColor.toVec3(),
		SamplesPerPixel:  f.Settings.SamplesPerPixel,
		MaxDepth:         f.Settings.MaxDepth,
		MaxGIDepth:       f.Settings.MaxGIDepth,
		SecondaryBounces: f.Settings.SecondaryBounces,
	}
	return s, settings, nil
}
