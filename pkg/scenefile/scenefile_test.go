package scenefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalScene = `
camera:
  focalLength: 1.0
  position: [0, 0, 0]
  forward: [0, 0, -1]
  up: [0, 1, 0]
  pixelsX: 4
  pixelsY: 4
  pixelSpacing: 0.1

settings:
  samplesPerPixel: 1
  maxDepth: 2
  maxGIDepth: 1
  secondaryBounces: 0

objects:
  - type: sphere
    position: [0, 0, -5]
    radius: 1.0
    material:
      diffuse: [0.8, 0.2, 0.2]
      roughness: 0.5
      metalness: 0.0
      ior: 1.5

lights:
  - type: point
    position: [2, 2, 0]
    color: [1, 1, 1]
    intensity: 20
    shadowIntensity: 1.0
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ParsesMinimalScene(t *testing.T) {
	path := writeScene(t, minimalScene)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1.0, f.Camera.FocalLength)
	assert.Len(t, f.Objects, 1)
	assert.Equal(t, "sphere", f.Objects[0].Type)
	assert.Len(t, f.Lights, 1)
	assert.Equal(t, "point", f.Lights[0].Type)
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	assert.Error(t, err)
}

func TestBuild_ConstructsSceneAndSettings(t *testing.T) {
	path := writeScene(t, minimalScene)
	f, err := Load(path)
	require.NoError(t, err)

	s, settings, err := f.Build()
	require.NoError(t, err)

	assert.Len(t, s.Objects, 1)
	assert.Len(t, s.Lights, 1)
	assert.Equal(t, 4, s.Camera.Viewport.PixelsX)
	assert.Equal(t, 1, settings.SamplesPerPixel)
	assert.Equal(t, 2, settings.MaxDepth)
}

func TestBuild_UnknownObjectTypeReturnsError(t *testing.T) {
	path := writeScene(t, `
camera: {focalLength: 1.0, pixelsX: 2, pixelsY: 2, pixelSpacing: 0.1}
objects:
  - type: torus
`)
	f, err := Load(path)
	require.NoError(t, err)

	_, _, err = f.Build()
	assert.Error(t, err)
}

func TestBuild_UnknownLightTypeReturnsError(t *testing.T) {
	path := writeScene(t, `
camera: {focalLength: 1.0, pixelsX: 2, pixelsY: 2, pixelSpacing: 0.1}
lights:
  - type: spotlight
`)
	f, err := Load(path)
	require.NoError(t, err)

	_, _, err = f.Build()
	assert.Error(t, err)
}

func TestBuild_EnvironmentLightMissingFaceReturnsError(t *testing.T) {
	path := writeScene(t, `
camera: {focalLength: 1.0, pixelsX: 2, pixelsY: 2, pixelSpacing: 0.1}
lights:
  - type: environment
    intensity: 1.0
    samples: 4
    faces:
      top: missing.png
`)
	f, err := Load(path)
	require.NoError(t, err)

	_, _, err = f.Build()
	assert.Error(t, err)
}
