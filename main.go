package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/df07/go-pathtracer/pkg/logging"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/pkg/scenefile"
)

// Config holds all the configuration for the raytracer CLI.
type Config struct {
	ScenePath        string
	Output           string
	Workers          int
	ChunkSize        int
	ProgressInterval time.Duration
	Help             bool
	CPUProfile       string
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			fmt.Printf("Could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("Could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Println("Loading scene...")
	file, err := scenefile.Load(config.ScenePath)
	if err != nil {
		fmt.Printf("Error loading scene file: %v\n", err)
		os.Exit(1)
	}

	s, settings, err := file.Build()
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(config.Output), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting render...")
	startTime := time.Now()

	pixels := renderer.Render(s, settings, config.ChunkSize, config.Workers, savePNG, config.Output, config.ProgressInterval)
	savePNG(pixels, config.Output)

	logging.Default.Close()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Render saved as %s\n", config.Output)
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.ScenePath, "scene", "scenes/default.yaml", "Path to a YAML scene file")
	flag.StringVar(&config.Output, "out", "output/render.png", "Output PNG path")
	flag.IntVar(&config.Workers, "workers", runtime.NumCPU(), "Number of parallel workers")
	flag.IntVar(&config.ChunkSize, "chunk-size", 64, "Pixels claimed per scheduler chunk")
	flag.DurationVar(&config.ProgressInterval, "progress-interval", 2*time.Second, "Interval between progress snapshots")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	flag.Parse()
	return config
}

// showHelp displays help information.
func showHelp() {
	fmt.Println("go-pathtracer")
	fmt.Println("Usage: go-pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  go-pathtracer --scene=scenes/default.yaml --out=output/render.png")
	fmt.Println("  go-pathtracer --scene=scenes/default.yaml --workers=8 --chunk-size=32")
}

// savePNG encodes pixels as a PNG at path, creating parent directories as
// needed. It matches renderer.SaveSink so it can serve as both the
// progressive-preview sink and the final save.
func savePNG(pixels scene.Pixels, path string) {
	width := pixels.R.Cols
	height := pixels.R.Rows

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := toByte(pixels.R.At(y, x))
			g := toByte(pixels.G.At(y, x))
			b := toByte(pixels.B.At(y, x))
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logging.Error("creating output directory: %v", err)
		return
	}
	file, err := os.Create(path)
	if err != nil {
		logging.Error("creating output file %s: %v", path, err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		logging.Error("encoding PNG %s: %v", path, err)
	}
}

func toByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v * 255)
}
