package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, renders the selected scene and writes the image.
// Progress goes to stderr when the image itself is streamed to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(stderr)

	sceneName := flags.String("scene", "cornell", "Scene to render")
	outputPath := flags.String("output", "", "Output file (.ppm, .png, .bmp, .tiff); '-' streams PPM to stdout. Default: output/<scene>/render_<timestamp>.ppm")
	configPath := flags.String("config", "", "JSON file overriding the scene's camera configuration")
	width := flags.Int("width", 0, "Image width in pixels (default: scene width)")
	spp := flags.Int("spp", 0, "Samples per pixel (default: scene setting)")
	depth := flags.Int("depth", 0, "Maximum ray depth (default: scene setting)")
	workers := flags.Int("workers", 0, "Number of parallel workers (0 = number of CPUs)")
	seed := flags.Int64("seed", 0, "Base random seed (default: scene or config seed)")
	list := flags.Bool("list", false, "List available scenes and exit")

	flags.Usage = func() {
		fmt.Fprintln(stderr, "Monte Carlo path tracer")
		fmt.Fprintln(stderr, "Usage: pathtracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		flags.PrintDefaults()
		fmt.Fprintln(stderr)
		printScenes(stderr)
	}

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *list {
		printScenes(stdout)
		return nil
	}

	s, err := scene.Load(*sceneName)
	if err != nil {
		return err
	}

	config := s.Camera
	if *configPath != "" {
		if config, err = loadConfig(*configPath, config); err != nil {
			return err
		}
	}

	// Only flags given on the command line override the scene and config file,
	// so an explicit zero still applies
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["width"] {
		if *width <= 0 {
			return fmt.Errorf("invalid -width %d: must be positive", *width)
		}
		config.ImageWidth = *width
	}
	if set["spp"] {
		config.SamplesPerPixel = *spp
	}
	if set["depth"] {
		config.MaxDepth = *depth
	}
	if set["workers"] {
		config.NumWorkers = *workers
	}
	if set["seed"] {
		config.Seed = *seed
	}

	logWriter := stdout
	if *outputPath == "-" {
		logWriter = stderr
	}
	logger := renderer.NewWriterLogger(logWriter)

	camera := renderer.NewCamera(config)
	logger.Printf("Rendering %s: %dx%d, %d samples per pixel, depth %d, %d primitives\n",
		s.Name, config.ImageWidth, camera.ImageHeight, camera.EffectiveSamples(), config.MaxDepth, s.GetPrimitiveCount())

	frame, stats := renderer.NewRaytracer(camera, s.World, s.Lights, logger).Render()
	logger.Printf("Render completed in %v with %d workers (%.0f samples/s)\n",
		stats.Elapsed, stats.NumWorkers, stats.SamplesPerSecond())

	if *outputPath == "-" {
		return output.WritePPM(stdout, frame)
	}

	path := *outputPath
	if path == "" {
		timestamp := time.Now().Format("20060102_150405")
		path = filepath.Join("output", s.Name, fmt.Sprintf("render_%s.ppm", timestamp))
	}
	if err := output.SaveImage(path, frame); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	logger.Printf("Render saved as %s\n", path)
	return nil
}

// loadConfig overlays the fields present in the JSON file at path onto base
func loadConfig(path string, base renderer.CameraConfig) (renderer.CameraConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config: %w", err)
	}

	config := base
	if err := json.Unmarshal(data, &config); err != nil {
		return base, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-12s %s\n", info.ID, info.Description)
	}
}
