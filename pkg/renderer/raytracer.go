package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Raytracer renders a world through a camera with a light transport integrator
type Raytracer struct {
	camera     *Camera
	world      core.Hittable
	lights     core.Hittable
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer using the path tracing integrator with the
// camera's background. lights may be nil.
func NewRaytracer(camera *Camera, world, lights core.Hittable, logger core.Logger) *Raytracer {
	return &Raytracer{
		camera:     camera,
		world:      world,
		lights:     lights,
		integrator: integrator.NewPathTracingIntegrator(camera.Config().Background),
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport integrator
func (rt *Raytracer) SetIntegrator(integrator integrator.Integrator) {
	rt.integrator = integrator
}

// Render renders every column in parallel and returns the averaged image
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()
	config := rt.camera.Config()
	width, height := config.ImageWidth, rt.camera.ImageHeight
	frame := NewFramebuffer(width, height)

	pool := NewWorkerPool(rt, width, config.NumWorkers)
	pool.Start()
	for i := 0; i < width; i++ {
		pool.SubmitTask(ColumnTask{Column: i, Frame: frame})
	}

	totalSamples := 0
	nextReport := 1
	for k := 0; k < width; k++ {
		result, _ := pool.GetResult()
		totalSamples += result.Samples

		// Report in 10% steps off the monotonic counter
		completed := pool.Completed()
		if percent := completed * 100 / width; percent >= nextReport*10 {
			rt.logger.Printf("Rendered %d/%d columns (%d%%)\n", completed, width, percent)
			nextReport = percent/10 + 1
		}
	}
	pool.Stop()

	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: rt.camera.EffectiveSamples(),
		TotalSamples:    totalSamples,
		NumWorkers:      pool.GetNumWorkers(),
		Elapsed:         time.Since(start),
	}
	return frame, stats
}

// RenderColumn renders all pixels of column i into frame and returns the
// number of samples taken
func (rt *Raytracer) RenderColumn(i int, frame *Framebuffer, sampler *core.RandomSampler) int {
	samples := 0
	for j := 0; j < rt.camera.ImageHeight; j++ {
		sampler.Reseed(pixelSeed(rt.camera.Config().Seed, i, j))
		pixel := rt.RenderPixel(i, j, sampler)
		frame.Set(i, j, pixel.GetColor())
		samples += pixel.SampleCount
	}
	return samples
}

// RenderPixel takes one sample in every stratification cell of pixel (i, j)
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) PixelStats {
	var stats PixelStats
	maxDepth := rt.camera.Config().MaxDepth
	for sj := 0; sj < rt.camera.SqrtSpp; sj++ {
		for si := 0; si < rt.camera.SqrtSpp; si++ {
			ray := rt.camera.GetRay(i, j, si, sj, sampler)
			stats.AddSample(rt.integrator.RayColor(ray, maxDepth, rt.world, rt.lights, sampler))
		}
	}
	return stats
}

// pixelSeed mixes the base seed with the pixel position so every pixel draws
// from its own stream regardless of which worker renders it
func pixelSeed(seed int64, i, j int) int64 {
	h := uint64(seed)*0x9E3779B97F4A7C15 ^ uint64(i)<<32 ^ uint64(j)
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return int64(h)
}
