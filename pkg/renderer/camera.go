package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains the render parameters consumed by the camera.
// No cross-validation is performed; a zero aspect ratio or a look-at equal
// to look-from produce meaningless rays.
type CameraConfig struct {
	AspectRatio     float64   `json:"aspect_ratio"`      // Image width over height
	VFov            float64   `json:"vfov"`              // Vertical field of view in degrees
	ImageWidth      int       `json:"image_width"`       // Rendered image width in pixels
	SamplesPerPixel int       `json:"samples_per_pixel"` // Rounded down to a perfect square
	MaxDepth        int       `json:"max_depth"`         // Maximum number of ray bounces
	Background      core.Vec3 `json:"background"`       // Scene background color
	LookFrom        core.Vec3 `json:"look_from"`         // Point camera is looking from
	LookAt          core.Vec3 `json:"look_at"`           // Point camera is looking at
	VUp             core.Vec3 `json:"vup"`               // Camera-relative "up" direction
	DefocusAngle    float64   `json:"defocus_angle"`     // Variation angle of rays through each pixel
	FocusDist       float64   `json:"focus_dist"`        // Distance from look-from to the plane of perfect focus
	Seed            int64     `json:"seed"`              // Base seed for the per-pixel random sources
	NumWorkers      int       `json:"num_workers"`       // Number of parallel workers (0 = use CPU count)
}

// DefaultCameraConfig returns the default camera parameters
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		VFov:            90,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// Camera generates stratified primary rays for each pixel
type Camera struct {
	config CameraConfig

	ImageHeight      int     // Rendered image height, at least 1
	SqrtSpp          int     // Side of the stratification grid
	recipSqrtSpp     float64 // 1 / SqrtSpp
	pixelSampleScale float64 // Color scale factor for a sum of pixel samples

	center      core.Vec3 // Camera center
	pixel00Loc  core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU core.Vec3 // Offset to pixel to the right
	pixelDeltaV core.Vec3 // Offset to pixel below
	u, v, w     core.Vec3 // Camera frame basis vectors

	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera derives the camera state from config
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}

	c.ImageHeight = int(float64(config.ImageWidth) / config.AspectRatio)
	if c.ImageHeight < 1 {
		c.ImageHeight = 1
	}

	c.SqrtSpp = int(math.Sqrt(float64(config.SamplesPerPixel)))
	if c.SqrtSpp < 1 {
		c.SqrtSpp = 1
	}
	c.recipSqrtSpp = 1.0 / float64(c.SqrtSpp)
	c.pixelSampleScale = 1.0 / float64(c.SqrtSpp*c.SqrtSpp)

	c.center = config.LookFrom

	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDist
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(c.ImageHeight))

	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.VUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Viewport edges run right along u and down along -v
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(config.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.ImageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDist * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// EffectiveSamples is the number of samples actually taken per pixel
func (c *Camera) EffectiveSamples() int {
	return c.SqrtSpp * c.SqrtSpp
}

// GetRay returns a ray through pixel (i, j), jittered inside stratification
// cell (si, sj), starting at the camera center or on the defocus disk
func (c *Camera) GetRay(i, j, si, sj int, sampler core.Sampler) core.Ray {
	offset := c.sampleSquareStratified(si, sj, sampler)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// sampleSquareStratified returns an offset in [-0.5, 0.5)² inside cell (si, sj)
func (c *Camera) sampleSquareStratified(si, sj int, sampler core.Sampler) core.Vec2 {
	s := sampler.Get2D()
	px := (float64(si)+s.X)*c.recipSqrtSpp - 0.5
	py := (float64(sj)+s.Y)*c.recipSqrtSpp - 0.5
	return core.NewVec2(px, py)
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
