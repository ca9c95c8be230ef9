package output

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// intensity is the range channel values are clamped to before scaling by 256
var intensity = core.NewInterval(0.000, 0.999)

// linearToGamma applies the gamma 2 transform; non-positive values map to 0
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// channel converts one linear color component to an integer in [0, 255]
func channel(linear float64) int {
	if math.IsNaN(linear) {
		linear = 0
	}
	return int(256 * intensity.Clamp(linearToGamma(linear)))
}

// ToRGB converts a linear color to gamma-corrected 8-bit channels
func ToRGB(c core.Vec3) (r, g, b int) {
	return channel(c.X), channel(c.Y), channel(c.Z)
}

// ToRGBA converts a linear color to an opaque color.RGBA
func ToRGBA(c core.Vec3) color.RGBA {
	r, g, b := ToRGB(c)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// ToImage converts a framebuffer into an RGBA image
func ToImage(frame *renderer.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			img.SetRGBA(x, y, ToRGBA(frame.At(x, y)))
		}
	}
	return img
}
