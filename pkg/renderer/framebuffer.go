package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Framebuffer holds the averaged linear colors of a rendered image in
// scanline order, top row first
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, color core.Vec3) {
	fb.Pixels[y*fb.Width+x] = color
}
