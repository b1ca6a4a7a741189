package sprite

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Color is an rgba colour with channels in [0,1]
type Color mgl32.Vec4

var (
	White   = RGBA(255, 255, 255, 255)
	Red     = RGBA(255, 0, 0, 255)
	Green   = RGBA(0, 255, 0, 255)
	Blue    = RGBA(0, 0, 255, 255)
	Yellow  = RGBA(255, 255, 0, 255)
	Magenta = RGBA(255, 0, 255, 255)
	Cyan    = RGBA(0, 255, 255, 255)
)

// RGBA builds a colour from 0-255 channels. Out of range values are clamped.
func RGBA(r, g, b, a float32) Color {
	return Color{norm(r), norm(g), norm(b), norm(a)}
}

func norm(v float32) float32 {
	return mgl32.Clamp(v, 0, 255) / 255
}

// Vec4 returns the colour as a vector, as shaders want it
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4(c)
}
