package tile

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is an axis aligned rectangle in pixel space.
// It's used for atlas frames, animation frames & object bounds alike.
type Frame struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// NewFrame returns a frame with the given top-left corner and size.
func NewFrame(x, y, width, height float32) Frame {
	return Frame{X: x, Y: y, Width: width, Height: height}
}

// Position returns the top-left corner
func (f Frame) Position() mgl32.Vec2 {
	return mgl32.Vec2{f.X, f.Y}
}

// Size returns (width, height)
func (f Frame) Size() mgl32.Vec2 {
	return mgl32.Vec2{f.Width, f.Height}
}

// Origin returns the centre of the frame relative to it's top-left corner.
func (f Frame) Origin() mgl32.Vec2 {
	return mgl32.Vec2{f.Width * 0.5, f.Height * 0.5}
}

// Contains returns if the point lies within the frame (edges included).
func (f Frame) Contains(p mgl32.Vec2) bool {
	if f.X > p.X() || f.Y > p.Y() {
		return false
	}
	if f.X+f.Width < p.X() || f.Y+f.Height < p.Y() {
		return false
	}
	return true
}

// Intersects returns if the two frames overlap or touch.
func (f Frame) Intersects(o Frame) bool {
	if f.X+f.Width < o.X || f.X > o.X+o.Width {
		return false
	}
	if f.Y+f.Height < o.Y || f.Y > o.Y+o.Height {
		return false
	}
	return true
}
