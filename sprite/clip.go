package sprite

import (
	"errors"

	tile "github.com/voidshard/tile2d"
)

var (
	// ErrUnknownClip is returned when asking for a clip that was never added
	ErrUnknownClip = errors.New("unknown clip")

	// ErrEmptyClip is returned when adding a clip with no frames
	ErrEmptyClip = errors.New("clip has no frames")
)

// Clip is one animation: a sequence of frames each shown for `Delay` seconds.
type Clip struct {
	Frames []tile.Frame
	Delay  float64
	Loop   bool

	current int
	elapsed float64
}

// Strip returns `count` frames of size (width, height) laid out left to right
// from (x, y).
func Strip(x, y, width, height float32, count int) []tile.Frame {
	frames := make([]tile.Frame, 0, count)
	for i := 0; i < count; i++ {
		frames = append(frames, tile.NewFrame(x+float32(i)*width, y, width, height))
	}
	return frames
}

// NewClip builds a clip from a horizontal strip of frames
func NewClip(origin tile.Frame, count int, delay float64, loop bool) (*Clip, error) {
	if count <= 0 {
		return nil, ErrEmptyClip
	}
	return &Clip{
		Frames: Strip(origin.X, origin.Y, origin.Width, origin.Height, count),
		Delay:  delay,
		Loop:   loop,
	}, nil
}

// Current returns the index of the current frame
func (c *Clip) Current() int {
	return c.current
}

// Elapsed returns seconds spent on the current frame so far
func (c *Clip) Elapsed() float64 {
	return c.elapsed
}

// Len returns the number of frames
func (c *Clip) Len() int {
	return len(c.Frames)
}

// Frame returns the current frame.
// Past the end (a finished non looping clip) it's the last frame.
func (c *Clip) Frame() tile.Frame {
	if c.current >= len(c.Frames) {
		return c.Frames[len(c.Frames)-1]
	}
	return c.Frames[c.current]
}

// Reset to the first frame
func (c *Clip) Reset() {
	c.current = 0
	c.elapsed = 0
}

// advance adds `dt` seconds & reports if the delay was reached, in which case
// the clip moves on exactly one frame (however large dt was) & the elapsed
// time restarts from zero.
func (c *Clip) advance(dt float64) bool {
	c.elapsed += dt
	if c.elapsed < c.Delay {
		return false
	}
	c.elapsed = 0
	c.current++
	return true
}
