package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAtlas struct {
	w, h int
}

func (f fakeAtlas) Size() (int, int) {
	return f.w, f.h
}

func TestSlice(t *testing.T) {
	frames := Slice(32, 16, 16, 16)

	assert.Equal(t, []Frame{
		{X: 0, Y: 0, Width: 16, Height: 16},
		{X: 16, Y: 0, Width: 16, Height: 16},
	}, frames)
}

func TestSliceRowMajor(t *testing.T) {
	frames := Slice(48, 64, 16, 32)

	assert.Equal(t, 6, len(frames))
	// tile id t lives at index t-1: id 5 is row 1, col 1
	assert.Equal(t, NewFrame(16, 32, 16, 32), frames[4])
	assert.Equal(t, NewFrame(32, 0, 16, 32), frames[2])
}

func TestSliceDropsRemainder(t *testing.T) {
	frames := Slice(50, 37, 16, 16)

	// floor(37/16) rows x floor(50/16) cols
	assert.Equal(t, 2*3, len(frames))
	for _, f := range frames {
		assert.True(t, f.X+f.Width <= 48)
		assert.True(t, f.Y+f.Height <= 32)
	}
}

func TestSliceDegenerate(t *testing.T) {
	assert.Equal(t, 0, len(Slice(10, 10, 0, 16)))
	assert.Equal(t, 0, len(Slice(10, 10, 16, 16)))
	assert.Equal(t, 0, len(Slice(0, 0, 16, 16)))
}

func TestSliceAtlas(t *testing.T) {
	assert.Equal(t, Slice(64, 32, 16, 16), SliceAtlas(fakeAtlas{64, 32}, 16, 16))
}
