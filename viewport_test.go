package tile

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestViewOffset(t *testing.T) {
	// map twice the size of the screen on both axes
	got := ViewOffset(mgl32.Vec2{100, 50}, mgl32.Vec2{1600, 1200}, mgl32.Vec2{800, 600})

	// -focus * ratio + (screen.x, screen.y / 2)
	assert.Equal(t, mgl32.Vec2{-200 + 800, -100 + 300}, got)
}

func TestViewOffsetZeroScreen(t *testing.T) {
	got := ViewOffset(mgl32.Vec2{100, 50}, mgl32.Vec2{1600, 1200}, mgl32.Vec2{})

	assert.Equal(t, mgl32.Vec2{0, 0}, got)
}

func TestViewportDirty(t *testing.T) {
	v := NewViewport(1600, 1200)
	ctx := Context{ScreenWidth: 800, ScreenHeight: 600}

	assert.True(t, v.Dirty())
	assert.Equal(t, mgl32.Ident4(), v.View())
	assert.False(t, v.Dirty())

	v.SetFocus(mgl32.Vec2{100, 50}, ctx)
	assert.True(t, v.Dirty())
	assert.Equal(t, mgl32.Vec2{600, 200}, v.Offset())

	view := v.View()
	assert.False(t, v.Dirty())
	assert.Equal(t, mgl32.Translate3D(600, 200, 0), view)

	// consuming again without a change keeps the same matrix
	assert.Equal(t, view, v.View())
}
