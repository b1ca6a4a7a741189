package tile

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Context is what render-ish calls need to know about the outside world.
// It's passed in per call rather than kept by long lived objects.
type Context struct {
	ScreenWidth  float32
	ScreenHeight float32
	Atlas        Atlas
}

// ScreenSize returns (width, height) as a vector
func (c Context) ScreenSize() mgl32.Vec2 {
	return mgl32.Vec2{c.ScreenWidth, c.ScreenHeight}
}

// ViewOffset returns the translation that frames `focus` on a screen.
//
//	offset = -focus * (mapSize / screenSize) + (screen.x, screen.y / 2)
//
// Note the full screen width but half screen height: this is how maps have
// always been framed, don't "fix" it.
func ViewOffset(focus, mapSize, screenSize mgl32.Vec2) mgl32.Vec2 {
	var ratio mgl32.Vec2
	if screenSize.X() != 0 {
		ratio[0] = mapSize.X() / screenSize.X()
	}
	if screenSize.Y() != 0 {
		ratio[1] = mapSize.Y() / screenSize.Y()
	}
	return mgl32.Vec2{
		-focus.X()*ratio.X() + screenSize.X(),
		-focus.Y()*ratio.Y() + screenSize.Y()*0.5,
	}
}

// Viewport holds the current map translation. Changing the focus marks it
// dirty, consuming the view matrix for rendering clears it.
type Viewport struct {
	mapSize mgl32.Vec2
	offset  mgl32.Vec2
	view    mgl32.Mat4
	dirty   bool
}

// NewViewport for a map of the given size in pixels
func NewViewport(mapWidth, mapHeight float32) *Viewport {
	return &Viewport{
		mapSize: mgl32.Vec2{mapWidth, mapHeight},
		view:    mgl32.Ident4(),
		dirty:   true,
	}
}

// SetFocus centres the map on the given point (in map pixels)
func (v *Viewport) SetFocus(focus mgl32.Vec2, ctx Context) {
	v.offset = ViewOffset(focus, v.mapSize, ctx.ScreenSize())
	v.dirty = true
}

// Offset returns the current translation
func (v *Viewport) Offset() mgl32.Vec2 {
	return v.offset
}

// Dirty returns if the view matrix needs recomputing
func (v *Viewport) Dirty() bool {
	return v.dirty
}

// View returns the view matrix, rebuilding it only if the focus changed.
func (v *Viewport) View() mgl32.Mat4 {
	if v.dirty {
		v.view = mgl32.Translate3D(v.offset.X(), v.offset.Y(), 0)
		v.dirty = false
	}
	return v.view
}
