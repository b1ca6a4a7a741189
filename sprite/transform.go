package sprite

import (
	"github.com/go-gl/mathgl/mgl32"

	tile "github.com/voidshard/tile2d"
)

// Transform is where & how a sprite is drawn.
// The model matrix is rebuilt lazily on the first Matrix() call after a change.
type Transform struct {
	position mgl32.Vec2
	scale    mgl32.Vec2
	angle    float32 // radians
	tint     Color
	rect     tile.Frame

	matrix     mgl32.Mat4
	dirty      bool
	colorDirty bool
}

// NewTransform returns a transform at (0,0), unscaled, unrotated & untinted.
func NewTransform() *Transform {
	return &Transform{
		scale:      mgl32.Vec2{1, 1},
		tint:       White,
		matrix:     mgl32.Ident4(),
		dirty:      true,
		colorDirty: true,
	}
}

// Move by (dx, dy)
func (t *Transform) Move(dx, dy float32) {
	t.SetPosition(t.position.X()+dx, t.position.Y()+dy)
}

func (t *Transform) SetPosition(x, y float32) {
	t.position = mgl32.Vec2{x, y}
	t.dirty = true
}

func (t *Transform) SetScale(x, y float32) {
	t.scale = mgl32.Vec2{x, y}
	t.dirty = true
}

// SetRotation in degrees
func (t *Transform) SetRotation(degrees float32) {
	t.angle = mgl32.DegToRad(degrees)
	t.dirty = true
}

// SetTextureRect sets the region of the texture that is drawn
func (t *Transform) SetTextureRect(rect tile.Frame) {
	t.rect = rect
	t.dirty = true
}

// SetTint sets the colour the texture is multiplied by
func (t *Transform) SetTint(c Color) {
	t.tint = c
	t.colorDirty = true
}

func (t *Transform) Position() mgl32.Vec2 {
	return t.position
}

func (t *Transform) Scale() mgl32.Vec2 {
	return t.scale
}

// Rotation in degrees
func (t *Transform) Rotation() float32 {
	return mgl32.RadToDeg(t.angle)
}

func (t *Transform) TextureRect() tile.Frame {
	return t.rect
}

func (t *Transform) Tint() Color {
	return t.tint
}

// Dirty returns if the matrix will be rebuilt on the next Matrix() call
func (t *Transform) Dirty() bool {
	return t.dirty
}

// TintChanged returns if the tint changed since the last call, & resets.
func (t *Transform) TintChanged() bool {
	changed := t.colorDirty
	t.colorDirty = false
	return changed
}

// Matrix returns the model matrix
//
//	translate(position) * translate(sx/2, sx/2) * rotate(angle) * translate(-sx/2, -sy/2) * scale(sx, sy)
//
// Note the x scale is used for both axes of the first half offset; sprites
// have always pivoted this way.
func (t *Transform) Matrix() mgl32.Mat4 {
	if !t.dirty {
		return t.matrix
	}

	sx, sy := t.scale.X(), t.scale.Y()

	m := mgl32.Translate3D(t.position.X(), t.position.Y(), 0)
	m = m.Mul4(mgl32.Translate3D(0.5*sx, 0.5*sx, 0))
	m = m.Mul4(mgl32.HomogRotate3DZ(t.angle))
	m = m.Mul4(mgl32.Translate3D(-0.5*sx, -0.5*sy, 0))
	m = m.Mul4(mgl32.Scale3D(sx, sy, 1))

	t.matrix = m
	t.dirty = false
	return m
}
