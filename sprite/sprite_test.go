package sprite

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tile "github.com/voidshard/tile2d"
)

type fakeTexture struct {
	w, h int
}

func (f fakeTexture) Size() (int, int) {
	return f.w, f.h
}

type spriteCall struct {
	texture tile.Atlas
	rect    tile.Frame
	model   mgl32.Mat4
	tint    mgl32.Vec4
}

type recorder struct {
	sprites []spriteCall
}

func (r *recorder) DrawLayer(atlas tile.Atlas, batch *tile.GeometryBatch, view mgl32.Mat4) {}

func (r *recorder) DrawSprite(texture tile.Atlas, rect tile.Frame, model mgl32.Mat4, tint mgl32.Vec4) {
	r.sprites = append(r.sprites, spriteCall{texture, rect, model, tint})
}

func TestNewSprite(t *testing.T) {
	s := New(fakeTexture{96, 384})

	assert.Equal(t, tile.NewFrame(0, 0, 96, 384), s.Transform.TextureRect())
	assert.Nil(t, s.Animator)

	s.Update(1) // no animator, nothing to do
}

func TestSpriteAnimate(t *testing.T) {
	s := New(fakeTexture{96, 384})

	a, err := s.Animate(tile.NewFrame(0, 0, 32, 32), 3, 0.5, true)
	require.Nil(t, err)
	assert.Equal(t, Animator(a), s.Animator)

	s.Update(0.5)
	assert.Equal(t, tile.NewFrame(32, 0, 32, 32), s.Transform.TextureRect())
}

func TestSpriteClips(t *testing.T) {
	s := New(fakeTexture{96, 384})
	clips := s.Clips()
	require.Nil(t, clips.Add("walk", tile.NewFrame(0, 192, 32, 48), 3, 0.5))
	clips.Play()

	s.Update(0.5)

	assert.Equal(t, tile.NewFrame(32, 192, 32, 48), s.Transform.TextureRect())
}

func TestSpriteRender(t *testing.T) {
	tex := fakeTexture{32, 32}
	s := New(tex)
	s.Transform.SetPosition(5, 6)
	s.Transform.SetTint(Red)

	r := &recorder{}
	s.Render(r)

	require.Equal(t, 1, len(r.sprites))
	call := r.sprites[0]
	assert.Equal(t, tile.Atlas(tex), call.texture)
	assert.Equal(t, tile.NewFrame(0, 0, 32, 32), call.rect)
	assert.Equal(t, mgl32.Translate3D(5, 6, 0), call.model)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, call.tint)
}
