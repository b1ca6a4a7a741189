package sprite

import (
	tile "github.com/voidshard/tile2d"
)

// Animator changes a sprite's texture rect over time.
// Implemented by *SingleClip & *NamedClips.
type Animator interface {
	Tick(dt float64)
}

// Sprite is a textured transform, optionally animated.
// Drawing only ever looks at the transform.
type Sprite struct {
	Texture   tile.Atlas
	Transform *Transform
	Animator  Animator
}

// New returns an unanimated sprite showing all of `texture`
func New(texture tile.Atlas) *Sprite {
	t := NewTransform()
	if texture != nil {
		w, h := texture.Size()
		t.SetTextureRect(tile.NewFrame(0, 0, float32(w), float32(h)))
	}
	return &Sprite{Texture: texture, Transform: t}
}

// Animate attaches a single clip animator
func (s *Sprite) Animate(origin tile.Frame, count int, delay float64, loop bool) (*SingleClip, error) {
	a, err := NewSingleClip(s.Transform, origin, count, delay, loop)
	if err != nil {
		return nil, err
	}
	s.Animator = a
	return a, nil
}

// Clips attaches (and returns) an empty named clip animator
func (s *Sprite) Clips() *NamedClips {
	n := NewNamedClips(s.Transform)
	s.Animator = n
	return n
}

// Update ticks the animator, if any
func (s *Sprite) Update(dt float64) {
	if s.Animator != nil {
		s.Animator.Tick(dt)
	}
}

// Render hands the sprite to `r`
func (s *Sprite) Render(r tile.Renderer) {
	t := s.Transform
	r.DrawSprite(s.Texture, t.TextureRect(), t.Matrix(), t.Tint().Vec4())
}
