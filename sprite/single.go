package sprite

import (
	tile "github.com/voidshard/tile2d"
)

// SingleClip animates a sprite with exactly one clip that's always playing.
//
// A non looping clip stops on it's last frame: Current() then reads one past
// the last frame & IsEnd() is true until Reset.
type SingleClip struct {
	target *Transform
	clip   *Clip
}

// NewSingleClip returns an animator driving `target`'s texture rect.
// The first frame is shown immediately.
func NewSingleClip(target *Transform, origin tile.Frame, count int, delay float64, loop bool) (*SingleClip, error) {
	clip, err := NewClip(origin, count, delay, loop)
	if err != nil {
		return nil, err
	}
	target.SetTextureRect(clip.Frames[0])
	return &SingleClip{target: target, clip: clip}, nil
}

// Clip returns the animated clip
func (s *SingleClip) Clip() *Clip {
	return s.clip
}

// Tick advances the clip by `dt` seconds.
func (s *SingleClip) Tick(dt float64) {
	if s.IsEnd() && !s.clip.Loop {
		return
	}
	if !s.clip.advance(dt) {
		return
	}
	if s.IsEnd() {
		if !s.clip.Loop {
			return // hold the last frame
		}
		s.clip.current = 0
	}
	s.target.SetTextureRect(s.clip.Frames[s.clip.current])
}

// Reset rewinds to (and shows) the first frame
func (s *SingleClip) Reset() {
	s.clip.Reset()
	s.target.SetTextureRect(s.clip.Frames[0])
}

// IsEnd returns if a non looping clip has played through
func (s *SingleClip) IsEnd() bool {
	return s.clip.current == len(s.clip.Frames)
}
