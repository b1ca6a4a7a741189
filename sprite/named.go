package sprite

import (
	tile "github.com/voidshard/tile2d"
)

// NamedClips animates a sprite with any number of named clips, one active at
// a time. Nothing moves until Play is called; clips always loop.
type NamedClips struct {
	target  *Transform
	clips   map[string]*Clip
	active  string
	playing bool
}

// NewNamedClips returns an animator driving `target`'s texture rect
func NewNamedClips(target *Transform) *NamedClips {
	return &NamedClips{
		target: target,
		clips:  map[string]*Clip{},
	}
}

// Add registers a clip of `count` frames, each `origin.Width` further right
// than the last. The first clip added becomes active straight away.
// Adding a name twice replaces the old clip.
func (n *NamedClips) Add(name string, origin tile.Frame, count int, delay float64) error {
	clip, err := NewClip(origin, count, delay, true)
	if err != nil {
		return err
	}
	n.clips[name] = clip

	if n.active == "" || n.active == name {
		n.active = name
		n.target.SetTextureRect(clip.Frames[0])
	}
	return nil
}

// SetActive switches to the named clip & shows it's first frame immediately,
// whether or not we're playing. The clip being left is rewound.
// Switching to the clip that's already active does nothing.
func (n *NamedClips) SetActive(name string) error {
	if name == n.active {
		return nil
	}
	next, ok := n.clips[name]
	if !ok {
		return ErrUnknownClip
	}

	if prev, ok := n.clips[n.active]; ok {
		prev.Reset()
	}
	n.active = name
	n.target.SetTextureRect(next.Frames[0])
	return nil
}

// Active returns the name of the active clip ("" if none were added)
func (n *NamedClips) Active() string {
	return n.active
}

// Clip returns the named clip, or nil
func (n *NamedClips) Clip(name string) *Clip {
	return n.clips[name]
}

// Play resumes animating from wherever the active clip was
func (n *NamedClips) Play() {
	n.playing = true
}

// Pause stops animating without rewinding
func (n *NamedClips) Pause() {
	n.playing = false
}

func (n *NamedClips) IsPlaying() bool {
	return n.playing
}

// Tick advances the active clip by `dt` seconds.
// At most one frame is advanced per call.
func (n *NamedClips) Tick(dt float64) {
	if !n.playing {
		return
	}
	clip, ok := n.clips[n.active]
	if !ok {
		return
	}
	if !clip.advance(dt) {
		return
	}
	if clip.current >= len(clip.Frames) {
		clip.current = 0
	}
	n.target.SetTextureRect(clip.Frames[clip.current])
}
