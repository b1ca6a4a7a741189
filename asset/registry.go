package asset

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mitchellh/go-homedir"
)

// ErrUnknownTexture is returned when asking for a texture that wasn't loaded
var ErrUnknownTexture = errors.New("unknown texture")

// Registry holds every texture the application uses, keyed by name.
//
// Textures are loaded up front in an explicit load phase and looked up by
// name afterwards; nothing is loaded lazily.
type Registry struct {
	root     string
	textures map[string]*Texture
}

// NewRegistry returns an empty registry. Relative names are resolved against
// `root` (which may start with ~).
func NewRegistry(root string) *Registry {
	return &Registry{root: root, textures: map[string]*Texture{}}
}

// Load reads & decodes the given textures. Names already loaded are skipped.
// Nothing is added if any of them fail.
func (r *Registry) Load(names ...string) error {
	loaded := map[string]*Texture{}
	for _, name := range names {
		if _, ok := r.textures[name]; ok {
			continue
		}
		if _, ok := loaded[name]; ok {
			continue
		}

		path, err := r.path(name)
		if err != nil {
			return err
		}
		t, err := ReadTexture(path)
		if err != nil {
			return err
		}
		t.Name = name
		loaded[name] = t
	}

	for name, t := range loaded {
		r.textures[name] = t
	}
	return nil
}

// Add registers an already decoded texture under it's name
func (r *Registry) Add(t *Texture) {
	r.textures[t.Name] = t
}

// Texture returns a loaded texture by name
func (r *Registry) Texture(name string) (*Texture, error) {
	t, ok := r.textures[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTexture, name)
	}
	return t, nil
}

// MustTexture is Texture that panics
func (r *Registry) MustTexture(name string) *Texture {
	t, err := r.Texture(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns all loaded texture names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.textures))
	for n := range r.textures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) path(name string) (string, error) {
	full, err := homedir.Expand(name)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(full) || r.root == "" {
		return full, nil
	}
	root, err := homedir.Expand(r.root)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, full), nil
}
