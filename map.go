/* file ties a parsed Document to the geometry & lookups needed to draw and
query it at runtime.
*/
package tile

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Layer is a TileLayer with it's prebuilt geometry
type Layer struct {
	*TileLayer
	Batch *GeometryBatch
}

// TileMap is a loaded map, ready to render.
// Everything but the viewport is read-only after Load.
type TileMap struct {
	doc      *Document
	layers   []*Layer
	objects  *Registry
	viewport *Viewport
	frames   []Frame
}

// Load opens the TMX file at `fname` & builds geometry for every layer against
// the given atlas. Either everything loads or an error is returned.
func Load(fname string, atlas Atlas) (*TileMap, error) {
	doc, err := Open(fname)
	if err != nil {
		return nil, err
	}

	m, err := New(doc, atlas)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return m, nil
}

// New builds a TileMap from an already parsed document.
func New(doc *Document, atlas Atlas) (*TileMap, error) {
	aw, ah := atlas.Size()
	frames := Slice(aw, ah, doc.TileWidth, doc.TileHeight)

	layers := make([]*Layer, 0, len(doc.Layers))
	for _, tl := range doc.Layers {
		batch, err := Build(tl, doc.Width, frames, doc.TileWidth, doc.TileHeight, aw, ah)
		if err != nil {
			return nil, err
		}
		layers = append(layers, &Layer{TileLayer: tl, Batch: batch})
	}

	w, h := doc.Bounds()
	return &TileMap{
		doc:      doc,
		layers:   layers,
		objects:  NewRegistry(doc.Objects),
		viewport: NewViewport(float32(w), float32(h)),
		frames:   frames,
	}, nil
}

// Document returns the parsed map
func (m *TileMap) Document() *Document {
	return m.doc
}

// Layers returns all layers in draw order (bottom first)
func (m *TileMap) Layers() []*Layer {
	return m.layers
}

// Layer returns the first layer with the given name, or nil
func (m *TileMap) Layer(name string) *Layer {
	for _, l := range m.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Frames returns the atlas frames tiles are drawn from
func (m *TileMap) Frames() []Frame {
	return m.frames
}

// Objects returns the map's object registry
func (m *TileMap) Objects() *Registry {
	return m.objects
}

// Bounds returns the map size in pixels
func (m *TileMap) Bounds() mgl32.Vec2 {
	w, h := m.doc.Bounds()
	return mgl32.Vec2{float32(w), float32(h)}
}

// Viewport returns the map's viewport
func (m *TileMap) Viewport() *Viewport {
	return m.viewport
}

// SetViewport frames the map around `focus` (usually the player)
func (m *TileMap) SetViewport(focus mgl32.Vec2, ctx Context) {
	m.viewport.SetFocus(focus, ctx)
}

// Render hands every visible layer to `r` along with the current view.
func (m *TileMap) Render(r Renderer, ctx Context) {
	view := m.viewport.View()
	for _, l := range m.layers {
		if !l.Visible {
			continue
		}
		r.DrawLayer(ctx.Atlas, l.Batch, view)
	}
}
