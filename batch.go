package tile

import (
	"fmt"
)

// VerticesPerTile is the number of vertices emitted for each non nil tile
// (two triangles, no index buffer).
const VerticesPerTile = 6

// Vertex is a position in map pixels plus a texture coordinate in [0,1].
type Vertex struct {
	X float32
	Y float32
	U float32
	V float32
}

// GeometryBatch is a static triangle list for one layer.
// It's built once at load time & never changed.
type GeometryBatch struct {
	Vertices []Vertex
}

// Len returns the number of vertices
func (b *GeometryBatch) Len() int {
	return len(b.Vertices)
}

// Tiles returns the number of tiles (quads) in the batch
func (b *GeometryBatch) Tiles() int {
	return len(b.Vertices) / VerticesPerTile
}

// Build turns a layer's tile ids into a triangle batch.
//
// Each non nil tile at (x,y) becomes a quad covering the pixels
// [x*tw, (x+1)*tw] x [y*th, (y+1)*th], textured with frames[id-1] normalised
// against the atlas size. Quads are emitted in row-major order as
// (bottom-left, bottom-right, top-right), (bottom-left, top-right, top-left).
func Build(layer *TileLayer, width int, frames []Frame, tileWidth, tileHeight, atlasWidth, atlasHeight int) (*GeometryBatch, error) {
	if atlasWidth <= 0 || atlasHeight <= 0 {
		return nil, fmt.Errorf("%w: atlas has no size (%dx%d)", ErrInvalidTileID, atlasWidth, atlasHeight)
	}
	if width <= 0 && len(layer.Tiles) > 0 {
		return nil, fmt.Errorf("%w: layer %q has tiles but map width is %d", ErrMalformedDocument, layer.Name, width)
	}

	batch := &GeometryBatch{
		Vertices: make([]Vertex, 0, layer.Count()*VerticesPerTile),
	}

	aw := float32(atlasWidth)
	ah := float32(atlasHeight)
	tw := float32(tileWidth)
	th := float32(tileHeight)

	for index, id := range layer.Tiles {
		if id == 0 {
			continue // nil tile
		}
		if int(id) > len(frames) {
			// the reverse of index = y * width + x
			return nil, fmt.Errorf(
				"%w: layer %q tile (%d,%d) has id %d but the atlas has %d frames",
				ErrInvalidTileID, layer.Name, index%width, index/width, id, len(frames),
			)
		}

		frame := frames[id-1]
		left := frame.X / aw
		top := frame.Y / ah
		right := (frame.X + frame.Width) / aw
		bottom := (frame.Y + frame.Height) / ah

		x0 := float32(index%width) * tw
		y0 := float32(index/width) * th
		x1 := x0 + tw
		y1 := y0 + th

		bl := Vertex{X: x0, Y: y1, U: left, V: bottom}
		br := Vertex{X: x1, Y: y1, U: right, V: bottom}
		tr := Vertex{X: x1, Y: y0, U: right, V: top}
		tl := Vertex{X: x0, Y: y0, U: left, V: top}

		batch.Vertices = append(batch.Vertices, bl, br, tr, bl, tr, tl)
	}

	return batch, nil
}
