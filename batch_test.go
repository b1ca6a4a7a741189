package tile

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVertexCount(t *testing.T) {
	frames := Slice(64, 64, 16, 16)
	layer := &TileLayer{Name: "test", Tiles: []uint32{
		0, 1, 2, 0,
		16, 0, 0, 0,
		0, 0, 0, 3,
	}}

	batch, err := Build(layer, 4, frames, 16, 16, 64, 64)

	require.Nil(t, err)
	assert.Equal(t, VerticesPerTile*layer.Count(), batch.Len())
	assert.Equal(t, 4, batch.Tiles())
}

func TestBuildEmptyLayer(t *testing.T) {
	layer := &TileLayer{Tiles: []uint32{0, 0, 0, 0}}

	batch, err := Build(layer, 2, Slice(32, 16, 16, 16), 16, 16, 32, 16)

	require.Nil(t, err)
	assert.Equal(t, 0, batch.Len())
}

func TestBuildInvalidTileID(t *testing.T) {
	layer := &TileLayer{Name: "bad", Tiles: []uint32{0, 3}}

	batch, err := Build(layer, 2, Slice(32, 16, 16, 16), 16, 16, 32, 16)

	assert.Nil(t, batch)
	assert.True(t, errors.Is(err, ErrInvalidTileID))
}

func TestBuildQuad(t *testing.T) {
	// one tile using the second frame of a 32x16 atlas, at cell (0,0)
	layer := &TileLayer{Tiles: []uint32{2}}

	batch, err := Build(layer, 1, Slice(32, 16, 16, 16), 16, 16, 32, 16)

	require.Nil(t, err)
	assert.Equal(t, []Vertex{
		{X: 0, Y: 16, U: 0.5, V: 1},
		{X: 16, Y: 16, U: 1, V: 1},
		{X: 16, Y: 0, U: 1, V: 0},
		{X: 0, Y: 16, U: 0.5, V: 1},
		{X: 16, Y: 0, U: 1, V: 0},
		{X: 0, Y: 0, U: 0.5, V: 0},
	}, batch.Vertices)
}

// quadBounds returns the pixel rect & uv rect covered by the i-th quad
func quadBounds(b *GeometryBatch, i int) (Frame, Frame) {
	q := b.Vertices[i*VerticesPerTile : (i+1)*VerticesPerTile]
	minX, minY, maxX, maxY := q[0].X, q[0].Y, q[0].X, q[0].Y
	minU, minV, maxU, maxV := q[0].U, q[0].V, q[0].U, q[0].V
	for _, v := range q {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
		minU, maxU = min(minU, v.U), max(maxU, v.U)
		minV, maxV = min(minV, v.V), max(maxV, v.V)
	}
	return NewFrame(minX, minY, maxX-minX, maxY-minY), NewFrame(minU, minV, maxU-minU, maxV-minV)
}

func TestBuildEndToEnd(t *testing.T) {
	doc, err := Decode(bytes.NewBufferString(`<map width="2" height="2" tilewidth="16" tileheight="16">
		<layer><data encoding="csv">0,1,0,2</data></layer>
	</map>`))
	require.Nil(t, err)

	m, err := New(doc, fakeAtlas{32, 16})
	require.Nil(t, err)
	require.Equal(t, 1, len(m.Layers()))

	batch := m.Layers()[0].Batch
	assert.Equal(t, 12, batch.Len())

	// id 1 sits at cell (1,0) (row-major: index 1) & samples atlas frame 0
	pos, uv := quadBounds(batch, 0)
	assert.Equal(t, NewFrame(16, 0, 16, 16), pos)
	assert.Equal(t, NewFrame(0, 0, 0.5, 1), uv)

	// id 2 sits at cell (1,1) & samples atlas frame 1
	pos, uv = quadBounds(batch, 1)
	assert.Equal(t, NewFrame(16, 16, 16, 16), pos)
	assert.Equal(t, NewFrame(0.5, 0, 0.5, 1), uv)
}
