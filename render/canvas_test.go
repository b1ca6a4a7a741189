package render

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tile "github.com/voidshard/tile2d"
	"github.com/voidshard/tile2d/asset"
	"github.com/voidshard/tile2d/sprite"
)

var (
	red         = color.RGBA{255, 0, 0, 255}
	green       = color.RGBA{0, 255, 0, 255}
	black       = color.RGBA{0, 0, 0, 255}
	transparent = color.RGBA{}
)

// testAtlas is 32x16: a red tile then a green tile
func testAtlas() *asset.Texture {
	im := image.NewRGBA(image.Rect(0, 0, 32, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			if x < 16 {
				im.SetRGBA(x, y, red)
			} else {
				im.SetRGBA(x, y, green)
			}
		}
	}
	return asset.NewTexture("atlas", im)
}

type sizeOnly struct{}

func (sizeOnly) Size() (int, int) { return 32, 16 }

func TestDrawLayer(t *testing.T) {
	atlas := testAtlas()
	doc, err := tile.Decode(bytes.NewBufferString(`<map width="2" height="2" tilewidth="16" tileheight="16">
		<layer><data encoding="csv">0,1,0,2</data></layer>
	</map>`))
	require.Nil(t, err)
	m, err := tile.New(doc, atlas)
	require.Nil(t, err)

	c := NewCanvas(32, 32)
	m.Render(c, tile.Context{ScreenWidth: 32, ScreenHeight: 32, Atlas: atlas})

	im := c.Image()
	assert.Equal(t, transparent, im.RGBAAt(4, 4))
	assert.Equal(t, red, im.RGBAAt(20, 4))
	assert.Equal(t, transparent, im.RGBAAt(4, 20))
	assert.Equal(t, green, im.RGBAAt(20, 20))
	assert.Equal(t, 0, c.Skipped)
}

func TestDrawLayerView(t *testing.T) {
	atlas := testAtlas()
	batch, err := tile.Build(&tile.TileLayer{Tiles: []uint32{2}}, 1, tile.SliceAtlas(atlas, 16, 16), 16, 16, 32, 16)
	require.Nil(t, err)

	c := NewCanvas(32, 32)
	c.DrawLayer(atlas, batch, mgl32.Translate3D(16, 16, 0))

	assert.Equal(t, transparent, c.Image().RGBAAt(4, 4))
	assert.Equal(t, green, c.Image().RGBAAt(20, 20))
}

func TestDrawSkipsAtlasWithoutPixels(t *testing.T) {
	c := NewCanvas(8, 8)

	c.DrawLayer(sizeOnly{}, &tile.GeometryBatch{}, mgl32.Ident4())
	c.DrawSprite(sizeOnly{}, tile.NewFrame(0, 0, 8, 8), mgl32.Ident4(), mgl32.Vec4{1, 1, 1, 1})

	assert.Equal(t, 2, c.Skipped)
}

func TestDrawSprite(t *testing.T) {
	s := sprite.New(testAtlas())
	s.Transform.SetPosition(10, 10)

	c := NewCanvas(64, 64)
	s.Render(c)

	im := c.Image()
	assert.Equal(t, transparent, im.RGBAAt(5, 5))
	assert.Equal(t, red, im.RGBAAt(12, 12))
	assert.Equal(t, green, im.RGBAAt(40, 20))
	assert.Equal(t, transparent, im.RGBAAt(45, 20))
}

func TestDrawSpriteFrame(t *testing.T) {
	s := sprite.New(testAtlas())
	s.Transform.SetTextureRect(tile.NewFrame(16, 0, 16, 16))

	c := NewCanvas(32, 32)
	s.Render(c)

	assert.Equal(t, green, c.Image().RGBAAt(0, 0))
	assert.Equal(t, green, c.Image().RGBAAt(15, 15))
	assert.Equal(t, transparent, c.Image().RGBAAt(20, 4))
}

func TestDrawSpriteTint(t *testing.T) {
	s := sprite.New(testAtlas())
	s.Transform.SetTint(sprite.Blue)

	c := NewCanvas(32, 16)
	s.Render(c)

	// red * blue
	assert.Equal(t, black, c.Image().RGBAAt(4, 4))
}

func TestOutline(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Outline(tile.NewFrame(4, 4, 8, 8), mgl32.Ident4(), red)

	assert.Equal(t, transparent, c.Image().RGBAAt(8, 8))
	assert.NotEqual(t, transparent, c.Image().RGBAAt(4, 8))
}

func TestSavePNG(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.png")
	c := NewCanvas(4, 4)
	c.Clear(red)

	require.Nil(t, c.SavePNG(fname))

	tex, err := asset.ReadTexture(fname)
	require.Nil(t, err)
	assert.Equal(t, red, tex.Image().RGBAAt(1, 1))
}
