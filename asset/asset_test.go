package asset

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tile "github.com/voidshard/tile2d"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
)

// writePNG saves a w x h image, left half red & right half green
func writePNG(t *testing.T, dir, name string, w, h int) {
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				im.Set(x, y, red)
			} else {
				im.Set(x, y, green)
			}
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	require.Nil(t, err)
	defer f.Close()
	require.Nil(t, png.Encode(f, im))
}

func TestReadTexture(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "atlas.png", 32, 16)

	tex, err := ReadTexture(filepath.Join(dir, "atlas.png"))
	require.Nil(t, err)

	w, h := tex.Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)
	assert.Equal(t, red, tex.Image().RGBAAt(0, 0))
	assert.Equal(t, green, tex.Image().RGBAAt(31, 15))

	region := tex.Region(tile.NewFrame(16, 0, 16, 16))
	assert.Equal(t, image.Rect(16, 0, 32, 16), region.Bounds())
	assert.Equal(t, 2, len(tile.SliceAtlas(tex, 16, 16)))
}

func TestReadTextureNotAnImage(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "notes.txt")
	require.Nil(t, os.WriteFile(fname, []byte("hello"), 0644))

	_, err := ReadTexture(fname)

	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, tile.ErrFileNotFound))
}

func TestNewTextureMovesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	src.Set(4, 4, red)

	tex := NewTexture("sub", src.SubImage(image.Rect(4, 4, 8, 8)))

	assert.Equal(t, image.Rect(0, 0, 4, 4), tex.Image().Bounds())
	assert.Equal(t, red, tex.Image().RGBAAt(0, 0))
}

func TestRegistryLoad(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 4, 4)
	writePNG(t, dir, "b.png", 8, 4)

	r := NewRegistry(dir)
	require.Nil(t, r.Load("a.png", "b.png", "a.png"))

	assert.Equal(t, []string{"a.png", "b.png"}, r.Names())

	b, err := r.Texture("b.png")
	require.Nil(t, err)
	assert.Equal(t, "b.png", b.Name)
	w, _ := b.Size()
	assert.Equal(t, 8, w)

	assert.Equal(t, b, r.MustTexture("b.png"))
}

func TestRegistryLoadIsAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 4, 4)

	r := NewRegistry(dir)
	err := r.Load("a.png", "missing.png")

	assert.True(t, errors.Is(err, tile.ErrFileNotFound))
	assert.Equal(t, []string{}, r.Names())
}

func TestRegistryUnknownTexture(t *testing.T) {
	r := NewRegistry("")

	tex, err := r.Texture("nope.png")

	assert.Nil(t, tex)
	assert.True(t, errors.Is(err, ErrUnknownTexture))
	assert.Panics(t, func() { r.MustTexture("nope.png") })
}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry("")
	r.Add(NewTexture("blank", image.NewRGBA(image.Rect(0, 0, 2, 2))))

	_, err := r.Texture("blank")
	assert.Nil(t, err)
}
