package asset

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/ioutil"

	"golang.org/x/image/bmp"

	tile "github.com/voidshard/tile2d"
)

// Texture is a decoded image held in memory. It satisfies tile.Atlas.
type Texture struct {
	Name  string
	image *image.RGBA
}

// NewTexture wraps an already decoded image
func NewTexture(name string, in image.Image) *Texture {
	rgba, ok := in.(*image.RGBA)
	if !ok || rgba.Bounds().Min != (image.Point{}) {
		b := in.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), in, b.Min, draw.Src)
	}
	return &Texture{Name: name, image: rgba}
}

// Size in pixels
func (t *Texture) Size() (int, int) {
	b := t.image.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the pixels
func (t *Texture) Image() *image.RGBA {
	return t.image
}

// Region returns the pixels under the given frame (clipped to the texture)
func (t *Texture) Region(f tile.Frame) image.Image {
	r := image.Rect(int(f.X), int(f.Y), int(f.X+f.Width), int(f.Y+f.Height))
	return t.image.SubImage(r.Intersect(t.image.Bounds()))
}

// decode tries each of the formats we understand
func decode(in []byte) (image.Image, error) {
	decoders := []func(io.Reader) (image.Image, error){
		png.Decode,
		gif.Decode,
		jpeg.Decode,
		bmp.Decode,
	}

	var lastErr error
	for _, decoder := range decoders {
		im, err := decoder(bytes.NewReader(in))
		if err == nil {
			return im, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

// ReadTexture loads & decodes a texture from disk
func ReadTexture(fname string) (*Texture, error) {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tile.ErrFileNotFound, err)
	}

	im, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fname, err)
	}
	return NewTexture(fname, im), nil
}
