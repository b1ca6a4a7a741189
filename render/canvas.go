/* Package render is a software implementation of tile.Renderer.

It draws into an in memory RGBA image, which is enough for tools (rendering
maps to PNG) & tests. Real games hand batches to the GPU instead.
*/
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	tile "github.com/voidshard/tile2d"
)

// Source is an atlas we can read pixels from
type Source interface {
	tile.Atlas
	Image() *image.RGBA
}

// Canvas draws layers & sprites onto an image.
type Canvas struct {
	im *image.RGBA
	dc *gg.Context

	// Skipped counts draw calls ignored because their atlas had no pixels
	Skipped int
}

// NewCanvas returns a transparent canvas of the given size in pixels
func NewCanvas(width, height int) *Canvas {
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{im: im, dc: gg.NewContextForRGBA(im)}
}

// Image returns what's been drawn so far
func (c *Canvas) Image() *image.RGBA {
	return c.im
}

// Clear fills the canvas with a colour
func (c *Canvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// SavePNG writes the canvas to disk
func (c *Canvas) SavePNG(fname string) error {
	return c.dc.SavePNG(fname)
}

// Outline strokes a rectangle (in map pixels) moved by `view`
func (c *Canvas) Outline(f tile.Frame, view mgl32.Mat4, col color.Color) {
	x0, y0 := transform(view, f.X, f.Y)
	x1, y1 := transform(view, f.X+f.Width, f.Y+f.Height)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)
	c.dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0))
	c.dc.Stroke()
}

// DrawLayer draws each quad of the batch from the atlas
func (c *Canvas) DrawLayer(atlas tile.Atlas, batch *tile.GeometryBatch, view mgl32.Mat4) {
	src, ok := atlas.(Source)
	if !ok {
		c.Skipped++
		return
	}
	aw, ah := src.Size()

	for i := 0; i+tile.VerticesPerTile <= batch.Len(); i += tile.VerticesPerTile {
		quad := batch.Vertices[i : i+tile.VerticesPerTile]

		minX, minY := quad[0].X, quad[0].Y
		maxX, maxY := minX, minY
		minU, minV := quad[0].U, quad[0].V
		maxU, maxV := minU, minV
		for _, v := range quad[1:] {
			minX, maxX = min(minX, v.X), max(maxX, v.X)
			minY, maxY = min(minY, v.Y), max(maxY, v.Y)
			minU, maxU = min(minU, v.U), max(maxU, v.U)
			minV, maxV = min(minV, v.V), max(maxV, v.V)
		}

		sr := image.Rect(
			round(minU*float32(aw)), round(minV*float32(ah)),
			round(maxU*float32(aw)), round(maxV*float32(ah)),
		)
		dst := tile.NewFrame(minX, minY, maxX-minX, maxY-minY)
		c.blit(src.Image(), sr, dst, view)
	}
}

// DrawSprite draws the `rect` region of `texture` through the model matrix
func (c *Canvas) DrawSprite(texture tile.Atlas, rect tile.Frame, model mgl32.Mat4, tint mgl32.Vec4) {
	src, ok := texture.(Source)
	if !ok {
		c.Skipped++
		return
	}

	sr := image.Rect(round(rect.X), round(rect.Y), round(rect.X+rect.Width), round(rect.Y+rect.Height))
	var im image.Image = src.Image()
	if tint != (mgl32.Vec4{1, 1, 1, 1}) {
		im = tinted(src.Image(), sr, tint)
	}
	c.blit(im, sr, tile.NewFrame(0, 0, rect.Width, rect.Height), model)
}

// blit maps the `sr` pixels of `src` onto `dst` (in local space) then through `m`
func (c *Canvas) blit(src image.Image, sr image.Rectangle, dst tile.Frame, m mgl32.Mat4) {
	if sr.Empty() {
		return
	}

	kx := float64(dst.Width) / float64(sr.Dx())
	ky := float64(dst.Height) / float64(sr.Dy())

	// local = dst.pos + (s - sr.Min) * k
	ox := float64(dst.X) - kx*float64(sr.Min.X)
	oy := float64(dst.Y) - ky*float64(sr.Min.Y)

	// Mat4 is column major; only the 2D affine part matters here
	a, b, tx := float64(m[0]), float64(m[4]), float64(m[12])
	d, e, ty := float64(m[1]), float64(m[5]), float64(m[13])

	aff := f64.Aff3{
		a * kx, b * ky, a*ox + b*oy + tx,
		d * kx, e * ky, d*ox + e*oy + ty,
	}
	xdraw.NearestNeighbor.Transform(c.im, aff, src, sr, xdraw.Over, nil)
}

// tinted returns a copy of the `sr` region of `src` multiplied by `tint`
func tinted(src *image.RGBA, sr image.Rectangle, tint mgl32.Vec4) *image.RGBA {
	sr = sr.Intersect(src.Bounds())
	out := image.NewRGBA(sr)
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		for x := sr.Min.X; x < sr.Max.X; x++ {
			p := src.RGBAAt(x, y)
			a := tint.W()
			out.SetRGBA(x, y, color.RGBA{
				R: scale8(p.R, tint.X()*a),
				G: scale8(p.G, tint.Y()*a),
				B: scale8(p.B, tint.Z()*a),
				A: scale8(p.A, a),
			})
		}
	}
	return out
}

func scale8(v uint8, k float32) uint8 {
	return uint8(math.Round(float64(mgl32.Clamp(float32(v)*k, 0, 255))))
}

func transform(m mgl32.Mat4, x, y float32) (float32, float32) {
	v := m.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return v.X(), v.Y()
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

// SavePNG writes any image to disk as a png
func SavePNG(fname string, in image.Image) error {
	return gg.SavePNG(fname, in)
}
