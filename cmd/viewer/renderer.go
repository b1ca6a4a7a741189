package main

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	tile "github.com/voidshard/tile2d"
	"github.com/voidshard/tile2d/render"
)

// maxBatchVertices keeps each DrawTriangles call within uint16 indices
// while never splitting a quad.
const maxBatchVertices = (1<<16 - 1) / tile.VerticesPerTile * tile.VerticesPerTile

// ebitenRenderer implements tile.Renderer on an ebiten screen.
// GPU images are created once per atlas on first use.
type ebitenRenderer struct {
	screen *ebiten.Image
	images map[tile.Atlas]*ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func newEbitenRenderer() *ebitenRenderer {
	return &ebitenRenderer{images: map[tile.Atlas]*ebiten.Image{}}
}

func (r *ebitenRenderer) image(a tile.Atlas) *ebiten.Image {
	if im, ok := r.images[a]; ok {
		return im
	}
	src, ok := a.(render.Source)
	if !ok {
		return nil
	}
	im := ebiten.NewImageFromImage(src.Image())
	r.images[a] = im
	return im
}

// DrawLayer draws the batch as plain triangles, chunked to fit uint16 indices
func (r *ebitenRenderer) DrawLayer(atlas tile.Atlas, batch *tile.GeometryBatch, view mgl32.Mat4) {
	im := r.image(atlas)
	if im == nil || r.screen == nil {
		return
	}
	aw, ah := atlas.Size()

	for start := 0; start < batch.Len(); start += maxBatchVertices {
		end := min(start+maxBatchVertices, batch.Len())

		r.vertices = r.vertices[:0]
		r.indices = r.indices[:0]
		for i, v := range batch.Vertices[start:end] {
			p := view.Mul4x1(mgl32.Vec4{v.X, v.Y, 0, 1})
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   p.X(),
				DstY:   p.Y(),
				SrcX:   v.U * float32(aw),
				SrcY:   v.V * float32(ah),
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			})
			r.indices = append(r.indices, uint16(i))
		}
		r.screen.DrawTriangles(r.vertices, r.indices, im, &ebiten.DrawTrianglesOptions{})
	}
}

// DrawSprite draws part of a texture through the model matrix
func (r *ebitenRenderer) DrawSprite(texture tile.Atlas, rect tile.Frame, model mgl32.Mat4, tint mgl32.Vec4) {
	im := r.image(texture)
	if im == nil || r.screen == nil {
		return
	}
	sub := im.SubImage(image.Rect(
		int(rect.X), int(rect.Y), int(rect.X+rect.Width), int(rect.Y+rect.Height),
	)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.SetElement(0, 0, float64(model[0]))
	op.GeoM.SetElement(0, 1, float64(model[4]))
	op.GeoM.SetElement(0, 2, float64(model[12]))
	op.GeoM.SetElement(1, 0, float64(model[1]))
	op.GeoM.SetElement(1, 1, float64(model[5]))
	op.GeoM.SetElement(1, 2, float64(model[13]))

	a := tint.W()
	op.ColorScale.Scale(tint.X()*a, tint.Y()*a, tint.Z()*a, a)
	op.Filter = ebiten.FilterNearest

	r.screen.DrawImage(sub, op)
}
