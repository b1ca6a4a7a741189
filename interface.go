package tile

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws what we prepare. We never issue draw calls ourselves.
type Renderer interface {
	// DrawLayer draws one static layer batch, textured from `atlas` and
	// translated by `view`
	DrawLayer(atlas Atlas, batch *GeometryBatch, view mgl32.Mat4)

	// DrawSprite draws the `rect` region of `texture` transformed by `model`
	// and multiplied by `tint` (rgba in [0,1])
	DrawSprite(texture Atlas, rect Frame, model mgl32.Mat4, tint mgl32.Vec4)
}
