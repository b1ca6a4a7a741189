package tile

// Atlas is a texture holding many fixed size frames laid out on a grid.
// We only ever need to know how big it is; decoding & upload happen elsewhere.
type Atlas interface {
	// Size of the texture in pixels
	Size() (width, height int)
}

// Slice cuts an atlas of (width, height) pixels into frames of
// (tileWidth, tileHeight) pixels, row by row from the top left.
//
// Pixels left over at the right / bottom edges (when the atlas isn't an exact
// multiple of the tile size) are not part of any frame.
func Slice(width, height, tileWidth, tileHeight int) []Frame {
	if tileWidth <= 0 || tileHeight <= 0 || width <= 0 || height <= 0 {
		return []Frame{}
	}

	rows := height / tileHeight
	cols := width / tileWidth

	frames := make([]Frame, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			frames = append(frames, Frame{
				X:      float32(x * tileWidth),
				Y:      float32(y * tileHeight),
				Width:  float32(tileWidth),
				Height: float32(tileHeight),
			})
		}
	}
	return frames
}

// SliceAtlas is Slice for something that knows it's own size
func SliceAtlas(a Atlas, tileWidth, tileHeight int) []Frame {
	w, h := a.Size()
	return Slice(w, h, tileWidth, tileHeight)
}
