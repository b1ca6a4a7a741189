package tile

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Document is a parsed TMX map.
// We support only a subset of TMX (read: the bits needed to draw it).
// - one tileset at most, whose frames are addressed by tile id - 1
// - CSV tile data without compression
// - 'orthogonal' orientation
//
// A Document is read-only once Decode returns.
type Document struct {
	Width      int // in tiles
	Height     int // in tiles
	TileWidth  int // in pixels
	TileHeight int // in pixels

	// image source of the tileset (if the map declares one)
	TilesetImage string

	Properties []Property
	Layers     []*TileLayer
	Objects    []Object
}

// TileLayer is a row-major grid of tile ids.
// 0 is the nil (empty) tile, anything else is an atlas frame index + 1.
type TileLayer struct {
	ID      int
	Name    string
	Visible bool
	Tiles   []uint32
}

// At returns the tile id at (x,y), or 0 if (x,y) is off the layer.
func (l *TileLayer) At(width, x, y int) uint32 {
	if x < 0 || y < 0 || x >= width {
		return 0
	}
	index := y*width + x
	if index >= len(l.Tiles) {
		return 0
	}
	return l.Tiles[index]
}

// Count returns the number of non nil tiles in the layer
func (l *TileLayer) Count() int {
	n := 0
	for _, id := range l.Tiles {
		if id != 0 {
			n++
		}
	}
	return n
}

// Bounds returns the size of the whole map in pixels
func (d *Document) Bounds() (width, height int) {
	return d.Width * d.TileWidth, d.Height * d.TileHeight
}

// Decode an input TMX map XML
func Decode(r io.Reader) (*Document, error) {
	raw := &xmlMap{}
	if err := xml.NewDecoder(r).Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var err error
	doc := &Document{
		Properties: []Property{},
		Layers:     []*TileLayer{},
		Objects:    []Object{},
	}

	if doc.Width, err = requiredInt("width", raw.Width); err != nil {
		return nil, err
	}
	if doc.Height, err = requiredInt("height", raw.Height); err != nil {
		return nil, err
	}
	if doc.TileWidth, err = requiredInt("tilewidth", raw.TileWidth); err != nil {
		return nil, err
	}
	if doc.TileHeight, err = requiredInt("tileheight", raw.TileHeight); err != nil {
		return nil, err
	}

	if len(raw.Tilesets) > 1 {
		return nil, fmt.Errorf("%w: lib only supports 1 tileset, found %d", ErrMalformedDocument, len(raw.Tilesets))
	}
	for _, ts := range raw.Tilesets {
		if ts.Image != nil {
			doc.TilesetImage = ts.Image.Source
		}
	}

	for _, p := range raw.Properties {
		doc.Properties = append(doc.Properties, p.toProperty())
	}

	for i, l := range raw.Layers {
		layer, err := decodeLayer(doc, i, l)
		if err != nil {
			return nil, err
		}
		doc.Layers = append(doc.Layers, layer)
	}

	for _, group := range raw.ObjectGroups {
		for _, o := range group.Objects {
			obj, err := decodeObject(o)
			if err != nil {
				return nil, err
			}
			doc.Objects = append(doc.Objects, obj)
		}
	}

	return doc, nil
}

// decodeLayer reads the i-th <layer>
func decodeLayer(doc *Document, i int, l *xmlLayer) (*TileLayer, error) {
	if l.Data == nil {
		return nil, fmt.Errorf("%w: layer %d (%s) has no data", ErrMalformedDocument, i, l.Name)
	}

	enc := strings.ToLower(strings.TrimSpace(l.Data.Encoding))
	if (enc != "" && enc != "csv") || l.Data.Compression != "" {
		return nil, fmt.Errorf(
			"%w: layer %d (%s) unsupported encoding %q compression %q",
			ErrMalformedDocument, i, l.Name, l.Data.Encoding, l.Data.Compression,
		)
	}

	tiles, err := decodeTiles(l.Data.Text)
	if err != nil {
		return nil, fmt.Errorf("layer %d (%s): %w", i, l.Name, err)
	}

	expect := doc.Width * doc.Height
	if len(tiles) != expect {
		return nil, fmt.Errorf(
			"%w: layer %d (%s) has %d tiles, expected %d",
			ErrMalformedDocument, i, l.Name, len(tiles), expect,
		)
	}

	id, _ := strconv.Atoi(l.ID)
	return &TileLayer{
		ID:      id,
		Name:    l.Name,
		Visible: l.Visible == nil || strings.TrimSpace(*l.Visible) != "0",
		Tiles:   tiles,
	}, nil
}

// decodeObject reads a single <object>
func decodeObject(o *xmlObject) (Object, error) {
	x, err := requiredFloat("x", o.X)
	if err != nil {
		return Object{}, fmt.Errorf("object %q: %w", o.Name, err)
	}
	y, err := requiredFloat("y", o.Y)
	if err != nil {
		return Object{}, fmt.Errorf("object %q: %w", o.Name, err)
	}

	// size only counts if both are given
	var w, h float32
	if o.Width != nil && o.Height != nil {
		if w, err = requiredFloat("width", o.Width); err != nil {
			return Object{}, fmt.Errorf("object %q: %w", o.Name, err)
		}
		if h, err = requiredFloat("height", o.Height); err != nil {
			return Object{}, fmt.Errorf("object %q: %w", o.Name, err)
		}
	}

	id, _ := strconv.Atoi(o.ID)
	obj := Object{
		ID:         id,
		Name:       o.Name,
		Type:       o.Type,
		Bounds:     Frame{X: x, Y: y, Width: w, Height: h},
		Properties: make([]Property, 0, len(o.Properties)),
	}
	for _, p := range o.Properties {
		obj.Properties = append(obj.Properties, p.toProperty())
	}
	return obj, nil
}

// Open reads a TMX map from disk
func Open(fname string) (*Document, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return doc, nil
}
