/* this file holds the raw structs for reading TMX files.

We only need a small part of the TMX feature set in order to draw a map, so we
only bother to parse those things. Everything here is read once & converted into
a Document (see document.go); nothing outside this file touches the raw XML.
*/
package tile

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// xmlMap is the TMX <map> element.
// Numeric attributes are pointers so we can tell "missing" from "zero".
type xmlMap struct {
	XMLName      xml.Name          `xml:"map"`
	Width        *string           `xml:"width,attr"`      // in tiles
	Height       *string           `xml:"height,attr"`     // in tiles
	TileWidth    *string           `xml:"tilewidth,attr"`  // in pixels
	TileHeight   *string           `xml:"tileheight,attr"` // in pixels
	Properties   []*xmlProperty    `xml:"properties>property"`
	Tilesets     []*xmlTileset     `xml:"tileset"`
	Layers       []*xmlLayer       `xml:"layer"`
	ObjectGroups []*xmlObjectGroup `xml:"objectgroup"`
}

// xmlTileset is a TMX <tileset>. We support exactly zero or one of these.
type xmlTileset struct {
	FirstGID string    `xml:"firstgid,attr"`
	Name     string    `xml:"name,attr"`
	Image    *xmlImage `xml:"image"`
}

// xmlImage is an image file in TMX
type xmlImage struct {
	Source string `xml:"source,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

// xmlLayer is a TMX tile layer
type xmlLayer struct {
	ID      string   `xml:"id,attr"`
	Name    string   `xml:"name,attr"`
	Visible *string  `xml:"visible,attr"`
	Data    *xmlData `xml:"data"`
}

// xmlData holds a layer's tile ids
type xmlData struct {
	Encoding    string `xml:"encoding,attr"`
	Compression string `xml:"compression,attr"`
	Text        string `xml:",chardata"`
}

// xmlObjectGroup is a TMX <objectgroup>
type xmlObjectGroup struct {
	Name    string       `xml:"name,attr"`
	Objects []*xmlObject `xml:"object"`
}

// xmlObject is a TMX <object>, everything but x & y is optional
type xmlObject struct {
	ID         string         `xml:"id,attr"`
	Name       string         `xml:"name,attr"`
	Type       string         `xml:"type,attr"`
	X          *string        `xml:"x,attr"`
	Y          *string        `xml:"y,attr"`
	Width      *string        `xml:"width,attr"`
	Height     *string        `xml:"height,attr"`
	Properties []*xmlProperty `xml:"properties>property"`
}

// xmlProperty is a TMX <property>.
// Multi line string values are written as the element text rather than `value`.
type xmlProperty struct {
	Name  string  `xml:"name,attr"`
	Type  string  `xml:"type,attr"`
	Value *string `xml:"value,attr"`
	Text  string  `xml:",chardata"`
}

// toProperty flattens the raw XML into a Property
func (p *xmlProperty) toProperty() Property {
	value := p.Text
	if p.Value != nil {
		value = *p.Value
	}
	return Property{Name: p.Name, Type: p.Type, Value: value}
}

// requiredInt reads a required integer attribute
func requiredInt(name string, v *string) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: missing attribute %q", ErrMalformedDocument, name)
	}
	i, err := strconv.Atoi(strings.TrimSpace(*v))
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: attribute %q is not a non-negative integer: %q", ErrMalformedDocument, name, *v)
	}
	return i, nil
}

// requiredFloat reads a required numeric attribute
func requiredFloat(name string, v *string) (float32, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: missing attribute %q", ErrMalformedDocument, name)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*v), 32)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %q is not a number: %q", ErrMalformedDocument, name, *v)
	}
	return float32(f), nil
}

// decodeTiles reads csv encoded tile data.
//
// Any run of non digit characters separates two ids (commas, newlines, spaces ..)
// so we're lenient about whitespace & trailing commas. The last id counts even
// if nothing follows it.
func decodeTiles(raw string) ([]uint32, error) {
	ids := make([]uint32, 0, len(raw)/2)

	start := -1
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		id, err := strconv.ParseUint(raw[start:end], 10, 32)
		if err != nil {
			return fmt.Errorf("%w: tile id %q: %v", ErrMalformedDocument, raw[start:end], err)
		}
		ids = append(ids, uint32(id))
		start = -1
		return nil
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if err := flush(i); err != nil {
			return nil, err
		}
	}

	// no trailing delimiter
	if err := flush(len(raw)); err != nil {
		return nil, err
	}
	return ids, nil
}
