package tile

import (
	"strconv"
)

const (
	// Property types
	// see doc.mapeditor.org/en/stable/reference/tmx-map-format/#properties
	PropString = "string"
	PropInt    = "int"
	PropFloat  = "float"
	PropBool   = "bool"
)

// Properties is a more straight forward []Property (as read from the XML)
// that handles types a bit more gracefully.
type Properties struct {
	ints    map[string]int
	floats  map[string]float64
	strings map[string]string
	bools   map[string]bool
}

// NewProperties returns an empty properties
func NewProperties() *Properties {
	return &Properties{
		ints:    map[string]int{},
		floats:  map[string]float64{},
		strings: map[string]string{},
		bools:   map[string]bool{},
	}
}

// newPropertiesFromList turns the XML []Property into our nicer properties
// wrapper struct. Later properties win if a name repeats.
func newPropertiesFromList(in []Property) *Properties {
	ps := NewProperties()

	for _, i := range in {
		switch i.Type {
		case PropInt:
			v, err := strconv.ParseInt(i.Value, 10, 64)
			if err != nil {
				ps.SetString(i.Name, i.Value)
				continue
			}
			ps.SetInt(i.Name, int(v))
		case PropFloat:
			v, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				ps.SetString(i.Name, i.Value)
				continue
			}
			ps.SetFloat(i.Name, v)
		case PropBool:
			ps.SetBool(i.Name, i.Value == "true")
		default:
			// colour, file, object etc are kept as their raw string
			ps.SetString(i.Name, i.Value)
		}
	}

	return ps
}

// Len returns the number of distinct property names
func (p *Properties) Len() int {
	return len(p.ints) + len(p.floats) + len(p.strings) + len(p.bools)
}

func (p *Properties) String(key string) (string, bool) {
	v, ok := p.strings[key]
	return v, ok
}

func (p *Properties) SetString(key, value string) {
	p.clear(key)
	p.strings[key] = value
}

func (p *Properties) Int(key string) (int, bool) {
	v, ok := p.ints[key]
	return v, ok
}

func (p *Properties) SetInt(key string, value int) {
	p.clear(key)
	p.ints[key] = value
}

// Float returns a float property. Int properties are widened.
func (p *Properties) Float(key string) (float64, bool) {
	if v, ok := p.floats[key]; ok {
		return v, true
	}
	v, ok := p.ints[key]
	return float64(v), ok
}

func (p *Properties) SetFloat(key string, value float64) {
	p.clear(key)
	p.floats[key] = value
}

func (p *Properties) Bool(key string) (bool, bool) {
	v, ok := p.bools[key]
	return v, ok
}

func (p *Properties) SetBool(key string, value bool) {
	p.clear(key)
	p.bools[key] = value
}

func (p *Properties) clear(key string) {
	delete(p.ints, key)
	delete(p.floats, key)
	delete(p.strings, key)
	delete(p.bools, key)
}
