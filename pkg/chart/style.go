package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Style is the line appearance of one series.
type Style struct {
	Color  color.Color
	Dashes []vg.Length
}

var colors = map[byte]color.RGBA{
	'b': {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	'g': {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	'r': {R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	'c': {R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
	'm': {R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	'y': {R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	'k': {A: 0xff},
}

var dashes = map[string][]vg.Length{
	"-":  nil,
	"--": {vg.Points(6), vg.Points(3)},
	":":  {vg.Points(1), vg.Points(2)},
	"-.": {vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)},
}

// ParseStyle reads a compact style tag: a colour letter (b g r c m y k)
// followed by a line pattern ("-", "--", ":" or "-."). An empty tag is a
// solid black line.
func ParseStyle(tag string) (Style, error) {
	if tag == "" {
		return Style{Color: colors['k']}, nil
	}
	c, ok := colors[tag[0]]
	if !ok {
		return Style{}, fmt.Errorf("style %q: unknown colour %q", tag, tag[0])
	}
	pattern := tag[1:]
	if pattern == "" {
		pattern = "-"
	}
	d, ok := dashes[pattern]
	if !ok {
		return Style{}, fmt.Errorf("style %q: unknown line pattern %q", tag, pattern)
	}
	return Style{Color: c, Dashes: d}, nil
}
