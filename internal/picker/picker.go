// Package picker maps a pointer offset inside the custom color picker to a
// hue/saturation pair. Value is always 1.
package picker

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Selection is a point in the picker's HSV plane.
type Selection struct {
	Hue        float64 // degrees, [0, 360]
	Saturation float64 // [0, 1]
}

// Initial is the selection before the user touches the picker.
var Initial = Selection{Hue: 0, Saturation: 1}

// Map converts an offset inside a rect of the given size. The offset is
// clamped into the rect first; a non-positive dimension yields a zero ratio.
func Map(offset fyne.Position, size fyne.Size) Selection {
	x := ratio(offset.X, size.Width)
	y := ratio(offset.Y, size.Height)
	return Selection{
		Hue:        clamp(x*360, 0, 360),
		Saturation: clamp(1-y, 0, 1),
	}
}

// Offset is the inverse of Map: where the indicator sits for s.
func (s Selection) Offset(size fyne.Size) fyne.Position {
	return fyne.NewPos(
		float32(s.Hue/360)*size.Width,
		float32(1-s.Saturation)*size.Height,
	)
}

// Color returns the opaque RGBA form of s.
func (s Selection) Color() color.NRGBA {
	return s.ColorAlpha(255)
}

func (s Selection) ColorAlpha(alpha uint8) color.NRGBA {
	// colorful.Hsv expects hue in [0, 360); 360 is the same red as 0.
	c := colorful.Hsv(math.Mod(s.Hue, 360), s.Saturation, 1).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func ratio(v, extent float32) float64 {
	if extent <= 0 {
		return 0
	}
	return clamp(float64(v), 0, float64(extent)) / float64(extent)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Picker keeps the last selection so the dialog can draw its indicator.
type Picker struct {
	size   fyne.Size
	sel    Selection
	offset fyne.Position
}

func New(size fyne.Size) *Picker {
	p := &Picker{size: size, sel: Initial}
	p.offset = p.sel.Offset(size)
	return p
}

// Resize keeps the current selection and moves the indicator to match.
func (p *Picker) Resize(size fyne.Size) {
	p.size = size
	p.offset = p.sel.Offset(size)
}

func (p *Picker) Size() fyne.Size { return p.size }

// Pick maps offset and remembers the result.
func (p *Picker) Pick(offset fyne.Position) Selection {
	p.sel = Map(offset, p.size)
	p.offset = p.sel.Offset(p.size)
	return p.sel
}

func (p *Picker) Selection() Selection { return p.sel }

// Indicator is the clamped offset of the last pick.
func (p *Picker) Indicator() fyne.Position { return p.offset }
