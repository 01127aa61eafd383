package state

import (
	"image/color"

	"fyne.io/fyne/v2"
)

const (
	MinBrushSize     float32 = 5
	MaxBrushSize     float32 = 50
	DefaultBrushSize float32 = 10
)

// Path is one stroke. Color and BrushSize are fixed when the stroke starts.
type Path struct {
	ID        string          `json:"id"`
	Color     color.NRGBA     `json:"color"`
	BrushSize float32         `json:"brush_size"`
	Points    []fyne.Position `json:"points"`
}

// DrawingState is an immutable snapshot of the canvas. Observers must treat
// the slices as read-only; the store never writes into them again.
type DrawingState struct {
	SelectedColor     color.NRGBA `json:"selected_color"`
	SelectedBrushSize float32     `json:"selected_brush_size"`
	CurrentPath       *Path       `json:"current_path,omitempty"`
	Paths             []Path      `json:"paths"`
}

// NewDrawingState returns the idle state with an empty canvas.
func NewDrawingState() DrawingState {
	return DrawingState{
		SelectedColor:     Black,
		SelectedBrushSize: DefaultBrushSize,
		Paths:             []Path{},
	}
}

// Stroking reports whether a stroke is in progress.
func (s DrawingState) Stroking() bool {
	return s.CurrentPath != nil
}

// ClampBrushSize limits size to [MinBrushSize, MaxBrushSize]. NaN maps to the minimum.
func ClampBrushSize(size float32) float32 {
	switch {
	case size != size, size < MinBrushSize:
		return MinBrushSize
	case size > MaxBrushSize:
		return MaxBrushSize
	}
	return size
}

var (
	Black   = color.NRGBA{A: 255}
	Blue    = color.NRGBA{B: 255, A: 255}
	Red     = color.NRGBA{R: 255, A: 255}
	Yellow  = color.NRGBA{R: 255, G: 255, A: 255}
	Magenta = color.NRGBA{R: 255, B: 255, A: 255}
	Cyan    = color.NRGBA{G: 255, B: 255, A: 255}
	Green   = color.NRGBA{G: 255, A: 255}
)

// Palette is the fixed quick-select list shown next to the canvas.
var Palette = []color.NRGBA{Black, Blue, Red, Yellow, Magenta, Cyan, Green}
