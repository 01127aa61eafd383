package state

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Action is a single transition of the drawing state machine. The set is
// closed; only the types in this file implement it.
type Action interface {
	// apply returns the next state and whether anything changed.
	apply(s DrawingState, ids IDSource) (DrawingState, bool)
	name() string
}

// StartPath begins a stroke. An uncommitted stroke in progress is dropped.
type StartPath struct{}

// AppendPoint adds an offset to the stroke in progress.
type AppendPoint struct {
	Offset fyne.Position
}

// EndPath commits the stroke in progress, even if it has no points.
type EndPath struct{}

type SelectColor struct {
	Color color.NRGBA
}

// SetBrushSize sets the size for future strokes, clamped to [MinBrushSize, MaxBrushSize].
type SetBrushSize struct {
	Size float32
}

// ClearCanvas drops every path. Color and brush selection survive.
type ClearCanvas struct{}

func (StartPath) name() string    { return "start_path" }
func (AppendPoint) name() string  { return "append_point" }
func (EndPath) name() string      { return "end_path" }
func (SelectColor) name() string  { return "select_color" }
func (SetBrushSize) name() string { return "set_brush_size" }
func (ClearCanvas) name() string  { return "clear_canvas" }

func (StartPath) apply(s DrawingState, ids IDSource) (DrawingState, bool) {
	s.CurrentPath = &Path{
		ID:        ids.NextID(),
		Color:     s.SelectedColor,
		BrushSize: s.SelectedBrushSize,
		Points:    []fyne.Position{},
	}
	return s, true
}

func (a AppendPoint) apply(s DrawingState, _ IDSource) (DrawingState, bool) {
	if s.CurrentPath == nil {
		return s, false
	}
	next := *s.CurrentPath
	next.Points = appendCopy(next.Points, a.Offset)
	s.CurrentPath = &next
	return s, true
}

func (EndPath) apply(s DrawingState, _ IDSource) (DrawingState, bool) {
	if s.CurrentPath == nil {
		return s, false
	}
	s.Paths = appendCopy(s.Paths, *s.CurrentPath)
	s.CurrentPath = nil
	return s, true
}

func (a SelectColor) apply(s DrawingState, _ IDSource) (DrawingState, bool) {
	if s.SelectedColor == a.Color {
		return s, false
	}
	s.SelectedColor = a.Color
	return s, true
}

func (a SetBrushSize) apply(s DrawingState, _ IDSource) (DrawingState, bool) {
	size := ClampBrushSize(a.Size)
	if s.SelectedBrushSize == size {
		return s, false
	}
	s.SelectedBrushSize = size
	return s, true
}

func (ClearCanvas) apply(s DrawingState, _ IDSource) (DrawingState, bool) {
	if s.CurrentPath == nil && len(s.Paths) == 0 {
		return s, false
	}
	s.CurrentPath = nil
	s.Paths = []Path{}
	return s, true
}

// appendCopy always allocates, so earlier snapshots sharing the old backing
// array never observe the new element.
func appendCopy[T any](list []T, v T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, v)
}
