package ui

import (
	"image/color"
	"sync"

	"TouchCanvas/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CanvasWidget is the drawing surface. It turns pointer input into store
// actions and renders whatever snapshot it was last shown. Without a store
// it is a read-only view of a remote canvas.
type CanvasWidget struct {
	widget.BaseWidget
	store *state.Store

	mu   sync.RWMutex
	snap state.DrawingState
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)

func NewCanvasWidget(store *state.Store) *CanvasWidget {
	c := &CanvasWidget{store: store, snap: state.NewDrawingState()}
	if store != nil {
		c.snap = store.Snapshot()
	}
	c.ExtendBaseWidget(c)
	return c
}

// ReadOnly reports whether input is ignored.
func (c *CanvasWidget) ReadOnly() bool { return c.store == nil }

// ShowSnapshot replaces the rendered snapshot. Call it on the UI goroutine.
func (c *CanvasWidget) ShowSnapshot(s state.DrawingState) {
	c.mu.Lock()
	c.snap = s
	c.mu.Unlock()
	c.Refresh()
}

func (c *CanvasWidget) Snapshot() state.DrawingState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

func (c *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	if c.store == nil || e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.store.StartPath()
	c.store.AppendPoint(e.Position)
}

func (c *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	if c.store == nil || e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.store.EndPath()
}

// Dragged starts a stroke itself on touch devices, where no MouseDown arrives.
func (c *CanvasWidget) Dragged(e *fyne.DragEvent) {
	if c.store == nil {
		return
	}
	if !c.store.Snapshot().Stroking() {
		c.store.StartPath()
	}
	c.store.AppendPoint(e.Position)
}

func (c *CanvasWidget) DragEnd() {
	if c.store == nil {
		return
	}
	c.store.EndPath()
}

func (c *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasRenderer{board: c, background: canvas.NewRectangle(color.White)}
	r.rebuild()
	return r
}

type canvasRenderer struct {
	board      *CanvasWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *canvasRenderer) rebuild() {
	snap := r.board.Snapshot()
	objects := []fyne.CanvasObject{r.background}
	for _, p := range snap.Paths {
		objects = append(objects, pathObjects(p)...)
	}
	if snap.CurrentPath != nil {
		objects = append(objects, pathObjects(*snap.CurrentPath)...)
	}
	r.objects = objects
}

// pathObjects draws p as line segments with a round dot on every point, so
// wide strokes have no gaps at the joints and a tap shows up as a dot.
func pathObjects(p state.Path) []fyne.CanvasObject {
	if len(p.Points) == 0 {
		return nil
	}
	objects := make([]fyne.CanvasObject, 0, 2*len(p.Points)-1)
	for i := 1; i < len(p.Points); i++ {
		segment := canvas.NewLine(p.Color)
		segment.StrokeWidth = p.BrushSize
		segment.Position1 = p.Points[i-1]
		segment.Position2 = p.Points[i]
		objects = append(objects, segment)
	}
	for _, pt := range p.Points {
		dot := canvas.NewCircle(p.Color)
		dot.Resize(fyne.NewSize(p.BrushSize, p.BrushSize))
		dot.Move(fyne.NewPos(pt.X-p.BrushSize/2, pt.Y-p.BrushSize/2))
		objects = append(objects, dot)
	}
	return objects
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *canvasRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *canvasRenderer) Destroy() {}
