package ui

import (
	"fmt"
	"io"
	"testing"

	"TouchCanvas/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct{ n int }

func (s *seqIDs) NextID() string {
	s.n++
	return fmt.Sprintf("p%d", s.n)
}

func newTestStore() *state.Store {
	return state.NewStore(state.WithIDSource(&seqIDs{}), state.WithLogger(log.New(io.Discard)))
}

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func bindBoard(store *state.Store, c *CanvasWidget) {
	store.Subscribe(c.ShowSnapshot)
}

func TestCanvasMouseStroke(t *testing.T) {
	test.NewTempApp(t)
	store := newTestStore()
	c := NewCanvasWidget(store)
	bindBoard(store, c)

	c.MouseDown(mouse(1, 1))
	c.Dragged(drag(5, 5))
	c.Dragged(drag(9, 2))
	c.DragEnd()
	c.MouseUp(mouse(9, 2))

	snap := store.Snapshot()
	require.Len(t, snap.Paths, 1)
	assert.Equal(t, []fyne.Position{{X: 1, Y: 1}, {X: 5, Y: 5}, {X: 9, Y: 2}}, snap.Paths[0].Points)
	assert.Equal(t, snap, c.Snapshot())
}

func TestCanvasTouchStrokeStartsOnDrag(t *testing.T) {
	test.NewTempApp(t)
	store := newTestStore()
	c := NewCanvasWidget(store)

	c.Dragged(drag(2, 3))
	assert.True(t, store.Snapshot().Stroking())
	c.Dragged(drag(4, 6))
	c.DragEnd()

	snap := store.Snapshot()
	require.Len(t, snap.Paths, 1)
	assert.Equal(t, []fyne.Position{{X: 2, Y: 3}, {X: 4, Y: 6}}, snap.Paths[0].Points)
}

func TestCanvasClickIsDot(t *testing.T) {
	test.NewTempApp(t)
	store := newTestStore()
	c := NewCanvasWidget(store)
	bindBoard(store, c)

	c.MouseDown(mouse(10, 10))
	c.MouseUp(mouse(10, 10))

	require.Len(t, store.Snapshot().Paths, 1)
	objects := test.WidgetRenderer(c).Objects()
	require.Len(t, objects, 2)
	dot, ok := objects[1].(*canvas.Circle)
	require.True(t, ok)
	assert.Equal(t, fyne.NewSize(state.DefaultBrushSize, state.DefaultBrushSize), dot.Size())
}

func TestCanvasIgnoresSecondaryButton(t *testing.T) {
	test.NewTempApp(t)
	store := newTestStore()
	c := NewCanvasWidget(store)

	e := mouse(1, 1)
	e.Button = desktop.MouseButtonSecondary
	c.MouseDown(e)
	assert.False(t, store.Snapshot().Stroking())
}

func TestCanvasRendersCommittedThenCurrent(t *testing.T) {
	test.NewTempApp(t)
	c := NewCanvasWidget(nil)

	s := state.NewDrawingState()
	s.Paths = []state.Path{{ID: "a", Color: state.Red, BrushSize: 6, Points: []fyne.Position{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	s.CurrentPath = &state.Path{ID: "b", Color: state.Blue, BrushSize: 8, Points: []fyne.Position{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}}
	c.ShowSnapshot(s)

	objects := test.WidgetRenderer(c).Objects()
	// background, 1 segment + 2 dots, 2 segments + 3 dots
	require.Len(t, objects, 9)
	first, ok := objects[1].(*canvas.Line)
	require.True(t, ok)
	assert.Equal(t, float32(6), first.StrokeWidth)
	assert.Equal(t, state.Red, first.StrokeColor)
	last, ok := objects[8].(*canvas.Circle)
	require.True(t, ok)
	assert.Equal(t, state.Blue, last.FillColor)
}

func TestViewerCanvasIsReadOnly(t *testing.T) {
	test.NewTempApp(t)
	c := NewCanvasWidget(nil)
	require.True(t, c.ReadOnly())

	c.MouseDown(mouse(1, 1))
	c.Dragged(drag(2, 2))
	c.DragEnd()
	c.MouseUp(mouse(2, 2))
	assert.Empty(t, c.Snapshot().Paths)
}

func TestCanvasKeepsObjectVisibility(t *testing.T) {
	test.NewTempApp(t)
	c := NewCanvasWidget(newTestStore())
	w := test.NewWindow(c)
	defer w.Close()

	var obj fyne.CanvasObject = c
	obj.Hide()
	assert.False(t, c.Visible())
	obj.Show()
	assert.True(t, c.Visible())

	c.ShowSnapshot(state.NewDrawingState())
	assert.True(t, c.Visible())
}
