package ui

import (
	"fmt"
	"image/color"

	"TouchCanvas/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const swatchSize = 32

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	Selected bool
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// SetSelected highlights the swatch with a thicker ring.
func (s *colorSwatch) SetSelected(selected bool) {
	if s.Selected == selected {
		return
	}
	s.Selected = selected
	s.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	r := &swatchRenderer{swatch: s, dot: canvas.NewCircle(s.Color)}
	r.Refresh()
	return r
}

type swatchRenderer struct {
	swatch *colorSwatch
	dot    *canvas.Circle
}

func (r *swatchRenderer) Refresh() {
	r.dot.FillColor = r.swatch.Color
	r.dot.StrokeColor = color.Gray{Y: 150}
	r.dot.StrokeWidth = 1
	if r.swatch.Selected {
		r.dot.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.dot.StrokeWidth = 3
	}
	r.dot.Refresh()
}

func (r *swatchRenderer) Layout(size fyne.Size)        { r.dot.Resize(size) }
func (r *swatchRenderer) MinSize() fyne.Size           { return fyne.NewSize(swatchSize, swatchSize) }
func (r *swatchRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.dot} }
func (r *swatchRenderer) Destroy()                     {}

// Controls is the palette, brush slider and canvas actions below the board.
type Controls struct {
	store *state.Store

	swatches  []*colorSwatch
	custom    *widget.Button
	sizeLabel *widget.Label
	slider    *widget.Slider
	clear     *widget.Button
	export    *widget.Button
}

// NewControls binds the widgets to store. onCustom opens the color picker,
// onExport the PDF save dialog.
func NewControls(store *state.Store, onCustom, onExport func()) *Controls {
	c := &Controls{store: store}

	for _, col := range state.Palette {
		c.swatches = append(c.swatches, newColorSwatch(col, store.SelectColor))
	}
	c.custom = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), onCustom)
	c.export = widget.NewButtonWithIcon("Export PDF", theme.DocumentSaveIcon(), onExport)
	c.clear = widget.NewButtonWithIcon("Clear Canvas", theme.DeleteIcon(), store.ClearCanvas)

	c.sizeLabel = widget.NewLabel("")
	c.slider = widget.NewSlider(float64(state.MinBrushSize), float64(state.MaxBrushSize))
	c.slider.Step = 1
	c.slider.OnChanged = func(v float64) {
		store.SetBrushSize(float32(v))
	}

	c.Show(store.Snapshot())
	return c
}

// Show reflects the selection in s. Call it on the UI goroutine.
func (c *Controls) Show(s state.DrawingState) {
	for _, sw := range c.swatches {
		sw.SetSelected(sw.Color == s.SelectedColor)
	}
	c.sizeLabel.SetText(fmt.Sprintf("Brush Size: %d", int(s.SelectedBrushSize)))
	if c.slider.Value != float64(s.SelectedBrushSize) {
		c.slider.SetValue(float64(s.SelectedBrushSize))
	}
}

func (c *Controls) CanvasObject() fyne.CanvasObject {
	palette := container.NewHBox(c.custom)
	for _, sw := range c.swatches {
		palette.Add(sw)
	}
	return container.NewVBox(
		container.NewCenter(palette),
		c.sizeLabel,
		c.slider,
		container.NewHBox(layout.NewSpacer(), c.clear, c.export, layout.NewSpacer()),
	)
}
