package ui

import (
	"image/color"

	"TouchCanvas/internal/picker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const indicatorRadius = 10

// pickerArea is the hue/saturation plane of the custom color dialog.
type pickerArea struct {
	widget.BaseWidget
	picker   *picker.Picker
	OnPicked func(picker.Selection)
}

var _ fyne.Tappable = (*pickerArea)(nil)
var _ fyne.Draggable = (*pickerArea)(nil)

func newPickerArea() *pickerArea {
	a := &pickerArea{picker: picker.New(fyne.NewSize(280, 200))}
	a.ExtendBaseWidget(a)
	return a
}

func (a *pickerArea) Resize(size fyne.Size) {
	a.picker.Resize(size)
	a.BaseWidget.Resize(size)
}

func (a *pickerArea) Tapped(e *fyne.PointEvent) { a.pick(e.Position) }
func (a *pickerArea) Dragged(e *fyne.DragEvent) { a.pick(e.Position) }
func (a *pickerArea) DragEnd()                  {}

func (a *pickerArea) pick(pos fyne.Position) {
	sel := a.picker.Pick(pos)
	a.Refresh()
	if a.OnPicked != nil {
		a.OnPicked(sel)
	}
}

func (a *pickerArea) CreateRenderer() fyne.WidgetRenderer {
	// Raster pixels and widget units differ by the canvas scale; the ratio
	// of offset to size does not.
	plane := canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		return picker.Map(fyne.NewPos(float32(x), float32(y)), fyne.NewSize(float32(w), float32(h))).Color()
	})
	indicator := canvas.NewCircle(color.Transparent)
	indicator.StrokeColor = color.Black
	indicator.StrokeWidth = 2
	r := &pickerRenderer{area: a, plane: plane, indicator: indicator}
	r.Refresh()
	return r
}

type pickerRenderer struct {
	area      *pickerArea
	plane     *canvas.Raster
	indicator *canvas.Circle
}

func (r *pickerRenderer) Layout(size fyne.Size) {
	r.plane.Resize(size)
	r.placeIndicator()
}

func (r *pickerRenderer) placeIndicator() {
	pos := r.area.picker.Indicator()
	r.indicator.Resize(fyne.NewSize(2*indicatorRadius, 2*indicatorRadius))
	r.indicator.Move(fyne.NewPos(pos.X-indicatorRadius, pos.Y-indicatorRadius))
}

func (r *pickerRenderer) Refresh() {
	r.placeIndicator()
	r.indicator.Refresh()
}

func (r *pickerRenderer) MinSize() fyne.Size           { return fyne.NewSize(280, 200) }
func (r *pickerRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.plane, r.indicator} }
func (r *pickerRenderer) Destroy()                     {}

// ShowColorPicker opens the custom color dialog. onSelect receives the
// picked color only when the user confirms.
func ShowColorPicker(parent fyne.Window, onSelect func(color.NRGBA)) {
	area := newPickerArea()
	preview := canvas.NewRectangle(area.picker.Selection().Color())
	preview.SetMinSize(fyne.NewSize(40, 40))
	area.OnPicked = func(sel picker.Selection) {
		preview.FillColor = sel.Color()
		preview.Refresh()
	}

	content := container.NewBorder(nil, preview, nil, nil, area)
	d := dialog.NewCustomConfirm("Pick a Color", "Select Color", "Cancel", content, func(ok bool) {
		if ok {
			onSelect(area.picker.Selection().Color())
		}
	}, parent)
	d.Show()
}
