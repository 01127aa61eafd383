package picker

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	size := fyne.NewSize(360, 100)
	tests := []struct {
		name   string
		offset fyne.Position
		want   Selection
	}{
		{"top left", fyne.NewPos(0, 0), Selection{Hue: 0, Saturation: 1}},
		{"bottom right", fyne.NewPos(360, 100), Selection{Hue: 360, Saturation: 0}},
		{"center", fyne.NewPos(180, 50), Selection{Hue: 180, Saturation: 0.5}},
		{"clamped low", fyne.NewPos(-20, -40), Selection{Hue: 0, Saturation: 1}},
		{"clamped high", fyne.NewPos(900, 700), Selection{Hue: 360, Saturation: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.offset, size)
			assert.InDelta(t, tt.want.Hue, got.Hue, 1e-9)
			assert.InDelta(t, tt.want.Saturation, got.Saturation, 1e-9)
		})
	}
}

func TestMapEmptyRect(t *testing.T) {
	got := Map(fyne.NewPos(10, 10), fyne.NewSize(0, 0))
	assert.Equal(t, Selection{Hue: 0, Saturation: 1}, got)
}

func TestSelectionColor(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want color.NRGBA
	}{
		{"red", Selection{Hue: 0, Saturation: 1}, color.NRGBA{R: 255, A: 255}},
		{"red at 360", Selection{Hue: 360, Saturation: 1}, color.NRGBA{R: 255, A: 255}},
		{"green", Selection{Hue: 120, Saturation: 1}, color.NRGBA{G: 255, A: 255}},
		{"blue", Selection{Hue: 240, Saturation: 1}, color.NRGBA{B: 255, A: 255}},
		{"white", Selection{Hue: 200, Saturation: 0}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"pale cyan", Selection{Hue: 180, Saturation: 0.5}, color.NRGBA{R: 128, G: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Color())
		})
	}
}

func TestColorAlphaOverride(t *testing.T) {
	c := Selection{Hue: 0, Saturation: 1}.ColorAlpha(128)
	assert.Equal(t, color.NRGBA{R: 255, A: 128}, c)
}

func TestMapIsDeterministic(t *testing.T) {
	size := fyne.NewSize(300, 200)
	off := fyne.NewPos(123, 45)
	assert.Equal(t, Map(off, size), Map(off, size))
	assert.Equal(t, Map(off, size).Color(), Map(off, size).Color())
}

func TestPickerRemembersLastPick(t *testing.T) {
	p := New(fyne.NewSize(360, 100))
	assert.Equal(t, Initial, p.Selection())
	assert.Equal(t, fyne.NewPos(0, 0), p.Indicator())

	sel := p.Pick(fyne.NewPos(90, 25))
	assert.InDelta(t, 90, sel.Hue, 1e-9)
	assert.InDelta(t, 0.75, sel.Saturation, 1e-9)
	assert.Equal(t, sel, p.Selection())
	assert.Equal(t, fyne.NewPos(90, 25), p.Indicator())

	p.Pick(fyne.NewPos(400, -5))
	assert.Equal(t, fyne.NewPos(360, 0), p.Indicator())
}

func TestPickerResizeKeepsSelection(t *testing.T) {
	p := New(fyne.NewSize(360, 100))
	p.Pick(fyne.NewPos(180, 50))

	p.Resize(fyne.NewSize(720, 200))
	assert.Equal(t, fyne.NewSize(720, 200), p.Size())
	assert.InDelta(t, 180, p.Selection().Hue, 1e-9)
	assert.Equal(t, fyne.NewPos(360, 100), p.Indicator())
}
