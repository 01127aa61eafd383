package export

import (
	"fmt"
	"io"
	"math"

	"TouchCanvas/internal/state"

	"fyne.io/fyne/v2"
	"github.com/jung-kurt/gofpdf"
)

const pageMargin = 24.0 // pt

// WritePDF draws the committed paths, then the active one, onto a single A4
// page scaled to fit canvas. An empty canvas size falls back to the extent
// of the drawn points.
func WritePDF(w io.Writer, s state.DrawingState, canvas fyne.Size) error {
	paths := s.Paths
	if s.CurrentPath != nil {
		paths = append(paths[:len(paths):len(paths)], *s.CurrentPath)
	}
	if canvas.Width <= 0 || canvas.Height <= 0 {
		canvas = extent(paths)
	}

	orientation := "P"
	if canvas.Width > canvas.Height {
		orientation = "L"
	}
	p := gofpdf.New(orientation, "pt", "A4", "")
	p.SetCreator("TouchCanvas", true)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	pw, ph := p.GetPageSize()
	scale := math.Min((pw-2*pageMargin)/float64(canvas.Width), (ph-2*pageMargin)/float64(canvas.Height))
	if math.IsInf(scale, 0) || math.IsNaN(scale) || scale <= 0 {
		scale = 1
	}
	at := func(pos fyne.Position) (float64, float64) {
		return pageMargin + float64(pos.X)*scale, pageMargin + float64(pos.Y)*scale
	}

	for _, path := range paths {
		c := path.Color
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetFillColor(int(c.R), int(c.G), int(c.B))
		p.SetAlpha(float64(c.A)/255, "Normal")
		width := float64(path.BrushSize) * scale
		p.SetLineWidth(width)

		switch len(path.Points) {
		case 0:
		case 1:
			x, y := at(path.Points[0])
			p.Circle(x, y, width/2, "F")
		default:
			for i := 1; i < len(path.Points); i++ {
				x1, y1 := at(path.Points[i-1])
				x2, y2 := at(path.Points[i])
				p.Line(x1, y1, x2, y2)
			}
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func extent(paths []state.Path) fyne.Size {
	var size fyne.Size
	for _, path := range paths {
		half := path.BrushSize / 2
		for _, pt := range path.Points {
			size.Width = max(size.Width, pt.X+half)
			size.Height = max(size.Height, pt.Y+half)
		}
	}
	return size
}
