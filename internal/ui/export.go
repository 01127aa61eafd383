package ui

import (
	"fmt"

	"TouchCanvas/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// exportPDF writes the board's current snapshot to writer and closes it.
func (s *Session) exportPDF(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			s.log.Error("close export file", "err", err)
		}
	}()

	snap := s.Board.Snapshot()
	if err := export.WritePDF(writer, snap, s.Board.Size()); err != nil {
		s.log.Error("export pdf", "uri", writer.URI().String(), "err", err)
		s.SetStatus("Export failed")
		return
	}
	s.log.Info("exported pdf", "uri", writer.URI().String(), "paths", len(snap.Paths))
	s.SetStatus(fmt.Sprintf("Exported %d strokes", len(snap.Paths)))
}

func (s *Session) showExportDialog() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			s.log.Error("save dialog", "err", err)
			s.SetStatus("Export failed")
			return
		}
		if writer == nil {
			return
		}
		s.exportPDF(writer)
	}, s.Window)
	d.SetFileName("canvas.pdf")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}
