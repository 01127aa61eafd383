// Package ui is the Fyne front end: the drawing surface, the palette and
// brush controls, and the custom color dialog.
package ui

import (
	"context"

	"TouchCanvas/internal/config"
	"TouchCanvas/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
)

// Session is one window bound to one store. A session without a store shows
// a remote canvas and ignores drawing input.
type Session struct {
	App      fyne.App
	Window   fyne.Window
	Board    *CanvasWidget
	Controls *Controls

	store       *state.Store
	status      *widget.Label
	log         *log.Logger
	unsubscribe func()
}

func NewSession(a fyne.App, cfg config.Config, store *state.Store, logger *log.Logger) *Session {
	s := &Session{
		App:    a,
		store:  store,
		status: widget.NewLabel("Ready"),
		log:    logger,
	}
	s.Window = a.NewWindow(cfg.Window.Title)
	s.Window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	s.Board = NewCanvasWidget(store)

	var bottom fyne.CanvasObject
	if store != nil {
		s.Controls = NewControls(store, s.showColorPicker, s.showExportDialog)
		s.unsubscribe = store.Subscribe(func(d state.DrawingState) {
			s.Board.ShowSnapshot(d)
			s.Controls.Show(d)
		})
		bottom = container.NewVBox(s.Controls.CanvasObject(), s.status)
	} else {
		export := widget.NewButton("Export PDF", s.showExportDialog)
		bottom = container.NewBorder(nil, nil, nil, export, s.status)
	}

	s.Window.SetContent(container.NewBorder(nil, bottom, nil, nil, s.Board))
	s.Window.SetOnClosed(s.Close)
	return s
}

func (s *Session) showColorPicker() {
	ShowColorPicker(s.Window, s.store.SelectColor)
}

// SetStatus is safe to call from any goroutine.
func (s *Session) SetStatus(text string) {
	fyne.Do(func() { s.status.SetText(text) })
}

// ShowRemote renders a snapshot received from a host. Safe from any goroutine.
func (s *Session) ShowRemote(d state.DrawingState) {
	fyne.Do(func() { s.Board.ShowSnapshot(d) })
}

// Close detaches the session from its store.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Run shows the window and blocks until it closes or ctx is cancelled.
func (s *Session) Run(ctx context.Context) {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			s.log.Info("shutting down")
			fyne.Do(s.App.Quit)
		case <-stop:
		}
	}()
	s.Window.ShowAndRun()
}
