// Package state holds the drawing state machine: the stroke in progress, the
// committed stroke history and the current color and brush selection.
//
// A Store is owned by one drawing session. Input handlers feed it actions,
// renderers subscribe to the snapshots it publishes after every change.
package state

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/log"
)

// Store owns a DrawingState and applies actions to it one at a time.
type Store struct {
	mu    sync.RWMutex
	state DrawingState
	ids   IDSource
	log   *log.Logger

	subMu   sync.Mutex
	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(DrawingState)
}

// Option configures a Store at construction.
type Option func(*Store)

// WithIDSource replaces the default SiteClock.
func WithIDSource(ids IDSource) Option { return func(s *Store) { s.ids = ids } }

func WithLogger(l *log.Logger) Option { return func(s *Store) { s.log = l } }

// WithInitialSelection seeds the selected color and brush size.
func WithInitialSelection(c color.NRGBA, size float32) Option {
	return func(s *Store) {
		s.state.SelectedColor = c
		s.state.SelectedBrushSize = ClampBrushSize(size)
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{state: NewDrawingState()}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewSiteClock()
	}
	if s.log == nil {
		s.log = log.Default()
	}
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() DrawingState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a and, if the state changed, notifies subscribers with the
// new snapshot. Actions that make no sense in the current state are ignored.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	next, changed := a.apply(s.state, s.ids)
	if changed {
		s.state = next
	}
	s.mu.Unlock()

	if !changed {
		s.log.Debug("ignored action", "action", a.name(), "stroking", next.Stroking())
		return
	}
	if _, ok := a.(AppendPoint); !ok {
		s.log.Debug("applied action", "action", a.name(), "paths", len(next.Paths), "stroking", next.Stroking())
	}
	s.publish(next)
}

// Subscribe registers fn to receive every new snapshot. Callbacks run on the
// dispatching goroutine, in registration order. The returned func removes fn.
func (s *Store) Subscribe(fn func(DrawingState)) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) publish(snap DrawingState) {
	s.subMu.Lock()
	subs := s.subs
	s.subMu.Unlock()
	for _, sub := range subs {
		sub.fn(snap)
	}
}

func (s *Store) StartPath()                  { s.Dispatch(StartPath{}) }
func (s *Store) AppendPoint(p fyne.Position) { s.Dispatch(AppendPoint{Offset: p}) }
func (s *Store) EndPath()                    { s.Dispatch(EndPath{}) }
func (s *Store) SelectColor(c color.NRGBA)   { s.Dispatch(SelectColor{Color: c}) }
func (s *Store) SetBrushSize(size float32)   { s.Dispatch(SetBrushSize{Size: size}) }
func (s *Store) ClearCanvas()                { s.Dispatch(ClearCanvas{}) }
