package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"TouchCanvas/internal/state"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// Viewer is the CLIENT side: a read-only connection to a host's hub.
type Viewer struct {
	conn *websocket.Conn
	log  *log.Logger
}

// Dial connects to the hub at url (see ParseLink).
func Dial(ctx context.Context, url string, logger *log.Logger) (*Viewer, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	logger.Info("connected to host", "url", url, "local", conn.LocalAddr().String())
	return &Viewer{conn: conn, log: logger}, nil
}

// Run calls fn with every snapshot the host sends. It returns nil when ctx
// is cancelled and the read error when the host goes away.
func (v *Viewer) Run(ctx context.Context, fn func(state.DrawingState)) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			v.conn.Close()
		case <-stop:
		}
	}()

	for {
		_, data, err := v.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			var ce *websocket.CloseError
			if errors.As(err, &ce) && ce.Code == websocket.CloseNormalClosure {
				return nil
			}
			return fmt.Errorf("read snapshot: %w", err)
		}
		var f Frame
		if err := json.Unmarshal(data, &f); err != nil {
			v.log.Warn("dropping malformed frame", "err", err)
			continue
		}
		if f.Type != FrameSnapshot {
			v.log.Debug("ignoring frame", "type", f.Type)
			continue
		}
		fn(f.State)
	}
}

func (v *Viewer) Close() error {
	return v.conn.Close()
}
