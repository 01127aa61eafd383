package net

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"TouchCanvas/internal/state"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Hub is used by the HOST to push canvas snapshots to every connected viewer.
type Hub struct {
	log      *log.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	peers map[*peer]struct{}
	last  []byte

	// Publish only parks the newest snapshot here; encodeLoop does the JSON
	// work off the caller's goroutine and skips snapshots it never got to.
	pendMu   sync.Mutex
	pending  *state.DrawingState
	wake     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

// peer holds at most one pending frame. A newer snapshot replaces an unsent
// one, so a slow viewer skips ahead instead of queueing.
type peer struct {
	conn *websocket.Conn
	slot chan []byte
	done chan struct{}
}

func NewHub(logger *log.Logger) *Hub {
	h := &Hub{
		log:   logger,
		peers: make(map[*peer]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: sameOrigin,
		},
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
	}
	go h.encodeLoop()
	return h
}

// sameOrigin accepts native clients, which send no Origin, and pages served
// by the host itself. Other web pages on the LAN are refused.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// Publish queues s for every viewer and returns at once. Only the newest
// queued snapshot is encoded and sent.
func (h *Hub) Publish(s state.DrawingState) {
	h.pendMu.Lock()
	h.pending = &s
	h.pendMu.Unlock()
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

func (h *Hub) encodeLoop() {
	for {
		select {
		case <-h.wake:
		case <-h.stop:
			return
		}
		h.pendMu.Lock()
		snap := h.pending
		h.pending = nil
		h.pendMu.Unlock()
		if snap == nil {
			continue
		}

		data, err := encodeSnapshot(*snap)
		if err != nil {
			h.log.Error("encode snapshot", "err", err)
			continue
		}
		h.mu.Lock()
		h.last = data
		for p := range h.peers {
			p.offer(data)
		}
		h.mu.Unlock()
	}
}

// Peers returns the number of connected viewers.
func (h *Hub) Peers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.peers)
}

// ServeHTTP upgrades the request and serves the viewer until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	p := &peer{conn: conn, slot: make(chan []byte, 1), done: make(chan struct{})}
	h.add(p)
	defer h.remove(p)

	go p.writeLoop(h.log)
	// Viewers never send frames; reading only surfaces close and ping handling.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			h.log.Info("viewer disconnected", "remote", conn.RemoteAddr().String(), "err", err)
			return
		}
	}
}

func (h *Hub) add(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p] = struct{}{}
	if h.last != nil {
		p.offer(h.last)
	}
	h.log.Info("viewer connected", "remote", p.conn.RemoteAddr().String(), "peers", len(h.peers))
}

func (h *Hub) remove(p *peer) {
	h.mu.Lock()
	_, ok := h.peers[p]
	delete(h.peers, p)
	h.mu.Unlock()
	if ok {
		close(p.done)
		p.conn.Close()
	}
}

// Close stops the encoder and disconnects every viewer.
func (h *Hub) Close() {
	h.stopOnce.Do(func() { close(h.stop) })
	h.mu.Lock()
	peers := make([]*peer, 0, len(h.peers))
	for p := range h.peers {
		peers = append(peers, p)
	}
	h.mu.Unlock()
	for _, p := range peers {
		h.remove(p)
	}
}

// Serve listens on addr until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(SocketPath, h)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		h.Close()
	}()

	h.log.Info("host listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}

// offer must be called with the hub lock held; the hub is the only sender.
func (p *peer) offer(data []byte) {
	select {
	case p.slot <- data:
		return
	default:
	}
	select {
	case <-p.slot:
	default:
	}
	p.slot <- data
}

func (p *peer) writeLoop(logger *log.Logger) {
	for {
		select {
		case data := <-p.slot:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Warn("send snapshot", "remote", p.conn.RemoteAddr().String(), "err", err)
				p.conn.Close()
				return
			}
		case <-p.done:
			return
		}
	}
}
