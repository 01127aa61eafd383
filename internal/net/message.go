package net

import (
	"encoding/json"
	"fmt"
	"strings"

	"TouchCanvas/internal/state"
)

const (
	// DefaultScheme prefixes share links handed to viewers.
	DefaultScheme = "touchcanvas://"
	DefaultPort   = 8888

	// SocketPath is where the hub accepts websocket upgrades.
	SocketPath = "/ws"

	FrameSnapshot = "snapshot"
)

// Frame is one websocket text message from host to viewer.
type Frame struct {
	Type  string             `json:"type"`
	State state.DrawingState `json:"state"`
}

func encodeSnapshot(s state.DrawingState) ([]byte, error) {
	return json.Marshal(Frame{Type: FrameSnapshot, State: s})
}

// ShareLink builds the link a viewer is started with.
func ShareLink(scheme, ip string, port int) string {
	return fmt.Sprintf("%s%s:%d", scheme, ip, port)
}

// ParseLink turns a share link, a ws:// URL or a bare host:port into the
// websocket URL to dial.
func ParseLink(scheme, link string) (string, error) {
	link = strings.TrimSpace(link)
	switch {
	case link == "":
		return "", fmt.Errorf("empty address")
	case strings.HasPrefix(link, "ws://"), strings.HasPrefix(link, "wss://"):
		return link, nil
	case scheme != "" && strings.HasPrefix(link, scheme):
		link = strings.TrimPrefix(link, scheme)
	}
	link = strings.TrimSuffix(link, "/")
	if !strings.Contains(link, ":") {
		link = fmt.Sprintf("%s:%d", link, DefaultPort)
	}
	return "ws://" + link + SocketPath, nil
}
