// Package config loads the optional TOML settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"TouchCanvas/internal/net"
	"TouchCanvas/internal/state"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  Window  `toml:"window"`
	Brush   Brush   `toml:"brush"`
	Network Network `toml:"network"`
}

type Window struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type Brush struct {
	Size  float32 `toml:"size"`
	Color int     `toml:"color"` // index into state.Palette
}

type Network struct {
	Port          int    `toml:"port"`
	Scheme        string `toml:"scheme"`
	Advertise     bool   `toml:"advertise"`
	BrowseSeconds int    `toml:"browse_seconds"`
}

func Default() Config {
	return Config{
		Window:  Window{Title: "TouchCanvas", Width: 1024, Height: 768},
		Brush:   Brush{Size: state.DefaultBrushSize},
		Network: Network{Port: net.DefaultPort, Scheme: net.DefaultScheme, Advertise: true, BrowseSeconds: 3},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config file %s not found: %w", path, err)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// ValidPort reports whether port can be listened on and advertised.
func ValidPort(port int) bool {
	return port > 0 && port <= 65535
}

func (c *Config) normalize() {
	def := Default()
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	c.Brush.Size = state.ClampBrushSize(c.Brush.Size)
	if c.Brush.Color < 0 || c.Brush.Color >= len(state.Palette) {
		c.Brush.Color = 0
	}
	if !ValidPort(c.Network.Port) {
		c.Network.Port = def.Network.Port
	}
	if c.Network.Scheme == "" {
		c.Network.Scheme = def.Network.Scheme
	}
	if c.Network.BrowseSeconds <= 0 {
		c.Network.BrowseSeconds = def.Network.BrowseSeconds
	}
}
