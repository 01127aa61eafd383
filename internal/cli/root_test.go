package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"TouchCanvas/internal/config"
	"TouchCanvas/internal/state"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, log.Default(), loggerFromContext(ctx))
	assert.Equal(t, config.Default(), configFromContext(ctx))

	l := log.New(io.Discard)
	cfg := config.Default()
	cfg.Brush.Color = 3
	ctx = withConfig(withLogger(ctx, l), cfg)
	assert.Same(t, l, loggerFromContext(ctx))
	assert.Equal(t, cfg, configFromContext(ctx))
}

func TestNewStoreUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Brush.Color = 2
	cfg.Brush.Size = 25
	ctx := withConfig(withLogger(context.Background(), log.New(io.Discard)), cfg)

	snap := newStore(ctx).Snapshot()
	assert.Equal(t, state.Red, snap.SelectedColor)
	assert.Equal(t, float32(25), snap.SelectedBrushSize)
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"host", "view"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	for _, flag := range []string{"verbose", "config"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "persistent flag --%s", flag)
	}
	host, _, err := root.Find([]string{"host"})
	require.NoError(t, err)
	assert.NotNil(t, host.Flags().Lookup("port"))
}

func TestCommandErrorsBeforeOpeningWindow(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing config", []string{"--config", missing, "view", "127.0.0.1:1"}, "not found"},
		{"too many view args", []string{"view", "a", "b"}, ""},
		{"root takes no args", []string{"extra"}, ""},
		{"host port zero", []string{"host", "-p", "0"}, "invalid port 0"},
		{"host port too large", []string{"host", "--port", "70000"}, "invalid port 70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(tt.args)
			root.SetOut(io.Discard)
			root.SetErr(io.Discard)
			err := root.ExecuteContext(context.Background())
			require.Error(t, err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
