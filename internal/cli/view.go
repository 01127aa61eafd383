package cli

import (
	"context"
	"fmt"
	"time"

	boardnet "TouchCanvas/internal/net"
	"TouchCanvas/internal/ui"

	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [link|host:port]",
		Short: "Watch a shared canvas",
		Long:  "Opens a read-only window onto a host's canvas. Without an address the first host found via mDNS is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			var target string
			if len(args) == 1 {
				target = args[0]
			} else {
				addr, err := discover(ctx, time.Duration(cfg.Network.BrowseSeconds)*time.Second, logger)
				if err != nil {
					return err
				}
				target = addr
			}
			url, err := boardnet.ParseLink(cfg.Network.Scheme, target)
			if err != nil {
				return fmt.Errorf("invalid address %q: %w", target, err)
			}

			session := ui.NewSession(app.New(), cfg, nil, logger)
			go func() {
				session.SetStatus("Connecting to " + url)
				v, err := boardnet.Dial(ctx, url, logger)
				if err != nil {
					session.SetStatus(fmt.Sprintf("Connection failed: %v", err))
					return
				}
				defer v.Close()
				session.SetStatus("Connected to " + url)
				if err := v.Run(ctx, session.ShowRemote); err != nil {
					logger.Warn("viewer stopped", "err", err)
					session.SetStatus(fmt.Sprintf("Disconnected from host: %v", err))
					return
				}
				session.SetStatus("Host closed the canvas")
			}()
			session.Run(ctx)
			return nil
		},
	}
}

func discover(ctx context.Context, timeout time.Duration, logger *log.Logger) (string, error) {
	logger.Info("looking for hosts", "timeout", timeout)
	addrs, err := boardnet.Browse(ctx, timeout)
	if err != nil && len(addrs) == 0 {
		return "", fmt.Errorf("discover hosts: %w", err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("no host found on the local network; pass an address")
	}
	if len(addrs) > 1 {
		logger.Info("several hosts found, using the first", "hosts", addrs)
	}
	return addrs[0], nil
}
