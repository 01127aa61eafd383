package cli

import (
	"context"
	"fmt"

	"TouchCanvas/internal/config"
	boardnet "TouchCanvas/internal/net"
	"TouchCanvas/internal/ui"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

func newHostCmd() *cobra.Command {
	var (
		port        int
		noAdvertise bool
	)

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Draw and share the canvas with viewers on the local network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)
			if cmd.Flags().Changed("port") {
				if !config.ValidPort(port) {
					return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
				}
				cfg.Network.Port = port
			}

			store := newStore(ctx)
			session := ui.NewSession(app.New(), cfg, store, logger)

			hub := boardnet.NewHub(logger)
			hub.Publish(store.Snapshot())
			store.Subscribe(hub.Publish)
			go func() {
				if err := hub.Serve(ctx, fmt.Sprintf(":%d", cfg.Network.Port)); err != nil {
					logger.Error("host server stopped", "err", err)
					session.SetStatus(fmt.Sprintf("Sharing failed: %v", err))
				}
			}()

			if cfg.Network.Advertise && !noAdvertise {
				server, err := boardnet.Advertise(cfg.Network.Port)
				if err != nil {
					logger.Warn("mDNS advertise failed", "err", err)
				} else {
					defer server.Shutdown()
				}
			}

			link := boardnet.ShareLink(cfg.Network.Scheme, boardnet.GetOutgoingIP(logger), cfg.Network.Port)
			logger.Info("sharing canvas", "link", link)
			session.SetStatus("Share link: " + link)
			session.Run(ctx)
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", boardnet.DefaultPort, "port to accept viewers on")
	cmd.Flags().BoolVar(&noAdvertise, "no-advertise", false, "do not announce the canvas via mDNS")
	return cmd
}
