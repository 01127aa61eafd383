package net

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_touchcanvas._tcp"

// Advertise publishes the host's hub on the local network. Shut the returned
// server down when the session ends.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, []string{"TouchCanvas"})
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse looks for hosts for up to timeout and returns their host:port addresses.
func Browse(ctx context.Context, timeout time.Duration) ([]string, error) {
	entries := make(chan *mdns.ServiceEntry, 16)
	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true

	done := make(chan error, 1)
	go func() { done <- mdns.Query(params) }()

	var addrs []string
	seen := make(map[string]bool)
	collect := func(e *mdns.ServiceEntry) {
		if e.AddrV4 == nil || e.Port == 0 {
			return
		}
		addr := fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port)
		if !seen[addr] {
			seen[addr] = true
			addrs = append(addrs, addr)
		}
	}

	for {
		select {
		case e := <-entries:
			collect(e)
		case err := <-done:
			for {
				select {
				case e := <-entries:
					collect(e)
				default:
					if err != nil {
						return addrs, fmt.Errorf("mdns query: %w", err)
					}
					return addrs, nil
				}
			}
		case <-ctx.Done():
			return addrs, ctx.Err()
		}
	}
}
