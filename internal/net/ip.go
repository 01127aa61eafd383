package net

import (
	"net"

	"github.com/charmbracelet/log"
)

// GetOutgoingIP finds the preferred local IP address for the host to share.
func GetOutgoingIP(logger *log.Logger) string {
	// UDP dial sends nothing; it only asks the kernel which route it would use.
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return localIPFallback(logger)
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// localIPFallback is used on networks without internet access.
func localIPFallback(logger *log.Logger) string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		logger.Warn("list interface addresses", "err", err)
		return "127.0.0.1"
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	logger.Warn("no suitable local IP found, share link will use loopback")
	return "127.0.0.1"
}
