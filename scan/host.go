package scan

import (
	"net"
	"strconv"
)

// Host is an already validated IPv4 scan target. It is never mutated once a scan starts.
type Host struct {
	IP net.IP
}

func NewHost(ip net.IP) Host {
	return Host{IP: ip.To4()}
}

func (h Host) Address(port int) string {
	return net.JoinHostPort(h.IP.String(), strconv.Itoa(port))
}

func (h Host) String() string {
	return h.IP.String()
}

type PortState uint8

const (
	// PortClosed covers refused, filtered and timed out ports alike.
	PortClosed PortState = iota
	PortOpen
)

func (s PortState) String() string {
	if s == PortOpen {
		return "OPEN"
	}
	return "CLOSED"
}
