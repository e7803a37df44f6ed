package scan

import (
	"errors"
	"net"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	BatchTimeout  = time.Second
	SingleTimeout = 3 * time.Second
)

// DialFunc matches net.DialTimeout so tests can swap the transport out.
type DialFunc func(network, address string, timeout time.Duration) (net.Conn, error)

// Prober resolves a single host/port pair to a terminal state within timeout.
// Implementations must be safe for concurrent use.
type Prober interface {
	Probe(host Host, port int, timeout time.Duration) PortState
}

// ConnectProber performs one full TCP handshake per probe and never retries.
type ConnectProber struct {
	dial DialFunc
}

func NewConnectProber(dial DialFunc) *ConnectProber {
	if dial == nil {
		dial = net.DialTimeout
	}
	return &ConnectProber{
		dial: dial,
	}
}

func (p *ConnectProber) Probe(host Host, port int, timeout time.Duration) PortState {
	conn, err := p.dial("tcp", host.Address(port), timeout)
	if conn != nil {
		defer conn.Close()
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"host":   host.String(),
			"port":   port,
			"reason": closedReason(err),
		}).Debug("Port not usable")
		return PortClosed
	}
	return PortOpen
}

func closedReason(err error) string {
	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "refused"
	case errors.Is(err, syscall.EMFILE), errors.Is(err, syscall.ENFILE):
		return "no socket available"
	}
	return err.Error()
}
