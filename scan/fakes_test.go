package scan

import (
	"errors"
	"net"
	"sync/atomic"
	"time"
)

type fakeProber struct {
	open  map[int]bool
	calls atomic.Int64
}

func newFakeProber(open ...int) *fakeProber {
	p := &fakeProber{open: map[int]bool{}}
	for _, port := range open {
		p.open[port] = true
	}
	return p
}

func (p *fakeProber) Probe(host Host, port int, timeout time.Duration) PortState {
	p.calls.Add(1)
	if p.open[port] {
		return PortOpen
	}
	return PortClosed
}

// hangingProber never gets an answer and gives up once the deadline passes.
type hangingProber struct{}

func (hangingProber) Probe(host Host, port int, timeout time.Duration) PortState {
	time.Sleep(timeout)
	return PortClosed
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

// countingDialer hands out fake connections and tracks how many are still open.
type countingDialer struct {
	open      map[int]bool
	leaky     map[int]bool
	live      atomic.Int64
	dialled   atomic.Int64
	exhausted bool
}

func (d *countingDialer) Dial(network, address string, timeout time.Duration) (net.Conn, error) {
	d.dialled.Add(1)
	if d.exhausted {
		return nil, errors.New("socket: too many open files")
	}
	_, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return nil, err
	}
	port, err := ParsePort(portStr)
	if err != nil {
		return nil, err
	}
	switch {
	case d.open[port]:
		d.live.Add(1)
		return &countedConn{d: d}, nil
	case d.leaky[port]:
		// half-established connection returned alongside an error
		d.live.Add(1)
		return &countedConn{d: d}, timeoutError{}
	}
	return nil, errors.New("connect: connection refused")
}

type countedConn struct {
	net.Conn
	d      *countingDialer
	closed atomic.Bool
}

func (c *countedConn) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		c.d.live.Add(-1)
	}
	return nil
}
