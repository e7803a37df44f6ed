package scan

import (
	"fmt"
	"io"
	"net"
	"strings"
)

// ParseHost accepts a dotted-decimal IPv4 address. Host names and IPv6 are rejected.
func ParseHost(s string) (Host, error) {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.To4() == nil {
		return Host{}, fmt.Errorf("%w: '%s'", ErrInvalidAddress, s)
	}
	return NewHost(ip), nil
}

// Targets walks every IPv4 address of a CIDR block, network and broadcast
// addresses included, or yields a single address once.
type Targets struct {
	ip    net.IP
	ipnet *net.IPNet
	done  bool
}

func NewTargets(target string) (*Targets, error) {
	if !strings.Contains(target, "/") {
		host, err := ParseHost(target)
		if err != nil {
			return nil, err
		}
		return &Targets{ip: host.IP}, nil
	}

	ip, ipnet, err := net.ParseCIDR(target)
	if err != nil || ip.To4() == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidAddress, target)
	}
	return &Targets{
		ip:    ip.To4().Mask(ipnet.Mask),
		ipnet: ipnet,
	}, nil
}

// Peek returns the address the next call to Next will yield.
func (t *Targets) Peek() (Host, error) {
	if t.done || (t.ipnet != nil && !t.ipnet.Contains(t.ip)) {
		return Host{}, io.EOF
	}
	ip := make(net.IP, len(t.ip))
	copy(ip, t.ip)
	return NewHost(ip), nil
}

func (t *Targets) Next() (Host, error) {
	host, err := t.Peek()
	if err != nil {
		return host, err
	}
	if t.ipnet == nil {
		t.done = true
		return host, nil
	}
	if t.increment() {
		// wrapped past 255.255.255.255
		t.done = true
	}
	return host, nil
}

func (t *Targets) increment() bool {
	for j := len(t.ip) - 1; j >= 0; j-- {
		t.ip[j]++
		if t.ip[j] > 0 {
			return false
		}
	}
	return true
}
