package scan

import (
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/gopacket/macs"
	"github.com/mostlygeek/arp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// latencyPort is dialled to see whether a host answers at all. A refusal counts as up.
const latencyPort = 1

type Device struct {
	Host         Host
	Latency      time.Duration
	MAC          string
	Manufacturer string
	Name         string
}

func (d Device) IsUp() bool {
	return d.Latency > -1
}

func (d Device) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Discovery results for host %s\n", d.Host)

	status := "DOWN"
	if d.IsUp() {
		status = "UP"
	}
	fmt.Fprintf(&b, "\t%s %s\n", pad("Status:", 24), status)

	if d.IsUp() {
		fmt.Fprintf(&b, "\t%s %s\n", pad("Latency:", 24), d.Latency.String())
	}
	if d.MAC != "" {
		fmt.Fprintf(&b, "\t%s %s\n", pad("MAC:", 24), d.MAC)
	}
	if d.Manufacturer != "" {
		fmt.Fprintf(&b, "\t%s %s\n", pad("Manufacturer:", 24), d.Manufacturer)
	}
	if d.Name != "" {
		fmt.Fprintf(&b, "\t%s %s\n", pad("Name:", 24), d.Name)
	}

	return b.String()
}

// DeviceScanner checks which hosts of a block are reachable and what the local
// ARP cache knows about them.
type DeviceScanner struct {
	timeout    time.Duration
	workers    int
	dial       DialFunc
	arpSearch  func(ip string) string
	lookupAddr func(addr string) ([]string, error)
}

func NewDeviceScanner(dial DialFunc, timeout time.Duration, workers int) *DeviceScanner {
	if dial == nil {
		dial = net.DialTimeout
	}
	if timeout <= 0 {
		timeout = BatchTimeout
	}
	return &DeviceScanner{
		timeout:    timeout,
		workers:    ClampWorkers(workers),
		dial:       dial,
		arpSearch:  arp.Search,
		lookupAddr: net.LookupAddr,
	}
}

// Discover describes every target as it is read from the iterator, so memory
// stays bounded by the worker count rather than the size of the block. found is
// called once per target, never concurrently, in completion order.
func (s *DeviceScanner) Discover(targets *Targets, found func(Device)) error {
	logrus.WithField("workers", s.workers).Debug("Starting discovery")

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.workers)
	for {
		host, err := targets.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = g.Wait()
			return err
		}
		g.Go(func() error {
			d := s.describe(host)
			mu.Lock()
			defer mu.Unlock()
			found(d)
			return nil
		})
	}
	return g.Wait()
}

func (s *DeviceScanner) describe(host Host) Device {
	d := Device{
		Host:    host,
		Latency: -1,
	}

	if mac, err := net.ParseMAC(s.arpSearch(host.String())); err == nil && mac.String() != "00:00:00:00:00:00" {
		d.MAC = mac.String()
		prefix := [3]byte{mac[0], mac[1], mac[2]}
		if manufacturer, ok := macs.ValidMACPrefixMap[prefix]; ok {
			d.Manufacturer = manufacturer
		}
		// only bother looking up hostname for local devices
		if names, err := s.lookupAddr(host.String()); err == nil && len(names) > 0 {
			d.Name = names[0]
		}
	}

	start := time.Now()
	conn, err := s.dial("tcp", host.Address(latencyPort), s.timeout)
	if conn != nil {
		conn.Close()
	}
	if err == nil {
		d.Latency = time.Since(start)
		return d
	}
	if netErr, ok := err.(net.Error); !ok || !netErr.Timeout() {
		d.Latency = time.Since(start)
	}
	return d
}

func pad(input string, length int) string {
	for len(input) < length {
		input += " "
	}
	return input
}
