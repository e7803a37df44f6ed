package scan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/gopacket/layers"
)

const (
	MinPort = 1
	MaxPort = 65535
)

// PortSet is an ordered list of distinct ports. It is read-only once a scan starts.
type PortSet []int

// CommonPorts is the curated list probed by a common ports scan, in probe order.
var CommonPorts = PortSet{
	21, 22, 23, 25, 53, 80, 110, 143, 443, 993,
	995, 1433, 3306, 3389, 5432, 5900, 6379, 8080, 8443, 9090,
}

var commonServices = map[int]string{
	21:   "FTP",
	22:   "SSH",
	23:   "Telnet",
	25:   "SMTP",
	53:   "DNS",
	80:   "HTTP",
	110:  "POP3",
	143:  "IMAP",
	443:  "HTTPS",
	993:  "IMAPS",
	995:  "POP3S",
	1433: "MS SQL",
	3306: "MySQL",
	3389: "RDP",
	5432: "PostgreSQL",
	5900: "VNC",
	6379: "Redis",
	8080: "HTTP-Alt",
	8443: "HTTPS-Alt",
	9090: "Various",
}

// DescribePort names the service usually found on port. The curated names win,
// then the IANA registry bundled with gopacket, then "Unknown".
func DescribePort(port int) string {
	if s, ok := commonServices[port]; ok {
		return s
	}
	if port < MinPort || port > MaxPort {
		return "Unknown"
	}
	// TCPPort renders as "number(name)" when IANA knows the port
	s := layers.TCPPort(port).String()
	if i := strings.IndexByte(s, '('); i >= 0 {
		if name := strings.TrimSuffix(s[i+1:], ")"); name != "" {
			return name
		}
	}
	return "Unknown"
}

func ValidatePort(port int) error {
	if port < MinPort || port > MaxPort {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidPort, port, MinPort, MaxPort)
	}
	return nil
}

// ParsePort converts a textual port number and checks its bounds.
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidPort, s)
	}
	if err := ValidatePort(port); err != nil {
		return 0, err
	}
	return port, nil
}

// NewPortRange returns every port from start to end inclusive.
func NewPortRange(start int, end int) (PortSet, error) {
	if err := ValidatePort(start); err != nil {
		return nil, err
	}
	if err := ValidatePort(end); err != nil {
		return nil, err
	}
	if start > end {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidRange, start, end)
	}
	ports := make(PortSet, 0, end-start+1)
	for i := start; i <= end; i++ {
		ports = append(ports, i)
	}
	return ports, nil
}

// ParsePortSelection parses comma separated ports and hyphenated ranges such as
// "22,80,443,8080-8090". Ports already selected are skipped so the set stays distinct.
// An empty selection yields the common ports.
func ParsePortSelection(selection string) (PortSet, error) {
	if strings.TrimSpace(selection) == "" {
		return append(PortSet{}, CommonPorts...), nil
	}

	ports := PortSet{}
	seen := map[int]bool{}
	add := func(p int) {
		if !seen[p] {
			seen[p] = true
			ports = append(ports, p)
		}
	}

	for _, r := range strings.Split(selection, ",") {
		r = strings.TrimSpace(r)
		if !strings.Contains(r, "-") {
			port, err := ParsePort(r)
			if err != nil {
				return nil, err
			}
			add(port)
			continue
		}

		parts := strings.Split(r, "-")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidRange, r)
		}
		p1, err := ParsePort(parts[0])
		if err != nil {
			return nil, err
		}
		p2, err := ParsePort(parts[1])
		if err != nil {
			return nil, err
		}
		span, err := NewPortRange(p1, p2)
		if err != nil {
			return nil, err
		}
		for _, p := range span {
			add(p)
		}
	}
	return ports, nil
}
