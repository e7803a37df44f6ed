package scan

import (
	"fmt"
)

type Result struct {
	Port    int
	State   PortState
	Service string
}

func NewResult(port int, state PortState) Result {
	return Result{
		Port:    port,
		State:   state,
		Service: DescribePort(port),
	}
}

func (r Result) IsOpen() bool {
	return r.State == PortOpen
}

// Line renders the result without a trailing newline.
func (r Result) Line(withService bool) string {
	if withService {
		return fmt.Sprintf("%d\t%s\t%s", r.Port, r.State, r.Service)
	}
	return fmt.Sprintf("%d\t%s", r.Port, r.State)
}

type Summary struct {
	Scanned int
	Open    int
}

func (s Summary) String() string {
	return fmt.Sprintf("Scanned %d ports, found %d open", s.Scanned, s.Open)
}
