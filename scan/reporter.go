package scan

import (
	"fmt"
	"io"
	"sync"
)

// Reporter serialises output so that one result line is never split by another
// worker. Lines from different workers appear in completion order; lines from a
// single worker keep that worker's port order.
type Reporter struct {
	mu          sync.Mutex
	w           io.Writer
	withService bool
	openOnly    bool
	completion  string
}

type ReporterOption func(*Reporter)

// WithServices appends the service name column to every result line.
func WithServices() ReporterOption {
	return func(r *Reporter) {
		r.withService = true
	}
}

// OpenOnly drops CLOSED lines. The summary still counts them.
func OpenOnly() ReporterOption {
	return func(r *Reporter) {
		r.openOnly = true
	}
}

// CompletionMessage replaces the line printed above the summary.
func CompletionMessage(msg string) ReporterOption {
	return func(r *Reporter) {
		r.completion = msg
	}
}

func NewReporter(w io.Writer, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		w:          w,
		completion: "Scan complete!",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reporter) Header() {
	if r.withService {
		r.write("Port\tStatus\tService\n----\t------\t-------\n")
		return
	}
	r.write("Port\tStatus\n----\t------\n")
}

func (r *Reporter) Report(result Result) {
	if r.openOnly && !result.IsOpen() {
		return
	}
	r.write(result.Line(r.withService) + "\n")
}

// Single prints the outcome of an ad-hoc one port check.
func (r *Reporter) Single(port int, state PortState) {
	if state == PortOpen {
		r.write(fmt.Sprintf("SUCCESS: Port %d is OPEN!\n", port))
		return
	}
	r.write(fmt.Sprintf("Port %d is CLOSED or filtered\n", port))
}

func (r *Reporter) Summary(summary Summary) {
	r.write(fmt.Sprintf("\n%s\n%s\n", r.completion, summary))
}

// write emits the whole string with one Write call while holding the lock.
func (r *Reporter) write(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.w, s)
}
