package scan

const (
	DefaultWorkers = 10
	MaxWorkers     = 20
)

// Span is the half open index range [Lo, Hi) of a port set owned by one worker.
type Span struct {
	Lo int
	Hi int
}

func (s Span) Len() int {
	return s.Hi - s.Lo
}

// ClampWorkers bounds a requested worker count to [1, MaxWorkers].
func ClampWorkers(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// Partition splits nPorts into exactly ClampWorkers(nWorkers) contiguous spans.
// The first nPorts%n spans hold one extra port. Spans past the end of the set are empty.
func Partition(nPorts int, nWorkers int) []Span {
	if nPorts < 0 {
		nPorts = 0
	}
	n := ClampWorkers(nWorkers)
	base, rem := nPorts/n, nPorts%n

	spans := make([]Span, 0, n)
	lo := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		spans = append(spans, Span{Lo: lo, Hi: lo + size})
		lo += size
	}
	return spans
}
