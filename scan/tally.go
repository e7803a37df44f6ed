package scan

import "sync/atomic"

// Tally is shared by every worker of a scan. Increments are atomic so no lock is
// held alongside the Reporter's.
type Tally struct {
	scanned atomic.Int64
	open    atomic.Int64
}

func (t *Tally) Record(state PortState) {
	t.scanned.Add(1)
	if state == PortOpen {
		t.open.Add(1)
	}
}

// Summary must only be read after every worker has returned.
func (t *Tally) Summary() Summary {
	return Summary{
		Scanned: int(t.scanned.Load()),
		Open:    int(t.open.Load()),
	}
}
