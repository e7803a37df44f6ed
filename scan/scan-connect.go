package scan

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var _ Scanner = (*ConnectScanner)(nil)

// ConnectScanner fans a port set out over a fixed number of workers. Each worker
// owns one contiguous span of the set and probes it sequentially.
type ConnectScanner struct {
	prober   Prober
	reporter *Reporter
	timeout  time.Duration
	workers  int
}

func NewConnectScanner(prober Prober, reporter *Reporter, timeout time.Duration, workers int) *ConnectScanner {
	if timeout <= 0 {
		timeout = BatchTimeout
	}
	return &ConnectScanner{
		prober:   prober,
		reporter: reporter,
		timeout:  timeout,
		workers:  ClampWorkers(workers),
	}
}

// Scan blocks until every port has been probed. Errors are only returned for
// setup problems, before any worker has started.
func (s *ConnectScanner) Scan(host Host, ports PortSet) (Summary, error) {
	if s.prober == nil {
		return Summary{}, errors.New("scanner has no prober")
	}
	if s.reporter == nil {
		return Summary{}, errors.New("scanner has no reporter")
	}
	if host.IP.To4() == nil {
		return Summary{}, fmt.Errorf("%w: '%s'", ErrInvalidAddress, host)
	}

	tally := &Tally{}
	spans := Partition(len(ports), s.workers)

	logger := logrus.WithFields(logrus.Fields{
		"host":    host.String(),
		"ports":   len(ports),
		"workers": len(spans),
		"timeout": s.timeout,
	})
	logger.Debug("Starting scan")
	start := time.Now()

	var g errgroup.Group
	for _, span := range spans {
		if span.Len() == 0 {
			continue
		}
		span := span
		g.Go(func() error {
			s.scanSpan(host, ports[span.Lo:span.Hi], tally)
			return nil
		})
	}
	_ = g.Wait()

	summary := tally.Summary()
	logger.WithFields(logrus.Fields{
		"open":    summary.Open,
		"elapsed": time.Since(start),
	}).Debug("Scan finished")

	return summary, nil
}

func (s *ConnectScanner) scanSpan(host Host, ports PortSet, tally *Tally) {
	for _, port := range ports {
		state := s.prober.Probe(host, port, s.timeout)
		tally.Record(state)
		s.reporter.Report(NewResult(port, state))
	}
}
