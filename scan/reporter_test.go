package scan

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkedWriter splits every write in two so unserialised writers would interleave.
type chunkedWriter struct {
	buf bytes.Buffer
}

func (w *chunkedWriter) Write(p []byte) (int, error) {
	half := len(p) / 2
	n, _ := w.buf.Write(p[:half])
	m, _ := w.buf.Write(p[half:])
	return n + m, nil
}

func TestReporterNeverSplitsLines(t *testing.T) {
	w := &chunkedWriter{}
	reporter := NewReporter(w, WithServices())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				port := worker*100 + j + 1
				state := PortClosed
				if j%5 == 0 {
					state = PortOpen
				}
				reporter.Report(NewResult(port, state))
			}
		}(i)
	}
	wg.Wait()

	line := regexp.MustCompile(`^\d+\t(OPEN|CLOSED)\t[^\t]+$`)
	lines := strings.Split(strings.TrimRight(w.buf.String(), "\n"), "\n")
	require.Len(t, lines, 1000)
	for _, l := range lines {
		assert.Regexp(t, line, l)
	}
}

func TestReporterLineFormats(t *testing.T) {
	buf := &bytes.Buffer{}
	NewReporter(buf).Report(NewResult(22, PortOpen))
	NewReporter(buf, WithServices()).Report(NewResult(22, PortOpen))
	NewReporter(buf, WithServices()).Report(NewResult(65000, PortClosed))

	assert.Equal(t, "22\tOPEN\n22\tOPEN\tSSH\n65000\tCLOSED\tUnknown\n", buf.String())
}

func TestReporterOpenOnly(t *testing.T) {
	buf := &bytes.Buffer{}
	reporter := NewReporter(buf, OpenOnly())
	reporter.Report(NewResult(21, PortClosed))
	reporter.Report(NewResult(80, PortOpen))

	assert.Equal(t, "80\tOPEN\n", buf.String())
}

func TestReporterSingleAndSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	reporter := NewReporter(buf)
	reporter.Single(22, PortOpen)
	reporter.Single(23, PortClosed)
	reporter.Summary(Summary{Scanned: 5, Open: 1})

	assert.Equal(t, fmt.Sprintf(
		"SUCCESS: Port 22 is OPEN!\nPort 23 is CLOSED or filtered\n\nScan complete!\n%s\n",
		"Scanned 5 ports, found 1 open",
	), buf.String())
}

func TestReporterHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	NewReporter(buf, WithServices()).Header()
	assert.True(t, strings.HasPrefix(buf.String(), "Port\tStatus\tService\n"))
}

func TestReporterCompletionMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	NewReporter(buf, CompletionMessage("Common ports scan complete!")).Summary(Summary{Scanned: 20, Open: 3})

	assert.Equal(t, "\nCommon ports scan complete!\nScanned 20 ports, found 3 open\n", buf.String())
}
