package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePortSelection(t *testing.T) {
	cases := map[string]PortSet{
		"22":                 {22},
		"22,80":              {22, 80},
		"80,22":              {80, 22},
		"1-3":                {1, 2, 3},
		" 22 , 80,8000-8002": {22, 80, 8000, 8001, 8002},
		"5,3-6":              {5, 3, 4, 6},
	}
	for selection, want := range cases {
		t.Run(selection, func(t *testing.T) {
			got, err := ParsePortSelection(selection)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParsePortSelectionDefaultsToCommonPorts(t *testing.T) {
	got, err := ParsePortSelection("  ")
	require.NoError(t, err)
	assert.Equal(t, CommonPorts, got)

	got[0] = 1
	assert.Equal(t, 21, CommonPorts[0])
}

func TestParsePortSelectionRejectsBadInput(t *testing.T) {
	cases := map[string]error{
		"0":       ErrInvalidPort,
		"65536":   ErrInvalidPort,
		"abc":     ErrInvalidPort,
		"22,":     ErrInvalidPort,
		"10-1":    ErrInvalidRange,
		"1-2-3":   ErrInvalidRange,
		"1-70000": ErrInvalidPort,
	}
	for selection, want := range cases {
		t.Run(selection, func(t *testing.T) {
			_, err := ParsePortSelection(selection)
			assert.ErrorIs(t, err, want)
		})
	}
}

func TestNewPortRange(t *testing.T) {
	ports, err := NewPortRange(65530, 65535)
	require.NoError(t, err)
	assert.Equal(t, PortSet{65530, 65531, 65532, 65533, 65534, 65535}, ports)

	ports, err = NewPortRange(443, 443)
	require.NoError(t, err)
	assert.Equal(t, PortSet{443}, ports)

	_, err = NewPortRange(0, 10)
	assert.ErrorIs(t, err, ErrInvalidPort)

	_, err = NewPortRange(100, 99)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCommonPortsAreDistinctAndNamed(t *testing.T) {
	assert.Len(t, CommonPorts, 20)
	seen := map[int]bool{}
	for _, port := range CommonPorts {
		assert.False(t, seen[port], "duplicate port %d", port)
		seen[port] = true
		assert.NotEqual(t, "Unknown", DescribePort(port))
	}
}

func TestDescribePort(t *testing.T) {
	assert.Equal(t, "SSH", DescribePort(22))
	assert.Equal(t, "MS SQL", DescribePort(1433))
	assert.Equal(t, "HTTPS-Alt", DescribePort(8443))
	assert.Equal(t, "bgp", DescribePort(179))
	assert.Equal(t, "Unknown", DescribePort(0))
	assert.Equal(t, "Unknown", DescribePort(70000))
}
