package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/netgen/internal/network"
)

func TestRecorder_Generated(t *testing.T) {
	r := NewRecorder()

	r.Generated(3)
	r.Generated(5)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.runsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(5), testutil.ToFloat64(r.resources))
}

func TestRecorder_Failed(t *testing.T) {
	r := NewRecorder()

	r.Failed(network.KindInvalidCIDR)
	r.Failed(network.KindInvalidCIDR)
	r.Failed(network.KindDuplicateSubnetworkName)

	assert.Equal(t, float64(3), testutil.ToFloat64(r.runsTotal.WithLabelValues("failure")))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.failuresTotal.WithLabelValues(string(network.KindInvalidCIDR))))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.failuresTotal.WithLabelValues(string(network.KindDuplicateSubnetworkName))))
}

func TestRecorder_Registry(t *testing.T) {
	r := NewRecorder()
	r.Generated(2)

	count, err := testutil.GatherAndCount(r.Registry(), "netgen_generator_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Generated(4)

	path := filepath.Join(t.TempDir(), "netgen.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `netgen_generator_runs_total{result="success"} 1`)
	assert.Contains(t, string(data), "netgen_generator_resources 4")
}

func TestRecorder_WriteTextfile_BadPath(t *testing.T) {
	r := NewRecorder()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "netgen.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics file")
}
