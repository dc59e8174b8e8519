package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMetrics(t *testing.T) {
	m := New()
	m.RecordsRead.Add(12)
	m.ShortRowsSkipped.WithLabelValues("extract").Inc()
	m.QualifyingRows.WithLabelValues("NV_IND_TECH").Add(3)
	m.AlignedPairs.Set(2)
	m.Coefficient.WithLabelValues("linear").Set(0.55)

	assert.Equal(t, 12.0, testutil.ToFloat64(m.RecordsRead))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ShortRowsSkipped.WithLabelValues("extract")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.QualifyingRows.WithLabelValues("NV_IND_TECH")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AlignedPairs))

	path := filepath.Join(t.TempDir(), "sdgcorr.prom")
	require.NoError(t, m.WriteTextfile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "sdgcorr_records_read_total 12")
	assert.Contains(t, out, `sdgcorr_correlation_coefficient{method="linear"} 0.55`)
	assert.Contains(t, out, "# HELP sdgcorr_aligned_pairs")
}
