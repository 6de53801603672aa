package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric %s not found", name)
	return nil
}

func TestCollector_RecordHTTPStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(http.StatusOK)
	c.RecordHTTPStatus(http.StatusOK)
	c.RecordHTTPStatus(http.StatusNotFound)

	family := gather(t, reg, "socialize_http_status_total")
	counts := map[string]float64{}
	for _, m := range family.GetMetric() {
		counts[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	assert.Equal(t, 2.0, counts["200"])
	assert.Equal(t, 1.0, counts["404"])
}

func TestCollector_RecordProjectionLoad(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordProjectionLoad(0)
	c.RecordProjectionLoad(3)

	loads := gather(t, reg, "socialize_user_with_groups_loads_total")
	assert.Equal(t, 2.0, loads.GetMetric()[0].GetCounter().GetValue())

	size := gather(t, reg, "socialize_user_with_groups_size")
	h := size.GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(2), h.GetSampleCount())
	assert.Equal(t, 3.0, h.GetSampleSum())
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordPublishFailure()

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body, _ := io.ReadAll(w.Body)
	assert.Contains(t, string(body), "socialize_event_publish_fail_total 1")
}
