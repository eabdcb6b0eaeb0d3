package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportsTotal(t *testing.T) {
	before := testutil.ToFloat64(ExportsTotal.WithLabelValues("yaml", ResultSuccess))
	ExportsTotal.WithLabelValues("yaml", ResultSuccess).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ExportsTotal.WithLabelValues("yaml", ResultSuccess)))
}

func TestHandler(t *testing.T) {
	ViewTransitionsTotal.WithLabelValues("refresh").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `kubedash_view_transitions_total{action="refresh"}`)
}
