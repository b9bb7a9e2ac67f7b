package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
)

var (
	_ coreport.Metrics = (*PrometheusMetrics)(nil)
	_ coreport.Metrics = NoopMetrics{}
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	m := NewPrometheusMetrics()

	m.AdmissionDecision("accepted", "")
	m.AdmissionDecision("rejected", "ASSET_UNAVAILABLE")
	m.AdmissionDecision("rejected", "ASSET_UNAVAILABLE")
	m.ReservationTransition("CONFIRMED", "CHECKED_OUT")
	m.InventoryCall("checkout", "error")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.admissionDecisions.WithLabelValues("rejected", "ASSET_UNAVAILABLE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.admissionDecisions.WithLabelValues("accepted", "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservationTransition.WithLabelValues("CONFIRMED", "CHECKED_OUT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inventoryCalls.WithLabelValues("checkout", "error")))
}

func TestPrometheusMetrics_Handler(t *testing.T) {
	m := NewPrometheusMetrics()
	m.AdmissionDecision("rejected", "BLOCK_LIMIT_EXCEEDED")
	m.ObserveHTTPRequest(http.MethodPost, "/reservations", http.StatusConflict, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `cage_admission_decisions_total{outcome="rejected",rule="BLOCK_LIMIT_EXCEEDED"} 1`))
	assert.Contains(t, body, `cage_http_request_duration_seconds_count{method="POST",route="/reservations",status="409"} 1`)
}
