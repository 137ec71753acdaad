package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLedgerOperation(t *testing.T) {
	m := New()

	m.ObserveLedgerOperation("create", nil)
	m.ObserveLedgerOperation("create", nil)
	m.ObserveLedgerOperation("replace", errors.New("boom"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ledgerOps.WithLabelValues("create", ResultSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ledgerOps.WithLabelValues("replace", ResultError)))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ledgerOps.WithLabelValues("delete", ResultSuccess)))
}

func TestAddCommissionWritten_IgnoresNonPositive(t *testing.T) {
	m := New()
	m.AddCommissionWritten("primary", 500)
	m.AddCommissionWritten("primary", 0)
	m.AddCommissionWritten("primary", -10)

	assert.Equal(t, float64(500), testutil.ToFloat64(m.commissionPaid.WithLabelValues("primary")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/health", "200", 0.1)
		m.ObserveLedgerOperation("create", nil)
		m.AddCommissionWritten("partner", 1)
		m.IncRateLimitDenied()
	})
	assert.Nil(t, m.Registry())
}

func TestHandlerExposesInstruments(t *testing.T) {
	m := New()
	m.ObserveHTTP("GET", "/api/v1/sales", "200", 0.02)
	m.ObserveLedgerOperation("delete", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "commission_http_requests_total")
	assert.Contains(t, body, `commission_ledger_operations_total{operation="delete",result="success"} 1`)
}
