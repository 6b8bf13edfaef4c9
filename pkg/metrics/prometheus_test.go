package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_Counts(t *testing.T) {
	c := NewCollector()

	c.ObserveAnalysis("success", 2*time.Second)
	c.ObserveAnalysis("success", time.Second)
	c.ObserveAnalysis("busy", 0)
	c.ObserveRiskTier("high")
	c.IncDegraded()
	c.ObserveSmokeTest(false)
	c.SetActiveSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.analysisRequests.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.analysisRequests.WithLabelValues("busy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.riskTiers.WithLabelValues("high")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.degradedRequests))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.smokeTests.WithLabelValues("failure")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.activeSessions))
}
