package tamsclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tams-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analysisBody = `{
  "status": "completed",
  "analysis": {
    "stage1_genuine_correlation": {"classification": "Requires Further Analysis", "confidenceScore": "Low", "htmlContent": "<p>s1</p>"},
    "stage2_behavioral_analysis": {"anomalyRating": "High", "keyAnomalousObservations": ["new merchant", "odd hour"]},
    "stage3_risk_assessment": {"riskRating": 8, "keyFindings": ["a", "b", "c"]}
  },
  "final_recommendation": {
    "final_classification": "High Priority Review",
    "overall_risk_score": 8,
    "confidence_level": "Low",
    "next_actions": ["Contact customer", "Block card"]
  },
  "version": "1.0.0",
  "execution_time_ms": 1520.5
}`

func sampleAlert() *models.AlertRequest {
	return &models.AlertRequest{
		Timestamp:       "2024-12-16T14:30:00Z",
		Merchant:        "Unknown Online Store",
		Amount:          models.AmountOf(299.99),
		TransactionType: models.CardNotPresent,
		UserID:          "user_12345",
	}
}

func TestAnalyze_Success(t *testing.T) {
	var got models.AlertRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tams/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, analysisBody)
	}))
	defer srv.Close()

	result, err := New(srv.URL + "/").Analyze(context.Background(), sampleAlert())

	require.NoError(t, err)
	assert.Equal(t, *sampleAlert(), got)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, 8.0, *result.FinalRecommendation.OverallRiskScore)
	assert.Equal(t, models.FlexString("Low"), result.Analysis.Correlation.ConfidenceScore)
	assert.Len(t, result.Analysis.Behavioral.KeyAnomalousObservations, 2)
	assert.Equal(t, 1520.5, *result.ExecutionTimeMs)
}

func TestAnalyze_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"detail":"TAMS analysis failed: boom"}`)
	}))
	defer srv.Close()

	result, err := New(srv.URL).Analyze(context.Background(), sampleAlert())

	assert.Nil(t, result)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "boom")
	assert.Equal(t, KindHTTPError, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
}

func TestAnalyze_MalformedResponse(t *testing.T) {
	bodies := map[string]string{
		"not json":        `<html>oops</html>`,
		"missing final":   `{"status":"completed","analysis":{},"version":"1.0.0"}`,
		"missing score":   `{"status":"completed","analysis":{},"final_recommendation":{"final_classification":"x"},"version":"1.0.0"}`,
		"missing version": `{"status":"completed","analysis":{},"final_recommendation":{"overall_risk_score":3}}`,
		"negative time":   `{"status":"completed","analysis":{},"final_recommendation":{"overall_risk_score":3},"version":"1","execution_time_ms":-1}`,
		"score as text":   `{"status":"completed","analysis":{},"final_recommendation":{"overall_risk_score":"high"},"version":"1"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, body)
			}))
			defer srv.Close()

			_, err := New(srv.URL).Analyze(context.Background(), sampleAlert())

			assert.Equal(t, KindMalformedResponse, KindOf(err), "error: %v", err)
		})
	}
}

func TestAnalyze_MissingStagesAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"completed","analysis":{"stage1_genuine_correlation":{}},"final_recommendation":{"overall_risk_score":2,"next_actions":[]},"version":"1.0.0"}`)
	}))
	defer srv.Close()

	result, err := New(srv.URL).Analyze(context.Background(), sampleAlert())

	require.NoError(t, err)
	assert.NotNil(t, result.Analysis.Correlation)
	assert.Nil(t, result.Analysis.Behavioral)
	assert.Nil(t, result.Analysis.Risk)
	assert.Nil(t, result.ExecutionTimeMs)
}

func TestAnalyze_MistypedStageFieldsTolerated(t *testing.T) {
	const final = `"final_recommendation":{"final_classification":"High Priority Review","overall_risk_score":8,"next_actions":[]},"version":"1.0.0"`
	bodies := map[string]string{
		"rating as text":       `{"status":"completed","analysis":{"stage3_risk_assessment":{"riskRating":"7","keyFindings":["f"]}},` + final + `}`,
		"observations as text": `{"status":"completed","analysis":{"stage2_behavioral_analysis":{"anomalyRating":"High","keyAnomalousObservations":"none"}},` + final + `}`,
		"stage as text":        `{"status":"completed","analysis":{"stage1_genuine_correlation":"skipped"},` + final + `}`,
		"analysis as list":     `{"status":"completed","analysis":[1,2],` + final + `}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, body)
			}))
			defer srv.Close()

			result, err := New(srv.URL).Analyze(context.Background(), sampleAlert())

			require.NoError(t, err)
			assert.Equal(t, 8.0, *result.FinalRecommendation.OverallRiskScore)
		})
	}
}

func TestRunSmokeTest_MistypedStageTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"message":"ok","result":{"analysis":{"stage3_risk_assessment":{"riskRating":{"value":7}}},"final_recommendation":{"overall_risk_score":6.5},"version":"1"}}`)
	}))
	defer srv.Close()

	result, err := New(srv.URL).RunSmokeTest(context.Background())

	require.NoError(t, err)
	require.NotNil(t, result.Result.Analysis.Risk)
	assert.Nil(t, result.Result.Analysis.Risk.RiskRating)
}

func TestAnalyze_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).Analyze(context.Background(), sampleAlert())

	assert.Equal(t, KindNetworkFailure, KindOf(err))
	assert.Equal(t, 0, StatusCode(err))
}

func TestAnalyze_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).Analyze(context.Background(), sampleAlert())

	assert.Equal(t, KindNetworkFailure, KindOf(err))
}

func TestAnalyze_FiresOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Analyze(context.Background(), sampleAlert())

	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRunSmokeTest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tams/test", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = io.WriteString(w, `{"message":"TAMS test analysis completed","result":{"final_recommendation":{"overall_risk_score":6.5}}}`)
	}))
	defer srv.Close()

	result, err := New(srv.URL).RunSmokeTest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6.5, *result.Result.FinalRecommendation.OverallRiskScore)
}

func TestRunSmokeTest_MissingScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"message":"done","result":{}}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).RunSmokeTest(context.Background())

	assert.Equal(t, KindMalformedResponse, KindOf(err))
}

func TestCheckHealth(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health/", r.URL.Path)
		w.WriteHeader(int(status.Load()))
		_, _ = io.WriteString(w, "not json at all")
	}))
	defer srv.Close()
	client := New(srv.URL)

	assert.NoError(t, client.CheckHealth(context.Background()))

	status.Store(http.StatusNoContent)
	assert.NoError(t, client.CheckHealth(context.Background()))

	status.Store(http.StatusServiceUnavailable)
	assert.Equal(t, KindHTTPError, KindOf(client.CheckHealth(context.Background())))
}

func TestListAgents_PlatformShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/agents/", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id": 7, "name": "TAMS AI-Assist", "type": "automation", "is_active": true, "created_at": "2024-12-16T10:00:00.123456"},
			{"id": "8", "name": "Doc Agent", "type": "assistive", "status": "error", "created_at": "2024-12-14T16:30:00Z", "execution_count": 12, "last_execution": "2024-12-16T11:45:00Z"}
		]`)
	}))
	defer srv.Close()

	agents, err := New(srv.URL).ListAgents(context.Background())

	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "7", agents[0].ID)
	assert.Equal(t, "active", agents[0].Status)
	assert.Equal(t, 2024, agents[0].CreatedAt.Year())
	assert.Nil(t, agents[0].LastExecution)
	assert.Equal(t, "error", agents[1].Status)
	require.NotNil(t, agents[1].LastExecution)
	assert.Equal(t, 12, agents[1].ExecutionCount)
}

func TestKindOf_Unknown(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
}

func TestAlertRequest_JSONRoundTrip(t *testing.T) {
	in := sampleAlert()
	in.Amount = models.AmountOf(1234567.891011)
	in.AlertID = "alert_67890"

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out models.AlertRequest
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, *in, out)
}
