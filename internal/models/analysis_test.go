package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysis_UnmarshalLenientStages(t *testing.T) {
	var a Analysis
	require.NoError(t, json.Unmarshal([]byte(`{
		"stage1_genuine_correlation": "not an object",
		"stage2_behavioral_analysis": {"anomalyRating": 3, "keyAnomalousObservations": "none", "htmlContent": "<p>x</p>"},
		"stage3_risk_assessment": {"riskRating": " 7.5 ", "keyFindings": ["a", 2]}
	}`), &a))

	assert.Nil(t, a.Correlation)

	require.NotNil(t, a.Behavioral)
	assert.Equal(t, "3", a.Behavioral.AnomalyRating)
	assert.Nil(t, a.Behavioral.KeyAnomalousObservations)
	assert.Equal(t, "<p>x</p>", a.Behavioral.HTMLContent)

	require.NotNil(t, a.Risk)
	require.NotNil(t, a.Risk.RiskRating)
	assert.Equal(t, 7.5, *a.Risk.RiskRating)
	assert.Nil(t, a.Risk.KeyFindings)
}

func TestAnalysis_UnmarshalWellTypedStages(t *testing.T) {
	var a Analysis
	require.NoError(t, json.Unmarshal([]byte(`{
		"stage1_genuine_correlation": {"classification": "Likely Genuine", "confidenceScore": "High"},
		"stage3_risk_assessment": {"riskRating": 4, "keyFindings": ["velocity"]}
	}`), &a))

	require.NotNil(t, a.Correlation)
	assert.Equal(t, "Likely Genuine", a.Correlation.Classification)
	assert.Equal(t, FlexString("High"), a.Correlation.ConfidenceScore)
	assert.Nil(t, a.Behavioral)
	assert.Equal(t, []string{"velocity"}, a.Risk.KeyFindings)
	assert.Equal(t, 4.0, *a.Risk.RiskRating)
}

func TestAnalysis_UnmarshalNonNumericRating(t *testing.T) {
	var a Analysis
	require.NoError(t, json.Unmarshal([]byte(`{"stage3_risk_assessment": {"riskRating": "High"}}`), &a))

	require.NotNil(t, a.Risk)
	assert.Nil(t, a.Risk.RiskRating)
}

func TestAlertRequest_MissingAmountIsNil(t *testing.T) {
	var req AlertRequest
	require.NoError(t, json.Unmarshal([]byte(`{"timestamp":"2024-12-16T14:30:00Z","amount":null}`), &req))
	assert.Nil(t, req.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount":0}`), &req))
	require.NotNil(t, req.Amount)
	assert.Equal(t, 0.0, *req.Amount)
}
