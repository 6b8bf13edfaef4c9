package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type AnalysisResult struct {
	Status              string               `json:"status"`
	Analysis            Analysis             `json:"analysis"`
	FinalRecommendation *FinalRecommendation `json:"final_recommendation"`
	Version             string               `json:"version"`
	ExecutionTimeMs     *float64             `json:"execution_time_ms,omitempty"`
}

// Analysis holds the three pipeline stages. Any of them may be missing, and
// a stage that is not a JSON object is treated as missing.
type Analysis struct {
	Correlation *CorrelationStage `json:"stage1_genuine_correlation,omitempty"`
	Behavioral  *BehavioralStage  `json:"stage2_behavioral_analysis,omitempty"`
	Risk        *RiskStage        `json:"stage3_risk_assessment,omitempty"`
}

type CorrelationStage struct {
	Classification  string     `json:"classification,omitempty"`
	ConfidenceScore FlexString `json:"confidenceScore,omitempty"`
	HTMLContent     string     `json:"htmlContent,omitempty"`
}

type BehavioralStage struct {
	Classification           string   `json:"classification,omitempty"`
	AnomalyRating            string   `json:"anomalyRating,omitempty"`
	KeyAnomalousObservations []string `json:"keyAnomalousObservations,omitempty"`
	HTMLContent              string   `json:"htmlContent,omitempty"`
}

type RiskStage struct {
	RiskRating  *float64 `json:"riskRating,omitempty"`
	KeyFindings []string `json:"keyFindings,omitempty"`
	HTMLContent string   `json:"htmlContent,omitempty"`
}

// UnmarshalJSON decodes each stage field on its own. Stage content is written
// by the analysis engine, so a field of an unexpected type is left at its zero
// value instead of failing the whole result.
func (a *Analysis) UnmarshalJSON(data []byte) error {
	*a = Analysis{}

	var stages map[string]json.RawMessage
	if err := json.Unmarshal(data, &stages); err != nil {
		return nil
	}

	if f, ok := stageFields(stages, "stage1_genuine_correlation"); ok {
		a.Correlation = &CorrelationStage{
			Classification:  decodeText(f, "classification"),
			ConfidenceScore: FlexString(decodeText(f, "confidenceScore")),
			HTMLContent:     decodeText(f, "htmlContent"),
		}
	}
	if f, ok := stageFields(stages, "stage2_behavioral_analysis"); ok {
		a.Behavioral = &BehavioralStage{
			Classification:           decodeText(f, "classification"),
			AnomalyRating:            decodeText(f, "anomalyRating"),
			KeyAnomalousObservations: decodeList(f, "keyAnomalousObservations"),
			HTMLContent:              decodeText(f, "htmlContent"),
		}
	}
	if f, ok := stageFields(stages, "stage3_risk_assessment"); ok {
		a.Risk = &RiskStage{
			RiskRating:  decodeNumber(f, "riskRating"),
			KeyFindings: decodeList(f, "keyFindings"),
			HTMLContent: decodeText(f, "htmlContent"),
		}
	}
	return nil
}

func stageFields(stages map[string]json.RawMessage, key string) (map[string]json.RawMessage, bool) {
	raw, ok := stages[key]
	if !ok {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

func decodeText(fields map[string]json.RawMessage, key string) string {
	var s FlexString
	if raw, ok := fields[key]; ok && json.Unmarshal(raw, &s) == nil {
		return string(s)
	}
	return ""
}

func decodeList(fields map[string]json.RawMessage, key string) []string {
	var items []string
	if raw, ok := fields[key]; ok && json.Unmarshal(raw, &items) == nil {
		return items
	}
	return nil
}

// decodeNumber accepts a JSON number or a numeric string.
func decodeNumber(fields map[string]json.RawMessage, key string) *float64 {
	text := decodeText(fields, key)
	if text == "" {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

type FinalRecommendation struct {
	FinalClassification string   `json:"final_classification"`
	OverallRiskScore    *float64 `json:"overall_risk_score"`
	ConfidenceLevel     string   `json:"confidence_level"`
	NextActions         []string `json:"next_actions"`
}

// FlexString accepts either a JSON string or a JSON number. The analysis
// service reports stage confidence as "High"/"Medium"/"Low" or as a score.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("confidence must be a string or number: %w", err)
	}
	*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// SmokeTestResult is the body returned by the TAMS test endpoint.
type SmokeTestResult struct {
	Message     string          `json:"message"`
	SampleInput json.RawMessage `json:"sample_input,omitempty"`
	Result      *AnalysisResult `json:"result"`
}
