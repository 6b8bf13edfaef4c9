package dto

import (
	"tams-dashboard/internal/models"
	"tams-dashboard/internal/risk"
	"tams-dashboard/pkg/validation"
)

// AnalysisView is what the dashboard renders for one analysis. Every field
// is populated; missing upstream data shows up as "N/A" or 0.
type AnalysisView struct {
	Status         string             `json:"status"`
	Recommendation RecommendationView `json:"final_recommendation"`
	Correlation    CorrelationView    `json:"stage1"`
	Behavioral     BehavioralView     `json:"stage2"`
	Risk           RiskView           `json:"stage3"`
	Version        string             `json:"version"`
	ExecutionSecs  float64            `json:"execution_seconds"`
	Quality        validation.Quality `json:"request_quality"`
}

type RecommendationView struct {
	Classification     string       `json:"classification"`
	ClassificationTier risk.Tier    `json:"classification_tier"`
	RiskScore          float64      `json:"risk_score"`
	RiskTier           risk.Tier    `json:"risk_tier"`
	ConfidenceLevel    string       `json:"confidence_level"`
	NextActions        []ActionView `json:"next_actions"`
}

type ActionView struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

type CorrelationView struct {
	Classification string `json:"classification"`
	Confidence     string `json:"confidence"`
	HTML           string `json:"html,omitempty"`
}

type BehavioralView struct {
	AnomalyRating    string    `json:"anomaly_rating"`
	AnomalyTier      risk.Tier `json:"anomaly_tier"`
	ObservationCount int       `json:"observation_count"`
	Observations     []string  `json:"observations"`
	HTML             string    `json:"html,omitempty"`
}

type RiskView struct {
	RiskRating   string    `json:"risk_rating"`
	RiskTier     risk.Tier `json:"risk_tier"`
	FindingCount int       `json:"finding_count"`
	Findings     []string  `json:"findings"`
	HTML         string    `json:"html,omitempty"`
}

// AnalysisForm is the pre-filled state of the analysis form.
type AnalysisForm struct {
	Request          models.AlertRequest      `json:"request"`
	TransactionTypes []models.TransactionType `json:"transaction_types"`
}

type SubmitError struct {
	Error  string                       `json:"error"`
	Kind   string                       `json:"kind,omitempty"`
	Status int                          `json:"status,omitempty"`
	Fields []validation.ValidationError `json:"fields,omitempty"`
}
