package service

import (
	"strconv"
	"strings"

	"tams-dashboard/internal/dto"
	"tams-dashboard/internal/models"
	"tams-dashboard/internal/risk"
)

const notAvailable = "N/A"

// HTMLSanitizer cleans stage markup before it reaches the browser.
type HTMLSanitizer interface {
	SanitizeHTML(fragment string) string
}

// BuildAnalysisView flattens a result into display values. It never fails:
// absent stages and fields fall back to "N/A" and 0.
func BuildAnalysisView(result *models.AnalysisResult, sanitizer HTMLSanitizer) *dto.AnalysisView {
	if result == nil {
		result = &models.AnalysisResult{}
	}

	view := &dto.AnalysisView{
		Status:         orNA(result.Status),
		Recommendation: recommendationView(result.FinalRecommendation),
		Correlation:    correlationView(result.Analysis.Correlation, sanitizer),
		Behavioral:     behavioralView(result.Analysis.Behavioral, sanitizer),
		Risk:           riskView(result.Analysis.Risk, sanitizer),
		Version:        orNA(result.Version),
	}
	if result.ExecutionTimeMs != nil {
		view.ExecutionSecs = *result.ExecutionTimeMs / 1000
	}
	return view
}

func recommendationView(rec *models.FinalRecommendation) dto.RecommendationView {
	if rec == nil {
		return dto.RecommendationView{
			Classification:     notAvailable,
			ClassificationTier: risk.ClassificationTier(""),
			RiskTier:           risk.RiskTier(0),
			ConfidenceLevel:    notAvailable,
			NextActions:        []dto.ActionView{},
		}
	}

	var score float64
	if rec.OverallRiskScore != nil {
		score = *rec.OverallRiskScore
	}

	actions := make([]dto.ActionView, 0, len(rec.NextActions))
	for i, a := range rec.NextActions {
		actions = append(actions, dto.ActionView{Step: i + 1, Text: a})
	}

	return dto.RecommendationView{
		Classification:     orNA(rec.FinalClassification),
		ClassificationTier: risk.ClassificationTier(rec.FinalClassification),
		RiskScore:          score,
		RiskTier:           risk.RiskTier(score),
		ConfidenceLevel:    orNA(rec.ConfidenceLevel),
		NextActions:        actions,
	}
}

func correlationView(stage *models.CorrelationStage, sanitizer HTMLSanitizer) dto.CorrelationView {
	if stage == nil {
		return dto.CorrelationView{Classification: notAvailable, Confidence: notAvailable}
	}
	return dto.CorrelationView{
		Classification: orNA(stage.Classification),
		Confidence:     orNA(string(stage.ConfidenceScore)),
		HTML:           sanitize(sanitizer, stage.HTMLContent),
	}
}

func behavioralView(stage *models.BehavioralStage, sanitizer HTMLSanitizer) dto.BehavioralView {
	if stage == nil {
		return dto.BehavioralView{
			AnomalyRating: notAvailable,
			AnomalyTier:   risk.AnomalyTier(""),
			Observations:  []string{},
		}
	}
	return dto.BehavioralView{
		AnomalyRating:    orNA(stage.AnomalyRating),
		AnomalyTier:      risk.AnomalyTier(stage.AnomalyRating),
		ObservationCount: len(stage.KeyAnomalousObservations),
		Observations:     nonNil(stage.KeyAnomalousObservations),
		HTML:             sanitize(sanitizer, stage.HTMLContent),
	}
}

func riskView(stage *models.RiskStage, sanitizer HTMLSanitizer) dto.RiskView {
	if stage == nil {
		return dto.RiskView{
			RiskRating: notAvailable,
			RiskTier:   risk.RiskTier(0),
			Findings:   []string{},
		}
	}

	rating := notAvailable
	var score float64
	if stage.RiskRating != nil {
		score = *stage.RiskRating
		rating = strconv.FormatFloat(score, 'f', -1, 64)
	}

	return dto.RiskView{
		RiskRating:   rating,
		RiskTier:     risk.RiskTier(score),
		FindingCount: len(stage.KeyFindings),
		Findings:     nonNil(stage.KeyFindings),
		HTML:         sanitize(sanitizer, stage.HTMLContent),
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// Without a sanitizer the fragment is dropped rather than passed through.
func sanitize(sanitizer HTMLSanitizer, fragment string) string {
	if fragment == "" || sanitizer == nil {
		return ""
	}
	return sanitizer.SanitizeHTML(fragment)
}
