// Package risk holds the presentation rules that turn analysis scores and
// labels into display tiers. Everything here is pure and deterministic.
package risk

import "strings"

type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

const (
	HighRiskThreshold   = 7.0
	MediumRiskThreshold = 4.0
)

// RiskTier maps a risk score onto a tier. Scores outside 0..10 are not
// clamped; NaN compares false everywhere and lands in TierLow.
func RiskTier(score float64) Tier {
	switch {
	case score >= HighRiskThreshold:
		return TierHigh
	case score >= MediumRiskThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// ClassificationTier maps a final classification label onto a tier by
// substring. Unknown labels fall back to TierLow.
func ClassificationTier(label string) Tier {
	switch {
	case strings.Contains(label, "High Priority"):
		return TierHigh
	case strings.Contains(label, "Medium Priority"):
		return TierMedium
	default:
		return TierLow
	}
}

// AnomalyTier maps the behavioral stage's ordinal rating.
func AnomalyTier(rating string) Tier {
	switch rating {
	case "High":
		return TierHigh
	case "Medium":
		return TierMedium
	default:
		return TierLow
	}
}

type Tone string

const (
	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
	ToneNegative Tone = "negative"
)

func AgentStatusTone(status string) Tone {
	switch status {
	case "active":
		return TonePositive
	case "error":
		return ToneNegative
	default:
		return ToneNeutral
	}
}
