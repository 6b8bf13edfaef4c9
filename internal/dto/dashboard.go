package dto

import (
	"time"

	"tams-dashboard/internal/risk"
)

type AgentCard struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	StatusTone     risk.Tone  `json:"status_tone"`
	CreatedAt      time.Time  `json:"created_at"`
	ExecutionCount int        `json:"execution_count"`
	LastExecution  *time.Time `json:"last_execution,omitempty"`
}

// SmokeTestView always renders; OK=false carries the failure indicator.
type SmokeTestView struct {
	OK        bool      `json:"ok"`
	Message   string    `json:"message"`
	RiskScore string    `json:"risk_score"`
	RiskTier  risk.Tier `json:"risk_tier,omitempty"`
	ErrorKind string    `json:"error_kind,omitempty"`
}

type SystemStatusView struct {
	Online    bool      `json:"online"`
	CheckedAt time.Time `json:"checked_at"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}
