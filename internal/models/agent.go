package models

import (
	"encoding/json"
	"time"
)

type AgentType string

const (
	AgentTypeAutomation AgentType = "automation"
	AgentTypeAssistive  AgentType = "assistive"
)

type Agent struct {
	ID             string     `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Type           AgentType  `json:"type" db:"type"`
	Status         string     `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	ExecutionCount int        `json:"execution_count" db:"execution_count"`
	LastExecution  *time.Time `json:"last_execution,omitempty" db:"last_execution"`
}

// AgentStatus mirrors GET /api/v1/tams/agent/status.
type AgentStatus struct {
	AgentName      string `json:"agent_name"`
	AgentType      string `json:"agent_type"`
	Status         string `json:"status"`
	Version        string `json:"version"`
	CreatedAt      string `json:"created_at"`
	ExecutionCount int    `json:"execution_count"`
}

// ExecutionHistory mirrors GET /api/v1/tams/agent/history. History entries
// are produced by the analysis engine and kept opaque.
type ExecutionHistory struct {
	AgentName       string            `json:"agent_name"`
	History         []json.RawMessage `json:"execution_history"`
	TotalExecutions int               `json:"total_executions"`
}
