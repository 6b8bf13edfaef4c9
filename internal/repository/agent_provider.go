package repository

import (
	"context"

	"tams-dashboard/internal/models"
)

// AgentProvider is the data source behind the dashboard's agent cards.
type AgentProvider interface {
	ListAgents(ctx context.Context) ([]*models.Agent, error)
}

// AgentLister is the subset of the TAMS client used by APIAgentProvider.
type AgentLister interface {
	ListAgents(ctx context.Context) ([]*models.Agent, error)
}
