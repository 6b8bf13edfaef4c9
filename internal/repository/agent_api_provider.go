package repository

import (
	"context"
	"fmt"

	"tams-dashboard/internal/models"

	"go.uber.org/zap"
)

// APIAgentProvider reads agents from the platform's listing endpoint.
type APIAgentProvider struct {
	client AgentLister
	logger *zap.Logger
}

func NewAPIAgentProvider(client AgentLister, logger *zap.Logger) *APIAgentProvider {
	return &APIAgentProvider{
		client: client,
		logger: logger,
	}
}

func (p *APIAgentProvider) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	agents, err := p.client.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents from platform: %w", err)
	}

	p.logger.Debug("Agents listed from platform", zap.Int("count", len(agents)))
	return agents, nil
}
