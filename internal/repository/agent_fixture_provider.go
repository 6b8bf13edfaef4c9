package repository

import (
	"context"
	"time"

	"tams-dashboard/internal/models"
)

// FixtureAgentProvider serves a fixed agent list for tests and offline demos.
type FixtureAgentProvider struct {
	agents []*models.Agent
}

// NewFixtureAgentProvider returns a provider over agents, or over the
// default demo set when agents is empty.
func NewFixtureAgentProvider(agents ...*models.Agent) *FixtureAgentProvider {
	if len(agents) == 0 {
		agents = DefaultFixtureAgents()
	}
	return &FixtureAgentProvider{agents: agents}
}

func (p *FixtureAgentProvider) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*models.Agent, len(p.agents))
	for i, a := range p.agents {
		cp := *a
		out[i] = &cp
	}
	return out, nil
}

func DefaultFixtureAgents() []*models.Agent {
	return []*models.Agent{
		{
			ID:             "1",
			Name:           "TAMS AI-Assist",
			Type:           models.AgentTypeAutomation,
			Status:         "active",
			CreatedAt:      mustTime("2024-12-16T10:00:00Z"),
			ExecutionCount: 45,
			LastExecution:  timePtr("2024-12-16T14:30:00Z"),
		},
		{
			ID:             "2",
			Name:           "Email Automation Agent",
			Type:           models.AgentTypeAutomation,
			Status:         "idle",
			CreatedAt:      mustTime("2024-12-15T09:00:00Z"),
			ExecutionCount: 23,
			LastExecution:  timePtr("2024-12-16T12:15:00Z"),
		},
		{
			ID:             "3",
			Name:           "Document Processing Agent",
			Type:           models.AgentTypeAssistive,
			Status:         "idle",
			CreatedAt:      mustTime("2024-12-14T16:30:00Z"),
			ExecutionCount: 12,
			LastExecution:  timePtr("2024-12-16T11:45:00Z"),
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(s string) *time.Time {
	t := mustTime(s)
	return &t
}
