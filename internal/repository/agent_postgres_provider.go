package repository

import (
	"context"
	"fmt"
	"time"

	"tams-dashboard/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresAgentProvider reads the platform's agents table directly, with run
// statistics aggregated from executions.
type PostgresAgentProvider struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresAgentProvider(db *pgxpool.Pool, logger *zap.Logger) *PostgresAgentProvider {
	return &PostgresAgentProvider{
		db:     db,
		logger: logger,
	}
}

func listAgentsQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"a.id", "a.name", "a.agent_type", "a.status", "a.created_at",
		"COUNT(e.id) AS execution_count", "MAX(e.started_at) AS last_execution",
	).
		From("agents a").
		LeftJoin("executions e ON e.agent_id = a.id").
		Where(squirrel.NotEq{"a.status": "stopped"}).
		GroupBy("a.id", "a.name", "a.agent_type", "a.status", "a.created_at").
		OrderBy("a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (p *PostgresAgentProvider) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	sql, args, err := listAgentsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build agents query: %w", err)
	}

	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}
	defer rows.Close()

	var agents []*models.Agent
	for rows.Next() {
		var (
			id            uuid.UUID
			agent         models.Agent
			status        *string
			lastExecution *time.Time
		)
		if err := rows.Scan(
			&id, &agent.Name, &agent.Type, &status, &agent.CreatedAt, &agent.ExecutionCount, &lastExecution,
		); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}

		agent.ID = id.String()
		agent.LastExecution = lastExecution
		agent.Status = dashboardStatus(status)
		agents = append(agents, &agent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate agents: %w", err)
	}

	p.logger.Debug("Agents listed from database", zap.Int("count", len(agents)))
	return agents, nil
}

// dashboardStatus folds the platform's lifecycle states into the dashboard's
// active/idle/error vocabulary.
func dashboardStatus(status *string) string {
	if status == nil {
		return "idle"
	}
	switch *status {
	case "running":
		return "active"
	case "error":
		return "error"
	default:
		return "idle"
	}
}
