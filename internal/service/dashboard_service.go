package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tams-dashboard/internal/dto"
	"tams-dashboard/internal/models"
	"tams-dashboard/internal/repository"
	"tams-dashboard/internal/risk"
	"tams-dashboard/pkg/metrics"
	"tams-dashboard/pkg/tamsclient"

	"go.uber.org/zap"
)

// PlatformClient is the part of tamsclient.Client used outside the analysis flow.
type PlatformClient interface {
	RunSmokeTest(ctx context.Context) (*models.SmokeTestResult, error)
	CheckHealth(ctx context.Context) error
	AgentStatus(ctx context.Context) (*models.AgentStatus, error)
	ExecutionHistory(ctx context.Context) (*models.ExecutionHistory, error)
}

type DashboardService struct {
	agents   repository.AgentProvider
	client   PlatformClient
	sessions *SessionStore
	metrics  *metrics.Collector
	logger   *zap.Logger
}

func NewDashboardService(
	agents repository.AgentProvider,
	client PlatformClient,
	sessions *SessionStore,
	collector *metrics.Collector,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		agents:   agents,
		client:   client,
		sessions: sessions,
		metrics:  collector,
		logger:   logger,
	}
}

func (s *DashboardService) ListAgentCards(ctx context.Context) ([]dto.AgentCard, error) {
	agents, err := s.agents.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	cards := make([]dto.AgentCard, 0, len(agents))
	for _, a := range agents {
		cards = append(cards, dto.AgentCard{
			ID:             a.ID,
			Name:           a.Name,
			Type:           string(a.Type),
			Status:         a.Status,
			StatusTone:     risk.AgentStatusTone(a.Status),
			CreatedAt:      a.CreatedAt,
			ExecutionCount: a.ExecutionCount,
			LastExecution:  a.LastExecution,
		})
	}
	return cards, nil
}

// RunSmokeTest never returns an error: failures come back as OK=false with
// the error kind filled in.
func (s *DashboardService) RunSmokeTest(ctx context.Context, sessionID string) dto.SmokeTestView {
	sess := s.sessions.GetOrCreate(sessionID)
	if !sess.SmokeTest.TryBegin() {
		return dto.SmokeTestView{
			OK:        false,
			Message:   "TAMS test already running",
			RiskScore: notAvailable,
			ErrorKind: "busy",
		}
	}
	defer sess.SmokeTest.End()

	result, err := s.client.RunSmokeTest(ctx)
	if err != nil {
		kind := tamsclient.KindOf(err)
		s.metrics.ObserveSmokeTest(false)
		s.logger.Error("TAMS smoke test failed", zap.String("kind", string(kind)), zap.Error(err))

		msg := "TAMS Test Failed"
		if kind == tamsclient.KindNetworkFailure {
			msg = "TAMS Test Error"
		}
		return dto.SmokeTestView{
			OK:        false,
			Message:   msg,
			RiskScore: notAvailable,
			ErrorKind: string(kind),
		}
	}

	score := *result.Result.FinalRecommendation.OverallRiskScore
	s.metrics.ObserveSmokeTest(true)
	s.logger.Info("TAMS smoke test passed", zap.Float64("risk_score", score))

	return dto.SmokeTestView{
		OK:        true,
		Message:   "TAMS Test Successful!",
		RiskScore: strconv.FormatFloat(score, 'f', -1, 64),
		RiskTier:  risk.RiskTier(score),
	}
}

func (s *DashboardService) SystemStatus(ctx context.Context) dto.SystemStatusView {
	err := s.client.CheckHealth(ctx)
	if err != nil {
		s.logger.Warn("TAMS health check failed", zap.String("kind", string(tamsclient.KindOf(err))), zap.Error(err))
	}
	return dto.SystemStatusView{
		Online:    err == nil,
		CheckedAt: time.Now().UTC(),
	}
}

func (s *DashboardService) AgentStatus(ctx context.Context) (*models.AgentStatus, error) {
	status, err := s.client.AgentStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get TAMS agent status: %w", err)
	}
	return status, nil
}

func (s *DashboardService) ExecutionHistory(ctx context.Context) (*models.ExecutionHistory, error) {
	history, err := s.client.ExecutionHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get TAMS execution history: %w", err)
	}
	return history, nil
}
