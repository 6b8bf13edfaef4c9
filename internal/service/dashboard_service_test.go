package service

import (
	"context"
	"errors"
	"testing"

	"tams-dashboard/internal/models"
	"tams-dashboard/internal/repository"
	"tams-dashboard/internal/risk"
	"tams-dashboard/pkg/metrics"
	"tams-dashboard/pkg/tamsclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type platformClientStub struct {
	smoke     *models.SmokeTestResult
	smokeErr  error
	healthErr error
	started   chan struct{}
	release   chan struct{}
}

func (s *platformClientStub) RunSmokeTest(ctx context.Context) (*models.SmokeTestResult, error) {
	if s.started != nil {
		s.started <- struct{}{}
		<-s.release
	}
	return s.smoke, s.smokeErr
}

func (s *platformClientStub) CheckHealth(ctx context.Context) error { return s.healthErr }

func (s *platformClientStub) AgentStatus(ctx context.Context) (*models.AgentStatus, error) {
	return &models.AgentStatus{AgentName: "TAMS AI-Assist", Status: "active"}, nil
}

func (s *platformClientStub) ExecutionHistory(ctx context.Context) (*models.ExecutionHistory, error) {
	return nil, &tamsclient.HTTPError{Op: "history", StatusCode: 500}
}

func newDashboardService(client PlatformClient) *DashboardService {
	return NewDashboardService(
		repository.NewFixtureAgentProvider(repository.DefaultFixtureAgents()...),
		client,
		NewSessionStore(),
		metrics.NewCollector(),
		zap.NewNop(),
	)
}

func TestListAgentCards(t *testing.T) {
	svc := newDashboardService(&platformClientStub{})

	cards, err := svc.ListAgentCards(context.Background())

	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "TAMS AI-Assist", cards[0].Name)
	assert.Equal(t, risk.TonePositive, cards[0].StatusTone)
	assert.Equal(t, risk.ToneNeutral, cards[1].StatusTone)
	assert.Equal(t, "assistive", cards[2].Type)
}

func TestRunSmokeTest_Success(t *testing.T) {
	client := &platformClientStub{smoke: &models.SmokeTestResult{
		Message: "TAMS test completed successfully",
		Result: &models.AnalysisResult{
			FinalRecommendation: &models.FinalRecommendation{OverallRiskScore: score(8.5)},
		},
	}}
	svc := newDashboardService(client)

	view := svc.RunSmokeTest(context.Background(), "s1")

	assert.True(t, view.OK)
	assert.Equal(t, "TAMS Test Successful!", view.Message)
	assert.Equal(t, "8.5", view.RiskScore)
	assert.Equal(t, risk.TierHigh, view.RiskTier)
}

func TestRunSmokeTest_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		kind    string
	}{
		{"http error", &tamsclient.HTTPError{Op: "test", StatusCode: 500}, "TAMS Test Failed", "http_error"},
		{"network", &tamsclient.NetworkError{Op: "test", Err: errors.New("refused")}, "TAMS Test Error", "network_failure"},
		{"malformed", &tamsclient.MalformedResponseError{Op: "test", Reason: "bad json"}, "TAMS Test Failed", "malformed_response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newDashboardService(&platformClientStub{smokeErr: tt.err})

			view := svc.RunSmokeTest(context.Background(), "s1")

			assert.False(t, view.OK)
			assert.Equal(t, tt.message, view.Message)
			assert.Equal(t, tt.kind, view.ErrorKind)
			assert.Equal(t, "N/A", view.RiskScore)
		})
	}
}

func TestRunSmokeTest_Busy(t *testing.T) {
	client := &platformClientStub{
		smokeErr: &tamsclient.HTTPError{Op: "test", StatusCode: 500},
		started:  make(chan struct{}, 1),
		release:  make(chan struct{}),
	}
	svc := newDashboardService(client)

	done := make(chan struct{})
	go func() {
		svc.RunSmokeTest(context.Background(), "s1")
		close(done)
	}()
	<-client.started

	view := svc.RunSmokeTest(context.Background(), "s1")
	assert.Equal(t, "busy", view.ErrorKind)

	close(client.release)
	<-done
}

func TestSystemStatus(t *testing.T) {
	online := newDashboardService(&platformClientStub{}).SystemStatus(context.Background())
	assert.True(t, online.Online)

	offline := newDashboardService(&platformClientStub{
		healthErr: &tamsclient.NetworkError{Op: "health", Err: errors.New("refused")},
	}).SystemStatus(context.Background())
	assert.False(t, offline.Online)
	assert.False(t, offline.CheckedAt.IsZero())
}

func TestAgentStatusAndHistory(t *testing.T) {
	svc := newDashboardService(&platformClientStub{})

	status, err := svc.AgentStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "active", status.Status)

	_, err = svc.ExecutionHistory(context.Background())
	assert.Equal(t, tamsclient.KindHTTPError, tamsclient.KindOf(err))
}
