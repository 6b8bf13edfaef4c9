// Package tamsclient talks to the external TAMS analysis service.
//
// Every call is fired once: there is no retry and no caching. Failures are
// reported as *NetworkError, *HTTPError or *MalformedResponseError.
package tamsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"tams-dashboard/internal/models"

	"go.uber.org/zap"
)

const (
	DefaultTimeout = 30 * time.Second

	analyzePath = "/api/v1/tams/analyze"
	testPath    = "/api/v1/tams/test"
	healthPath  = "/api/v1/health/"
	agentsPath  = "/api/v1/agents/"
	statusPath  = "/api/v1/tams/agent/status"
	historyPath = "/api/v1/tams/agent/history"

	maxErrorBody = 4 << 10
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

// WithTimeout bounds every request issued by the client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Analyze submits a transaction alert and returns the validated report.
func (c *Client) Analyze(ctx context.Context, req *models.AlertRequest) (*models.AnalysisResult, error) {
	const op = "analyze"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal alert request: %w", err)
	}

	var result models.AnalysisResult
	if err := c.do(ctx, op, http.MethodPost, analyzePath, body, &result); err != nil {
		return nil, err
	}

	if err := validateResult(&result); err != nil {
		return nil, &MalformedResponseError{Op: op, Reason: err.Error()}
	}

	c.logger.Debug("TAMS analysis received",
		zap.String("status", result.Status),
		zap.String("version", result.Version),
	)

	return &result, nil
}

// RunSmokeTest triggers the service's built-in sample analysis.
func (c *Client) RunSmokeTest(ctx context.Context) (*models.SmokeTestResult, error) {
	const op = "test"

	var result models.SmokeTestResult
	if err := c.do(ctx, op, http.MethodPost, testPath, nil, &result); err != nil {
		return nil, err
	}

	if result.Result == nil || result.Result.FinalRecommendation == nil {
		return nil, &MalformedResponseError{Op: op, Reason: "missing result.final_recommendation"}
	}
	score := result.Result.FinalRecommendation.OverallRiskScore
	if score == nil || math.IsNaN(*score) || math.IsInf(*score, 0) {
		return nil, &MalformedResponseError{Op: op, Reason: "missing or non-numeric overall_risk_score"}
	}

	return &result, nil
}

// CheckHealth returns nil for any 2xx response. The body is ignored.
func (c *Client) CheckHealth(ctx context.Context) error {
	return c.do(ctx, "health", http.MethodGet, healthPath, nil, nil)
}

// ListAgents queries the platform's agent listing endpoint.
func (c *Client) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	var payload []agentPayload
	if err := c.do(ctx, "list agents", http.MethodGet, agentsPath, nil, &payload); err != nil {
		return nil, err
	}

	agents := make([]*models.Agent, 0, len(payload))
	for _, p := range payload {
		agents = append(agents, p.toModel())
	}
	return agents, nil
}

func (c *Client) AgentStatus(ctx context.Context) (*models.AgentStatus, error) {
	var status models.AgentStatus
	if err := c.do(ctx, "agent status", http.MethodGet, statusPath, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) ExecutionHistory(ctx context.Context) (*models.ExecutionHistory, error) {
	var history models.ExecutionHistory
	if err := c.do(ctx, "agent history", http.MethodGet, historyPath, nil, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// do issues a single request. A nil out skips decoding.
func (c *Client) do(ctx context.Context, op, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("TAMS request failed", zap.String("op", op), zap.Error(err))
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("TAMS response",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(bodyBytes))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return &NetworkError{Op: op, Err: ctx.Err()}
		}
		return &MalformedResponseError{Op: op, Reason: "failed to decode body", Err: err}
	}

	return nil
}

func validateResult(r *models.AnalysisResult) error {
	if r.FinalRecommendation == nil {
		return fmt.Errorf("missing final_recommendation")
	}
	score := r.FinalRecommendation.OverallRiskScore
	if score == nil {
		return fmt.Errorf("missing final_recommendation.overall_risk_score")
	}
	if math.IsNaN(*score) || math.IsInf(*score, 0) {
		return fmt.Errorf("overall_risk_score is not finite")
	}
	if r.Version == "" {
		return fmt.Errorf("missing version")
	}
	if r.ExecutionTimeMs != nil && *r.ExecutionTimeMs < 0 {
		return fmt.Errorf("execution_time_ms is negative")
	}
	return nil
}

// agentPayload accepts both the platform's agent rows (numeric id, is_active)
// and the richer dashboard shape.
type agentPayload struct {
	ID             models.FlexString `json:"id"`
	Name           string            `json:"name"`
	Type           models.AgentType  `json:"type"`
	Status         string            `json:"status"`
	IsActive       *bool             `json:"is_active"`
	CreatedAt      string            `json:"created_at"`
	ExecutionCount int               `json:"execution_count"`
	LastExecution  string            `json:"last_execution"`
}

func (p agentPayload) toModel() *models.Agent {
	status := p.Status
	if status == "" && p.IsActive != nil {
		if *p.IsActive {
			status = "active"
		} else {
			status = "idle"
		}
	}
	agent := &models.Agent{
		ID:             string(p.ID),
		Name:           p.Name,
		Type:           p.Type,
		Status:         status,
		ExecutionCount: p.ExecutionCount,
	}
	if t, ok := parseTime(p.CreatedAt); ok {
		agent.CreatedAt = t
	}
	if t, ok := parseTime(p.LastExecution); ok {
		agent.LastExecution = &t
	}
	return agent
}

// The platform serialises naive datetimes without a zone; those are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
