package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tams-dashboard/internal/dto"
	"tams-dashboard/internal/models"
	"tams-dashboard/internal/risk"
	"tams-dashboard/pkg/metrics"
	"tams-dashboard/pkg/tamsclient"
	"tams-dashboard/pkg/validation"

	"go.uber.org/zap"
)

// AnalysisClient is the part of tamsclient.Client the analysis flow needs.
type AnalysisClient interface {
	Analyze(ctx context.Context, req *models.AlertRequest) (*models.AnalysisResult, error)
}

type AlertValidator interface {
	ValidateAlert(req *models.AlertRequest) (validation.Quality, error)
}

type AnalysisService struct {
	client    AnalysisClient
	validator AlertValidator
	sanitizer HTMLSanitizer
	sessions  *SessionStore
	metrics   *metrics.Collector
	logger    *zap.Logger
	now       func() time.Time
}

func NewAnalysisService(
	client AnalysisClient,
	validator AlertValidator,
	sanitizer HTMLSanitizer,
	sessions *SessionStore,
	collector *metrics.Collector,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		client:    client,
		validator: validator,
		sanitizer: sanitizer,
		sessions:  sessions,
		metrics:   collector,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit validates req and sends it to the analysis service on behalf of
// one session. While a submission is outstanding, further submissions for
// the same session fail with ErrSubmissionInProgress and make no call.
// On failure the session keeps its previous result.
func (s *AnalysisService) Submit(ctx context.Context, sessionID string, req *models.AlertRequest) (*dto.AnalysisView, error) {
	quality, err := s.validator.ValidateAlert(req)
	if err != nil {
		s.metrics.ObserveAnalysis("rejected", 0)
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if quality.Degraded {
		s.metrics.IncDegraded()
		s.logger.Warn("Submitting degraded alert",
			zap.String("session_id", sessionID),
			zap.Strings("reasons", quality.Reasons),
		)
	}

	sess := s.sessions.GetOrCreate(sessionID)
	if !sess.Analysis.TryBegin() {
		s.metrics.ObserveAnalysis("busy", 0)
		return nil, ErrSubmissionInProgress
	}
	defer sess.Analysis.End()

	// the stored request must not alias the caller's
	sent := *req
	sent.Amount = models.AmountOf(*req.Amount)

	start := s.now()
	result, err := s.client.Analyze(ctx, &sent)
	elapsed := s.now().Sub(start)
	if err != nil {
		kind := tamsclient.KindOf(err)
		sess.recordFailure(string(kind))
		s.metrics.ObserveAnalysis(string(kind), elapsed)
		s.logger.Error("TAMS analysis failed",
			zap.String("session_id", sessionID),
			zap.String("kind", string(kind)),
			zap.Int("upstream_status", tamsclient.StatusCode(err)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to analyze alert: %w", err)
	}

	view := BuildAnalysisView(result, s.sanitizer)
	view.Quality = quality
	sess.recordResult(&sent, view)

	s.metrics.ObserveAnalysis("success", elapsed)
	s.metrics.ObserveRiskTier(string(view.Recommendation.RiskTier))

	s.logger.Info("TAMS analysis completed",
		zap.String("session_id", sessionID),
		zap.String("classification", view.Recommendation.Classification),
		zap.Float64("risk_score", view.Recommendation.RiskScore),
		zap.String("risk_tier", string(view.Recommendation.RiskTier)),
		zap.Duration("elapsed", elapsed),
	)

	return view, nil
}

// Current returns the last successful view for the session.
func (s *AnalysisService) Current(sessionID string) (*dto.AnalysisView, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	view, ok := sess.View()
	if !ok {
		return nil, ErrNoResult
	}
	return view, nil
}

// InProgress reports whether the session has a submission outstanding.
func (s *AnalysisService) InProgress(sessionID string) bool {
	sess, ok := s.sessions.Get(sessionID)
	return ok && sess.Analysis.Busy()
}

// DefaultForm returns the form pre-filled with the sample alert, or with the
// session's last submitted alert when there is one.
func (s *AnalysisService) DefaultForm(sessionID string) dto.AnalysisForm {
	form := dto.AnalysisForm{
		Request: models.AlertRequest{
			Timestamp:       s.now().UTC().Format(time.RFC3339),
			Merchant:        "Unknown Online Store",
			Amount:          models.AmountOf(299.99),
			TransactionType: models.CardNotPresent,
			UserID:          "user_12345",
		},
		TransactionTypes: []models.TransactionType{models.CardNotPresent, models.CardPresent},
	}

	if sess, ok := s.sessions.Get(sessionID); ok {
		if last := sess.LastRequest(); last != nil {
			form.Request = *last
		}
	}
	return form
}

// RiskTierOf is a convenience for callers holding a raw result.
func RiskTierOf(result *models.AnalysisResult) risk.Tier {
	if result == nil || result.FinalRecommendation == nil || result.FinalRecommendation.OverallRiskScore == nil {
		return risk.RiskTier(0)
	}
	return risk.RiskTier(*result.FinalRecommendation.OverallRiskScore)
}

// IsUpstreamError reports whether err came from the analysis service rather
// than from local validation or the single-flight guard.
func IsUpstreamError(err error) bool {
	if err == nil || errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrSubmissionInProgress) {
		return false
	}
	return tamsclient.KindOf(err) != tamsclient.KindUnknown
}
