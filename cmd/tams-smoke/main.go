package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"tams-dashboard/internal/models"
	"tams-dashboard/internal/risk"
	"tams-dashboard/internal/service"
	"tams-dashboard/pkg/config"
	"tams-dashboard/pkg/logger"
	"tams-dashboard/pkg/tamsclient"
	"tams-dashboard/pkg/validation"

	"go.uber.org/zap"
)

// tams-smoke checks that a TAMS deployment is reachable and answering.
// Exit status is non-zero when any step fails.
func main() {
	baseURL := flag.String("url", "", "TAMS base URL (defaults to TAMS_BASE_URL)")
	timeout := flag.Duration("timeout", 0, "per-request timeout (defaults to TAMS_TIMEOUT_SECONDS)")
	analyze := flag.Bool("analyze", false, "also submit the sample alert to /analyze")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *baseURL != "" {
		cfg.TAMS.BaseURL = *baseURL
	}
	if *timeout > 0 {
		cfg.TAMS.Timeout = *timeout
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	appLogger := logger.Named("smoke")

	client := tamsclient.New(cfg.TAMS.BaseURL,
		tamsclient.WithTimeout(cfg.TAMS.Timeout),
		tamsclient.WithLogger(appLogger),
	)
	ctx := context.Background()

	ok := true

	if err := client.CheckHealth(ctx); err != nil {
		appLogger.Error("Health check failed", zap.String("kind", string(tamsclient.KindOf(err))), zap.Error(err))
		fmt.Println("health:     offline")
		ok = false
	} else {
		fmt.Println("health:     online")
	}

	smoke, err := client.RunSmokeTest(ctx)
	if err != nil {
		appLogger.Error("Smoke test failed", zap.String("kind", string(tamsclient.KindOf(err))), zap.Error(err))
		fmt.Printf("smoke test: failed (%s)\n", tamsclient.KindOf(err))
		ok = false
	} else {
		fmt.Printf("smoke test: ok, risk tier %s\n", service.RiskTierOf(smoke.Result))
	}

	if *analyze {
		if !runSample(ctx, client, appLogger) {
			ok = false
		}
	}

	if !ok {
		os.Exit(1)
	}
}

func runSample(ctx context.Context, client *tamsclient.Client, log *zap.Logger) bool {
	req := &models.AlertRequest{
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Merchant:        "Unknown Online Store",
		Amount:          models.AmountOf(299.99),
		TransactionType: models.CardNotPresent,
		UserID:          "user_12345",
	}
	if _, err := validation.NewValidator(log).ValidateAlert(req); err != nil {
		log.Error("Sample alert rejected", zap.Error(err))
		return false
	}

	result, err := client.Analyze(ctx, req)
	if err != nil {
		log.Error("Sample analysis failed", zap.String("kind", string(tamsclient.KindOf(err))), zap.Error(err))
		fmt.Printf("analyze:    failed (%s)\n", tamsclient.KindOf(err))
		return false
	}

	rec := result.FinalRecommendation
	fmt.Printf("analyze:    %s [%s], risk %.1f [%s]\n",
		rec.FinalClassification,
		risk.ClassificationTier(rec.FinalClassification),
		*rec.OverallRiskScore,
		service.RiskTierOf(result),
	)
	return true
}
