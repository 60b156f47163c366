package impl

import (
	"io"
	"log/slog"
	"time"

	"lapak/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(processingTimeout time.Duration) *config.Config {
	return &config.Config{
		Onboarding: &config.OnboardingConfig{
			ProcessingTimeout: processingTimeout,
		},
	}
}
