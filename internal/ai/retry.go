package ai

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/spigell/talentscout/internal/utils"
	"go.uber.org/zap"
)

const (
	DefaultAttempts  = 3
	DefaultBaseDelay = 1500 * time.Millisecond

	defaultMaxLogLength = 200
)

// RetryConfig controls the Retrier.
type RetryConfig struct {
	Attempts     int
	BaseDelay    time.Duration
	MaxLogLength int
}

// Retrier calls a Generator up to Attempts times, waiting BaseDelay×attempt
// between failures. The last error is returned as is; deciding what to do
// about it is up to the caller.
type Retrier struct {
	generator Generator
	attempts  int
	baseDelay time.Duration
	maxLogLen int
	logger    *zap.Logger

	wait func(ctx context.Context, d time.Duration) error
}

// NewRetrier wraps generator. Zero values in cfg fall back to the defaults.
func NewRetrier(generator Generator, cfg RetryConfig, logger *zap.Logger) *Retrier {
	if cfg.Attempts <= 0 {
		cfg.Attempts = DefaultAttempts
	}
	if cfg.BaseDelay < 0 {
		cfg.BaseDelay = 0
	}
	if cfg.BaseDelay == 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.MaxLogLength <= 0 {
		cfg.MaxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Retrier{
		generator: generator,
		attempts:  cfg.Attempts,
		baseDelay: cfg.BaseDelay,
		maxLogLen: cfg.MaxLogLength,
		logger:    logger,
		wait:      utils.WaitFor,
	}
}

// Call implements Caller.
func (r *Retrier) Call(ctx context.Context, prompt string) (string, error) {
	r.logger.Debug("generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, r.maxLogLen)),
	)

	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		out, err := r.generator.GenerateContent(ctx, prompt)
		if err == nil {
			r.logger.Debug("generate content response",
				zap.Int("attempt", attempt),
				zap.Int("response_length", utf8.RuneCountInString(out)),
				zap.String("response_preview", utils.TruncateForLog(out, r.maxLogLen)),
			)
			return out, nil
		}
		lastErr = err

		if attempt == r.attempts {
			break
		}

		delay := r.baseDelay * time.Duration(attempt)
		r.logger.Warn("generation attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", r.attempts),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)

		if err := r.wait(ctx, delay); err != nil {
			return "", fmt.Errorf("waiting before retry: %w", err)
		}
	}

	return "", fmt.Errorf("generation failed after %d attempts: %w", r.attempts, lastErr)
}

// Attempts reports the configured maximum number of attempts.
func (r *Retrier) Attempts() int { return r.attempts }
