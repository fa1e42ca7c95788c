// Package extract provides the four structured-content extraction
// engines: todos, events, contacts, and shopping lists. Each engine
// tries the LLM path first and falls back to pure heuristics on any
// failure. Extraction never fails: a best-effort, possibly-empty
// record always comes back.
package extract

import (
	"context"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/noteflow/internal/config"
	"github.com/fyrsmithlabs/noteflow/internal/llm"
	"github.com/fyrsmithlabs/noteflow/internal/metrics"
)

// Engine holds the shared dependencies of the four extractors.
type Engine struct {
	client  llm.Client
	cfg     config.ExtractConfig
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewEngine creates an extraction engine. client may be
// llm.NoOpClient{}; every extraction then runs pure heuristics.
// m may be nil.
func NewEngine(client llm.Client, cfg config.ExtractConfig, logger *zap.Logger, m *metrics.Metrics) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		client:  client,
		cfg:     cfg,
		logger:  logger.Named("extract"),
		metrics: m,
	}
}

// useLLM reports whether the LLM path should be attempted at all.
func (e *Engine) useLLM() bool {
	return e.cfg.UseLLM && e.client.Available()
}

// orElse is the explicit fallback combinator: it returns v when the
// LLM path succeeded, otherwise logs the failure and returns the
// heuristic result. Keeping the fallback in the signature (instead of
// a swallowed catch) makes the recovery path visible at call sites.
func orElse[T any](e *Engine, kind string, v T, err error, heuristic func() T) T {
	if err == nil {
		return v
	}
	e.logger.Debug("llm extraction failed, falling back to heuristics",
		zap.String("kind", kind),
		zap.Error(err))
	e.metrics.ObserveLLMFallback("extract_" + kind)
	return heuristic()
}

// complete issues one bounded completion request.
func (e *Engine) complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.LLMTimeout.Duration())
	defer cancel()
	return e.client.Complete(ctx, system, user)
}
