// Package llm provides the hosted-completion clients used by the
// classifier and the extraction engines. Every call is a single
// attempt with a bounded timeout; callers own the fallback to
// heuristics, so the clients never retry on their own.
package llm

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable is returned by clients that are not configured.
// Callers treat it like any other failure: fall back to heuristics.
var ErrUnavailable = errors.New("llm: no provider configured")

// Client issues one completion request.
type Client interface {
	// Complete sends the system and user prompts and returns the raw
	// completion text.
	Complete(ctx context.Context, system, user string) (string, error)

	// Available reports whether the client is configured and ready.
	Available() bool
}

// StripFences removes a leading/trailing markdown code fence from an
// LLM response so the remainder can be JSON-decoded. Hosted models
// wrap JSON in ```json blocks often enough that every decode path
// runs through this first.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// NoOpClient is the client used when no provider is configured.
type NoOpClient struct{}

// Complete always fails with ErrUnavailable.
func (NoOpClient) Complete(ctx context.Context, system, user string) (string, error) {
	return "", ErrUnavailable
}

// Available returns false.
func (NoOpClient) Available() bool {
	return false
}

var _ Client = NoOpClient{}
