// Package agent wraps the upstream conversational backends: the Bedrock
// agent behind a Lambda proxy, the Bedrock agent runtime directly, or a
// plain LLM for local development.
package agent

import (
	"context"
	"errors"
)

// Client is one upstream agent backend. Invoke sends a user prompt with
// its session id and returns the agent's raw text reply. The reply may
// be prose, JSON, doubly-encoded JSON or tagged pseudo-XML; callers run
// it through the extract package.
type Client interface {
	Invoke(ctx context.Context, prompt, sessionID string) (string, error)
}

// ErrUpstream marks failures of the upstream agent call itself, as
// opposed to local failures. Handlers map it to 502.
var ErrUpstream = errors.New("upstream agent failure")
