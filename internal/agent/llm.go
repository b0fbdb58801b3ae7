package agent

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// chatPrompt frames the raw user message for the plain-LLM backend so
// its replies use the listing shapes the extract package understands.
const chatPrompt = `You are a job search assistant. Answer the user's message.
When you list job openings, use numbered lines like
"1. Job Title at Company in City, State" and, if you change search
filters, include an <update_dashboard>{"filters":{...}}</update_dashboard> block.

User message:
%s`

// LLMBackend answers chat messages with a plain LLM instead of the
// Bedrock agent. Used for local development when no AWS wiring exists.
type LLMBackend struct {
	model llms.Model
}

// NewLLMBackend initializes the Gemini client once; the same client is
// reused for every request.
func NewLLMBackend(ctx context.Context, apiKey, modelName string) (*LLMBackend, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}
	return &LLMBackend{model: llm}, nil
}

func (l *LLMBackend) Invoke(ctx context.Context, prompt, sessionID string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, l.model, fmt.Sprintf(chatPrompt, prompt))
	if err != nil {
		return "", fmt.Errorf("%w: llm generate: %v", ErrUpstream, err)
	}
	return resp, nil
}
