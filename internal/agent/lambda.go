package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// LambdaProxy invokes the Bedrock agent through the proxy Lambda. The
// Lambda accepts {prompt, sessionId} and answers with an API-Gateway
// style {statusCode, body} envelope whose body holds the agent reply.
type LambdaProxy struct {
	client       *lambda.Client
	functionName string
}

// NewLambdaProxy builds the proxy around an already-loaded AWS config.
func NewLambdaProxy(cfg aws.Config, functionName string) *LambdaProxy {
	return &LambdaProxy{
		client:       lambda.NewFromConfig(cfg),
		functionName: functionName,
	}
}

func (p *LambdaProxy) Invoke(ctx context.Context, prompt, sessionID string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"prompt":    prompt,
		"sessionId": sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("marshal lambda payload: %w", err)
	}

	out, err := p.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(p.functionName),
		Payload:      payload,
	})
	if err != nil {
		return "", fmt.Errorf("%w: invoke %s: %v", ErrUpstream, p.functionName, err)
	}
	if out.FunctionError != nil {
		detail := strings.TrimSpace(string(out.Payload))
		return "", fmt.Errorf("%w: lambda %s returned %s: %s",
			ErrUpstream, p.functionName, aws.ToString(out.FunctionError), detail)
	}

	return unwrapEnvelope(out.Payload), nil
}

// unwrapEnvelope extracts the body from an API-Gateway style response;
// payloads without the envelope pass through as-is.
func unwrapEnvelope(payload []byte) string {
	var envelope struct {
		StatusCode int    `json:"statusCode"`
		Body       string `json:"body"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Body != "" {
		return envelope.Body
	}
	return string(payload)
}

// LambdaForwarder sends arbitrary JSON payloads to a named Lambda, used
// for the chat-history vectorization function.
type LambdaForwarder struct {
	client       *lambda.Client
	functionName string
}

func NewLambdaForwarder(cfg aws.Config, functionName string) *LambdaForwarder {
	return &LambdaForwarder{
		client:       lambda.NewFromConfig(cfg),
		functionName: functionName,
	}
}

// Forward invokes the function once and returns its raw payload.
func (f *LambdaForwarder) Forward(ctx context.Context, payload []byte) ([]byte, error) {
	out, err := f.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(f.functionName),
		Payload:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invoke %s: %v", ErrUpstream, f.functionName, err)
	}
	if out.FunctionError != nil {
		return nil, fmt.Errorf("%w: lambda %s returned %s: %s",
			ErrUpstream, f.functionName, aws.ToString(out.FunctionError), strings.TrimSpace(string(out.Payload)))
	}
	return out.Payload, nil
}
