package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
)

// BedrockAgent talks to the Bedrock agent runtime directly, without the
// Lambda proxy. The completion arrives as a stream of chunk events that
// are accumulated into one reply string.
type BedrockAgent struct {
	client       *bedrockagentruntime.Client
	agentID      string
	agentAliasID string
}

func NewBedrockAgent(cfg aws.Config, agentID, agentAliasID string) *BedrockAgent {
	return &BedrockAgent{
		client:       bedrockagentruntime.NewFromConfig(cfg),
		agentID:      agentID,
		agentAliasID: agentAliasID,
	}
}

func (b *BedrockAgent) Invoke(ctx context.Context, prompt, sessionID string) (string, error) {
	out, err := b.client.InvokeAgent(ctx, &bedrockagentruntime.InvokeAgentInput{
		AgentId:      aws.String(b.agentID),
		AgentAliasId: aws.String(b.agentAliasID),
		SessionId:    aws.String(sessionID),
		InputText:    aws.String(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("%w: invoke agent %s: %v", ErrUpstream, b.agentID, err)
	}

	stream := out.GetStream()
	defer stream.Close()

	var completion strings.Builder
	for event := range stream.Events() {
		if chunk, ok := event.(*types.ResponseStreamMemberChunk); ok {
			completion.Write(chunk.Value.Bytes)
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("%w: agent stream: %v", ErrUpstream, err)
	}
	return completion.String(), nil
}
