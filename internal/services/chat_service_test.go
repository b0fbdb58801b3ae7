package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/seekyhq/agent-chat-gateway/internal/agent"
	"github.com/seekyhq/agent-chat-gateway/internal/dtos"
)

type stubAgent struct {
	reply string
	err   error

	prompt    string
	sessionID string
}

func (s *stubAgent) Invoke(_ context.Context, prompt, sessionID string) (string, error) {
	s.prompt = prompt
	s.sessionID = sessionID
	return s.reply, s.err
}

func TestHandleMessagePipeline(t *testing.T) {
	stub := &stubAgent{
		reply: `{"response": "<response>1. Nurse at Mercy in Toledo</response><update_dashboard>{\"filters\":{\"jobTitle\":[\"Nurse\"]}}</update_dashboard>"}`,
	}
	svc := NewChatService(stub, nil)

	req := &dtos.ChatRequest{Message: "Find software engineer jobs", SessionID: "sess-1"}
	resp, err := svc.HandleMessage(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	if resp.Message != "1. Nurse at Mercy in Toledo" {
		t.Errorf("message = %q; want the unwrapped listing text", resp.Message)
	}
	if len(resp.Jobs) != 1 || resp.Jobs[0].Company != "Mercy" {
		t.Errorf("jobs = %+v; want one Mercy listing", resp.Jobs)
	}
	if len(resp.Filters.JobTitle) != 1 || resp.Filters.JobTitle[0] != "Nurse" {
		t.Errorf("filters = %+v; want jobTitle [Nurse]", resp.Filters)
	}
	if resp.Filters.Source != "dashboard" {
		t.Errorf("filter source = %q; want dashboard", resp.Filters.Source)
	}
	if resp.SessionID != "sess-1" || stub.sessionID != "sess-1" {
		t.Errorf("session id = %q (agent saw %q); want sess-1", resp.SessionID, stub.sessionID)
	}
	if stub.prompt != req.Message {
		t.Errorf("agent prompt = %q; want the user message", stub.prompt)
	}
	if resp.UserRole != "guest" {
		t.Errorf("userRole = %q; want guest default", resp.UserRole)
	}
	if resp.ResponseType != "agent_response" {
		t.Errorf("responseType = %q", resp.ResponseType)
	}
	if resp.QueryFilters == nil || resp.QueryFilters.JobTitle != "Software engineer" {
		t.Errorf("queryFilters = %+v; want Software engineer intent", resp.QueryFilters)
	}
}

func TestHandleMessageGuestSession(t *testing.T) {
	stub := &stubAgent{reply: "Hi!"}
	svc := NewChatService(stub, nil)

	resp, err := svc.HandleMessage(context.Background(), &dtos.ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !strings.HasPrefix(resp.SessionID, "guest-") || len(resp.SessionID) <= len("guest-") {
		t.Errorf("sessionId = %q; want a generated guest id", resp.SessionID)
	}
	if stub.sessionID != resp.SessionID {
		t.Errorf("agent saw session %q; response carries %q", stub.sessionID, resp.SessionID)
	}
}

func TestHandleMessageUpstreamError(t *testing.T) {
	stub := &stubAgent{err: fmt.Errorf("invoke failed: %w", agent.ErrUpstream)}
	svc := NewChatService(stub, nil)

	resp, err := svc.HandleMessage(context.Background(), &dtos.ChatRequest{Message: "hi"})
	if resp != nil {
		t.Errorf("expected nil response, got %+v", resp)
	}
	if !errors.Is(err, agent.ErrUpstream) {
		t.Errorf("err = %v; want ErrUpstream in the chain", err)
	}
}

func TestHandleMessagePlainText(t *testing.T) {
	stub := &stubAgent{reply: "Thanks for chatting today!"}
	svc := NewChatService(stub, nil)

	resp, err := svc.HandleMessage(context.Background(), &dtos.ChatRequest{Message: "bye", SessionID: "s"})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if resp.Message != "Thanks for chatting today!" {
		t.Errorf("message = %q; want the raw text preserved", resp.Message)
	}
	if resp.Jobs == nil || len(resp.Jobs) != 0 {
		t.Errorf("jobs = %#v; want an empty, non-nil slice", resp.Jobs)
	}
	if !resp.Filters.IsEmpty() {
		t.Errorf("filters = %+v; want empty", resp.Filters)
	}
}

func TestResolveSessionIDPrecedence(t *testing.T) {
	tests := []struct {
		name string
		req  dtos.ChatRequest
		want string
	}{
		{"user id wins", dtos.ChatRequest{UserID: "u1", SessionID: "s1", GuestSessionID: "g1"}, "u1"},
		{"session id next", dtos.ChatRequest{SessionID: "s1", GuestSessionID: "g1"}, "s1"},
		{"guest session last", dtos.ChatRequest{GuestSessionID: "g1"}, "g1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveSessionID(&tt.req); got != tt.want {
				t.Errorf("resolveSessionID = %q; want %q", got, tt.want)
			}
		})
	}
}
