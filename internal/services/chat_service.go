package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/seekyhq/agent-chat-gateway/internal/agent"
	"github.com/seekyhq/agent-chat-gateway/internal/dtos"
	"github.com/seekyhq/agent-chat-gateway/internal/extract"
)

// ChatService orchestrates one chat exchange: invoke the upstream agent,
// recover structure from its reply, persist the exchange.
type ChatService struct {
	Agent   agent.Client
	History *HistoryService // nil when persistence is not configured
}

func NewChatService(client agent.Client, history *HistoryService) *ChatService {
	return &ChatService{
		Agent:   client,
		History: history,
	}
}

// HandleMessage runs the full pipeline for one user message. Upstream
// failures are returned to the caller; extraction failures degrade to
// empty results and never fail the request.
func (s *ChatService) HandleMessage(ctx context.Context, req *dtos.ChatRequest) (*dtos.ChatResponse, error) {
	sessionID := resolveSessionID(req)

	raw, err := s.Agent.Invoke(ctx, req.Message, sessionID)
	if err != nil {
		return nil, err
	}

	resp := s.buildResponse(raw, sessionID, req)

	if s.History != nil {
		if err := s.History.SaveExchange(ctx, sessionID, req.UserID, req.UserRole, req.Message, resp.Message, len(resp.Jobs)); err != nil {
			log.Printf("history save failed for session %s: %v", sessionID, err)
		}
	}
	return resp, nil
}

func (s *ChatService) buildResponse(raw, sessionID string, req *dtos.ChatRequest) *dtos.ChatResponse {
	message := raw
	jobs := []extract.Job{}
	var filters extract.FilterSet

	// The agent's text not matching any known shape must never fail the
	// request; degrade to the raw text and empty results instead.
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("extraction panic recovered for session %s: %v", sessionID, r)
			}
		}()

		normalized := extract.NormalizeResponse(raw)
		if text := extract.MessageText(normalized); text != "" {
			message = text
		}
		message = extract.DecodeEntities(message)

		// Filters may sit outside the <response> block, so they are
		// extracted before unwrapping.
		var found bool
		filters, found = extract.ExtractFilters(message)

		message = extract.UnwrapResponseTags(message)
		if extracted := extract.ExtractJobs(message); extracted != nil {
			jobs = extracted
		}
		if !found && len(jobs) > 0 {
			filters = extract.DeriveFilters(jobs)
		}
		message = extract.StripDashboardTags(message)
	}()

	resp := &dtos.ChatResponse{
		Message:      message,
		Jobs:         jobs,
		Filters:      filters,
		SessionID:    sessionID,
		UserID:       req.UserID,
		UserRole:     userRole(req),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		ResponseType: "agent_response",
	}

	if extract.HasFilterIntent(req.Message) {
		if qf := extract.ParseQueryFilters(req.Message); qf != (extract.QueryFilters{}) {
			resp.QueryFilters = &qf
		}
	}
	return resp
}

// resolveSessionID guarantees a non-empty session id: authenticated user
// id first, then any client-side session id, then a fresh guest id.
func resolveSessionID(req *dtos.ChatRequest) string {
	switch {
	case req.UserID != "":
		return req.UserID
	case req.SessionID != "":
		return req.SessionID
	case req.GuestSessionID != "":
		return req.GuestSessionID
	}
	return "guest-" + uuid.NewString()
}

func userRole(req *dtos.ChatRequest) string {
	if req.UserRole != "" {
		return req.UserRole
	}
	return "guest"
}
