package dtos

import "github.com/seekyhq/agent-chat-gateway/internal/extract"

// ChatRequest is the body accepted by POST /api/chat.
type ChatRequest struct {
	Message        string         `json:"message" binding:"required"`
	UserID         string         `json:"userId"`
	SessionID      string         `json:"sessionId"`
	GuestSessionID string         `json:"guestSessionId"`
	UserRole       string         `json:"userRole"`
	UserProfile    map[string]any `json:"userProfile"`
}

// ChatResponse is the structured result of one chat exchange.
type ChatResponse struct {
	Message      string                `json:"message"`
	Jobs         []extract.Job         `json:"jobs"`
	Filters      extract.FilterSet     `json:"filters"`
	QueryFilters *extract.QueryFilters `json:"queryFilters,omitempty"`
	SessionID    string                `json:"sessionId"`
	UserID       string                `json:"userId"`
	UserRole     string                `json:"userRole"`
	Timestamp    string                `json:"timestamp"`
	ResponseType string                `json:"responseType"`
}

// SaveChatRequest is the body accepted by POST /api/save-chat, matching
// the payload the vectorization Lambda expects.
type SaveChatRequest struct {
	SessionID     string `json:"session_id" binding:"required"`
	UserID        string `json:"user_id"`
	UserInput     string `json:"user_input" binding:"required"`
	AgentResponse string `json:"agent_response" binding:"required"`
}
