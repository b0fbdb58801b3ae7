package models

import (
	"time"

	"gorm.io/gorm"
)

// ChatSession groups the exchanges belonging to one conversation. The
// session id is the client-supplied user id or a generated guest id.
type ChatSession struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SessionID string `gorm:"uniqueIndex;not null" json:"session_id"`
	UserID    string `json:"user_id"`
	UserRole  string `json:"user_role"`

	// 'omitempty' prevents loops when serializing Session -> Exchanges -> ...
	Exchanges []ChatExchange `json:"exchanges,omitempty"`
}

// ChatExchange is one user message and the agent's reply.
type ChatExchange struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ChatSessionID uint `gorm:"index" json:"chat_session_id"`

	UserInput     string `gorm:"type:text;not null" json:"user_input"`
	AgentResponse string `gorm:"type:text" json:"agent_response"`

	// JobCount records how many listings were extracted from the reply,
	// kept for debugging the extraction heuristics against real traffic.
	JobCount int `json:"job_count"`
}
