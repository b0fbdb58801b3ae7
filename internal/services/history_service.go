package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/seekyhq/agent-chat-gateway/internal/dtos"
	"github.com/seekyhq/agent-chat-gateway/internal/models"
	"gorm.io/gorm"
)

// Forwarder sends a chat exchange on to the vectorization Lambda.
type Forwarder interface {
	Forward(ctx context.Context, payload []byte) ([]byte, error)
}

// HistoryService persists chat exchanges to Postgres and optionally
// forwards them for vectorization.
type HistoryService struct {
	DB        *gorm.DB
	Forwarder Forwarder // nil when no save-chat Lambda is configured
}

func NewHistoryService(db *gorm.DB, forwarder Forwarder) *HistoryService {
	return &HistoryService{
		DB:        db,
		Forwarder: forwarder,
	}
}

// SaveExchange records one exchange under its session, creating the
// session row on first contact.
func (s *HistoryService) SaveExchange(ctx context.Context, sessionID, userID, userRole, userInput, agentResponse string, jobCount int) error {
	var session models.ChatSession
	err := s.DB.WithContext(ctx).
		Where(models.ChatSession{SessionID: sessionID}).
		Attrs(models.ChatSession{UserID: userID, UserRole: userRole}).
		FirstOrCreate(&session).Error
	if err != nil {
		return fmt.Errorf("find or create session: %w", err)
	}

	exchange := models.ChatExchange{
		ChatSessionID: session.ID,
		UserInput:     userInput,
		AgentResponse: agentResponse,
		JobCount:      jobCount,
	}
	if err := s.DB.WithContext(ctx).Create(&exchange).Error; err != nil {
		return fmt.Errorf("create exchange: %w", err)
	}
	return nil
}

// History returns the most recent exchanges of a session, oldest first.
func (s *HistoryService) History(ctx context.Context, sessionID string, limit int) ([]models.ChatExchange, error) {
	var session models.ChatSession
	err := s.DB.WithContext(ctx).
		Where(models.ChatSession{SessionID: sessionID}).
		First(&session).Error
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	var exchanges []models.ChatExchange
	q := s.DB.WithContext(ctx).
		Where("chat_session_id = ?", session.ID).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&exchanges).Error; err != nil {
		return nil, fmt.Errorf("load exchanges: %w", err)
	}
	return exchanges, nil
}

// SaveChat handles the explicit save-chat path: a null user id is
// coalesced to a guest id before the payload reaches the Lambda, which
// rejects empty user ids.
func (s *HistoryService) SaveChat(ctx context.Context, req *dtos.SaveChatRequest) error {
	userID := req.UserID
	if userID == "" {
		userID = "guest_" + req.SessionID
	}

	if err := s.SaveExchange(ctx, req.SessionID, userID, "", req.UserInput, req.AgentResponse, 0); err != nil {
		return err
	}

	if s.Forwarder == nil {
		return nil
	}
	payload, err := json.Marshal(map[string]string{
		"session_id":     req.SessionID,
		"user_id":        userID,
		"user_input":     req.UserInput,
		"agent_response": req.AgentResponse,
	})
	if err != nil {
		return fmt.Errorf("marshal save-chat payload: %w", err)
	}
	if _, err := s.Forwarder.Forward(ctx, payload); err != nil {
		// Vectorization is best-effort; the exchange is already stored.
		log.Printf("save-chat forward failed for session %s: %v", req.SessionID, err)
	}
	return nil
}
