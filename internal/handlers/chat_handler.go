package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/seekyhq/agent-chat-gateway/internal/agent"
	"github.com/seekyhq/agent-chat-gateway/internal/dtos"
	"github.com/seekyhq/agent-chat-gateway/internal/services"
)

// ChatHandler exposes the chat and history endpoints. Dependencies are
// injected at construction.
type ChatHandler struct {
	ChatService    *services.ChatService
	HistoryService *services.HistoryService
}

func NewChatHandler(chat *services.ChatService, history *services.HistoryService) *ChatHandler {
	return &ChatHandler{
		ChatService:    chat,
		HistoryService: history,
	}
}

// HandleChat is the POST /api/chat endpoint.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req dtos.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required", "details": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	resp, err := h.ChatService.HandleMessage(c.Request.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, agent.ErrUpstream) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error":   "Error communicating with the AI agent.",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveChat is the POST /api/save-chat endpoint.
func (h *ChatHandler) SaveChat(c *gin.Context) {
	if h.HistoryService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat history persistence is not configured"})
		return
	}

	var req dtos.SaveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "session_id, user_input and agent_response are required",
			"details": err.Error(),
		})
		return
	}

	if err := h.HistoryService.SaveChat(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save chat history", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetHistory is the GET /api/history/:sessionId endpoint.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	if h.HistoryService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat history persistence is not configured"})
		return
	}

	sessionID := c.Param("sessionId")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	exchanges, err := h.HistoryService.History(c.Request.Context(), sessionID, limit)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No history for session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "exchanges": exchanges})
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
