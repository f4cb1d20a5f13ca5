package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngofreelancing/platform-api/internal/dtos"
	"github.com/ngofreelancing/platform-api/internal/services"
)

// ChatHandler serves the FAQ chat widget.
type ChatHandler struct {
	ChatService *services.ChatService
}

func NewChatHandler(s *services.ChatService) *ChatHandler {
	return &ChatHandler{ChatService: s}
}

// Chat is the POST /chat endpoint. It never fails on assistant errors: the
// service falls back to scripted responses internally.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dtos.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	resp := h.ChatService.Reply(c.Request.Context(), req.Messages)
	c.JSON(http.StatusOK, resp)
}
