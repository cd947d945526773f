package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tieubaoca/studybuddy-be/service"
	"github.com/tieubaoca/studybuddy-be/types"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// HandleChat answers one question about one note. A session id is generated
// when the caller does not supply one and is returned on every response,
// including errors, so the thread can always be resumed.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	// A malformed body is treated like an empty one; validation below
	// rejects it with the session id already set.
	if err := c.ShouldBindJSON(&req); err != nil {
		req = types.ChatRequest{}
	}

	if req.UserID == "" {
		req.UserID = types.DefaultChatUserID
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	if req.ConversationName == "" {
		req.ConversationName = types.DefaultConversationName
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, types.ChatResponse{
			Reply:     "Please select a note and enter a question.",
			SessionID: req.SessionID,
		})
		return
	}

	reply, err := h.chatService.Chat(c.Request.Context(), req)
	if err != nil {
		log.Println("Chatbot error:", err)
		c.JSON(http.StatusInternalServerError, types.ChatResponse{
			Reply:     "Error processing note or AI response.",
			SessionID: req.SessionID,
		})
		return
	}

	c.JSON(http.StatusOK, types.ChatResponse{
		Reply:     reply,
		SessionID: req.SessionID,
	})
}

// HandleListSessions returns the user's chat sessions, most recently active
// first. A missing uid returns an empty array.
func (h *ChatHandler) HandleListSessions(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusOK, []*types.Session{})
		return
	}

	sessions, err := h.chatService.ListSessions(c.Request.Context(), uid)
	if err != nil {
		log.Println("Session fetch error:", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch sessions"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
