package service

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tieubaoca/studybuddy-be/types"
)

// WebSocketService serves the same chat pipeline over a websocket so the
// frontend can keep one connection open for a whole study session.
type WebSocketService struct {
	chat     *ChatService
	upgrader websocket.Upgrader
}

func NewWebSocketService(chat *ChatService) *WebSocketService {
	return &WebSocketService{
		chat: chat,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			log.Println("Unmarshal error:", err)
			s.writeError(conn, "Error processing message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketChat:
			s.handleChatMessage(ctx, conn, req.Payload)
		case types.TypeWebsocketPing:
			if err := conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketPong}); err != nil {
				log.Println("Write error:", err)
			}
		default:
			log.Println("Invalid message type")
			s.writeError(conn, "Invalid message type")
		}
	}
}

func (s *WebSocketService) handleChatMessage(ctx context.Context, conn *websocket.Conn, payload interface{}) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		log.Println("Marshal error:", err)
		s.writeError(conn, "Error processing message")
		return
	}
	var chatReq types.ChatRequest
	if err := json.Unmarshal(payloadBytes, &chatReq); err != nil {
		log.Println("Unmarshal error:", err)
		s.writeError(conn, "Error processing message")
		return
	}

	// Same defaults as the HTTP chat endpoint: the caller always gets a
	// session id back, even when the request is rejected.
	if chatReq.UserID == "" {
		chatReq.UserID = types.DefaultChatUserID
	}
	if chatReq.SessionID == "" {
		chatReq.SessionID = uuid.NewString()
	}
	if chatReq.ConversationName == "" {
		chatReq.ConversationName = types.DefaultConversationName
	}

	if err := chatReq.Validate(); err != nil {
		s.writeChat(conn, types.ChatResponse{
			Reply:     "Please select a note and enter a question.",
			SessionID: chatReq.SessionID,
		})
		return
	}

	reply, err := s.chat.Chat(ctx, chatReq)
	if err != nil {
		log.Println("Chatbot error:", err)
		s.writeChat(conn, types.ChatResponse{
			Reply:     "Error processing note or AI response.",
			SessionID: chatReq.SessionID,
		})
		return
	}
	s.writeChat(conn, types.ChatResponse{
		Reply:     reply,
		SessionID: chatReq.SessionID,
	})
}

func (s *WebSocketService) writeChat(conn *websocket.Conn, res types.ChatResponse) {
	if err := conn.WriteJSON(types.WebSocketResponse{
		Type:    types.TypeWebsocketChat,
		Payload: res,
	}); err != nil {
		log.Println("Write error:", err)
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.WebSocketErrorResponse{Message: message},
	}); err != nil {
		log.Println("Write error:", err)
	}
}
