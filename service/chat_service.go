package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tieubaoca/studybuddy-be/apperr"
	"github.com/tieubaoca/studybuddy-be/repository"
	"github.com/tieubaoca/studybuddy-be/types"
)

// ChatService runs one chat turn: OCR the selected note, ask the completion
// API, append the turn to the conversation log. It also rebuilds the session
// list from that log.
type ChatService struct {
	extractor     DocumentExtractor
	ai            AIService
	conversations repository.ConversationRepo
	aiTimeout     time.Duration
}

func NewChatService(
	extractor DocumentExtractor,
	ai AIService,
	conversations repository.ConversationRepo,
	aiTimeout time.Duration,
) *ChatService {
	return &ChatService{
		extractor:     extractor,
		ai:            ai,
		conversations: conversations,
		aiTimeout:     aiTimeout,
	}
}

// Chat expects req.SessionID to already be set; the handler generates one
// before validation so the caller gets a session id even on failure.
func (s *ChatService) Chat(ctx context.Context, req types.ChatRequest) (string, error) {
	noteText, err := s.extractor.ExtractText(ctx, req.NoteURL)
	if err != nil {
		return "", err
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()
	reply, err := s.ai.Answer(aiCtx, noteText, req.Message)
	if err != nil {
		return "", err
	}

	turn := &types.ConversationTurn{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		SessionID:        req.SessionID,
		NoteURL:          req.NoteURL,
		Message:          req.Message,
		Reply:            reply,
		ConversationName: req.ConversationName,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.conversations.CreateTurn(ctx, turn); err != nil {
		return "", apperr.External("insert conversation turn", err)
	}

	return reply, nil
}

// ListSessions rebuilds the user's sessions from the conversation log.
func (s *ChatService) ListSessions(ctx context.Context, userID string) ([]*types.Session, error) {
	turns, err := s.conversations.ListTurnsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.External("list conversation turns", err)
	}
	return GroupSessions(turns), nil
}

// GroupSessions groups turns by session id. Within a session messages are
// ordered ascending by creation time; sessions are ordered descending by the
// time of their most recent message, falling back to the session's own
// creation time when it has no messages. Every session gets a non-empty name.
func GroupSessions(turns []*types.ConversationTurn) []*types.Session {
	byID := make(map[string]*types.Session)
	var order []string

	for _, turn := range turns {
		session, ok := byID[turn.SessionID]
		if !ok {
			name := turn.ConversationName
			if name == "" {
				name = types.DefaultConversationName
			}
			session = &types.Session{
				SessionID: turn.SessionID,
				NoteURL:   turn.NoteURL,
				CreatedAt: turn.CreatedAt,
				Messages:  []types.SessionMessage{},
				Name:      name,
			}
			byID[turn.SessionID] = session
			order = append(order, turn.SessionID)
		}
		session.Messages = append(session.Messages, types.SessionMessage{
			Message:   turn.Message,
			Reply:     turn.Reply,
			CreatedAt: turn.CreatedAt,
		})
	}

	sessions := make([]*types.Session, 0, len(order))
	for _, id := range order {
		session := byID[id]
		sort.SliceStable(session.Messages, func(i, j int) bool {
			return session.Messages[i].CreatedAt.Before(session.Messages[j].CreatedAt)
		})
		sessions = append(sessions, session)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessionSortKey(sessions[i]).After(sessionSortKey(sessions[j]))
	})
	return sessions
}

func sessionSortKey(s *types.Session) time.Time {
	if len(s.Messages) == 0 {
		return s.CreatedAt
	}
	return s.Messages[len(s.Messages)-1].CreatedAt
}
