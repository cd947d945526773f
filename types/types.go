package types

import "time"

const (
	// DefaultUserID is recorded when an upload arrives without a userId.
	DefaultUserID = "unknown_user"
	// DefaultChatUserID is recorded when a chat arrives without a userId.
	DefaultChatUserID = "guest"
	// DefaultConversationName is the display name for unnamed sessions.
	DefaultConversationName = "New Conversation"
	// DefaultDifficulty is used when a quiz request does not set one.
	DefaultDifficulty = "medium"
)

// Note is the stored metadata record for one uploaded document.
type Note struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"userId" bson:"user_id"`
	FileName    string    `json:"fileName" bson:"file_name"`
	FileURL     string    `json:"fileUrl" bson:"file_url"`
	StoragePath string    `json:"storagePath" bson:"storage_path"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

// ConversationTurn is one message/reply pair of a chat session. Turns are
// append-only; they are never updated or deleted.
type ConversationTurn struct {
	ID               string    `json:"id" bson:"_id"`
	UserID           string    `json:"user_id" bson:"user_id"`
	SessionID        string    `json:"session_id" bson:"session_id"`
	NoteURL          string    `json:"note_url" bson:"note_url"`
	Message          string    `json:"message" bson:"message"`
	Reply            string    `json:"reply" bson:"reply"`
	ConversationName string    `json:"conversation_name" bson:"conversation_name"`
	CreatedAt        time.Time `json:"createdAt" bson:"created_at"`
}

// SessionMessage is one turn of a session as returned to the frontend.
type SessionMessage struct {
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is not stored; it is rebuilt at read time by grouping the user's
// conversation turns by session id.
type Session struct {
	SessionID string           `json:"sessionId"`
	NoteURL   string           `json:"note_url"`
	CreatedAt time.Time        `json:"createdAt"`
	Messages  []SessionMessage `json:"messages"`
	Name      string           `json:"name"`
}

// QuizQuestion is one multiple-choice question. Choices holds the four
// options; Answer is the correct choice verbatim.
type QuizQuestion struct {
	Question string   `json:"question" bson:"question"`
	Choices  []string `json:"choices" bson:"choices"`
	Answer   string   `json:"answer" bson:"answer"`
}

// Quiz is a stored set of generated questions. Read-only after creation.
type Quiz struct {
	ID         string         `json:"id" bson:"_id"`
	UserID     string         `json:"user_id" bson:"user_id"`
	Questions  []QuizQuestion `json:"questions" bson:"questions"`
	Difficulty string         `json:"difficulty" bson:"difficulty"`
	CreatedAt  time.Time      `json:"createdAt" bson:"created_at"`
}
