package types

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ChatRequest struct {
	Message          string `json:"message"`
	NoteURL          string `json:"note_url"`
	UserID           string `json:"userId"`
	SessionID        string `json:"sessionId"`
	ConversationName string `json:"conversationName"`
}

func (r ChatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message, validation.Required),
		validation.Field(&r.NoteURL, validation.Required),
	)
}

type DeleteNoteRequest struct {
	ID          string `json:"id"`
	StoragePath string `json:"storagePath"`
}

type GenerateQuizRequest struct {
	UserID     string   `json:"uid"`
	NoteIDs    []string `json:"note_ids"`
	Difficulty string   `json:"difficulty"`
}

func (r GenerateQuizRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.NoteIDs, validation.Required, validation.Length(1, 0)),
	)
}

// SubmitQuizRequest carries answers keyed by question index. The frontend
// sends either the choice text or its numeric index, so values stay raw here
// and are normalized during scoring.
type SubmitQuizRequest struct {
	UserID  string                     `json:"uid"`
	QuizID  string                     `json:"quiz_id"`
	Answers map[string]json.RawMessage `json:"answers"`
}

func (r SubmitQuizRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.QuizID, validation.Required),
	)
}
