package types

type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	ID       string `json:"id"`
}

// NoteResponse is the per-note shape of GET /api/notes.
type NoteResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	StoragePath string `json:"storagePath"`
	CreatedAt   string `json:"createdAt"`
}

type DeleteNoteResponse struct {
	OK bool `json:"ok"`
}

// ChatResponse always carries the session id, even on error responses, so
// the caller can resume the thread.
type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"sessionId"`
}

type QuizResponse struct {
	Quiz QuizPayload `json:"quiz"`
}

type QuizPayload struct {
	ID        string         `json:"id"`
	Questions []QuizQuestion `json:"questions"`
}

type QuizScoreResponse struct {
	Score   int `json:"score"`
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
