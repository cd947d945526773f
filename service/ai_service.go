package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tieubaoca/studybuddy-be/apperr"
	"github.com/tieubaoca/studybuddy-be/types"
)

// AIService produces an answer grounded in a note's text, or a quiz generated
// from it. Implementations call an external completion API; nothing is
// retried on failure.
type AIService interface {
	Answer(ctx context.Context, noteText, question string) (string, error)
	GenerateQuiz(ctx context.Context, notesText, difficulty string) ([]types.QuizQuestion, error)
}

const answerSystemMessage = "You are a helpful study assistant that answers only from the note."

// buildAnswerPrompt embeds the (already truncated) note text and the user's
// question. Grounding to the note is a prompt-level request, not an enforced
// guarantee.
func buildAnswerPrompt(noteText, question string) string {
	return fmt.Sprintf(`You are StudyBuddy AI. Answer the user's question using ONLY the content of the note below.
Do NOT invent information.

--- NOTE START ---
%s
--- NOTE END ---

Question: %s
Answer in a clear and concise sentence.
`, noteText, question)
}

// buildQuizPrompt instructs the model to emit exactly ten multiple-choice
// questions as a bare JSON array.
func buildQuizPrompt(notesText, difficulty string) string {
	return fmt.Sprintf(`Generate 10 multiple-choice questions from the following notes.
Each should have 4 options (A, B, C, D) and one correct answer.
Difficulty: %s.
Notes: %s
Return ONLY a JSON array like this:
[
  {
    "question": "Question text",
    "options": ["A", "B", "C", "D"],
    "answer": "A"
  }
]
Do NOT include explanations or extra text.
`, difficulty, notesText)
}

// parseQuizJSON decodes the model's JSON array and normalizes each question
// into the stored shape ("options" becomes "choices"). Malformed output is a
// ParseError; the whole request fails, nothing repairs it.
func parseQuizJSON(content string) ([]types.QuizQuestion, error) {
	var raw []struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
		Answer   string   `json:"answer"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, &apperr.ParseError{Err: err}
	}

	questions := make([]types.QuizQuestion, 0, len(raw))
	for _, q := range raw {
		questions = append(questions, types.QuizQuestion{
			Question: q.Question,
			Choices:  q.Options,
			Answer:   q.Answer,
		})
	}
	return questions, nil
}
