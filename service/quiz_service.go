package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tieubaoca/studybuddy-be/apperr"
	"github.com/tieubaoca/studybuddy-be/repository"
	"github.com/tieubaoca/studybuddy-be/types"
)

// ErrNoNoteContent means none of the requested notes yielded any text.
var ErrNoNoteContent = errors.New("no content found in selected notes")

// QuizService generates quizzes from note text and scores submissions
// against the stored questions.
type QuizService struct {
	notes     repository.NoteRepo
	quizzes   repository.QuizRepo
	extractor DocumentExtractor
	ai        AIService
	aiTimeout time.Duration
}

func NewQuizService(
	notes repository.NoteRepo,
	quizzes repository.QuizRepo,
	extractor DocumentExtractor,
	ai AIService,
	aiTimeout time.Duration,
) *QuizService {
	return &QuizService{
		notes:     notes,
		quizzes:   quizzes,
		extractor: extractor,
		ai:        ai,
		aiTimeout: aiTimeout,
	}
}

// Generate reads every requested note, concatenates whatever text could be
// extracted and asks the model for ten questions. A note that cannot be read
// or OCR'd is logged and skipped; the batch only fails when no note yields
// text at all.
func (s *QuizService) Generate(ctx context.Context, userID string, noteIDs []string, difficulty string) (*types.Quiz, error) {
	if difficulty == "" {
		difficulty = types.DefaultDifficulty
	}

	var sb strings.Builder
	for _, noteID := range noteIDs {
		note, err := s.notes.GetNote(ctx, noteID)
		if err != nil {
			log.Printf("Error reading note %s: %v", noteID, err)
			continue
		}
		if note.FileURL == "" {
			continue
		}
		text, err := s.extractor.ExtractText(ctx, note.FileURL)
		if err != nil {
			log.Printf("Error reading note %s: %v", noteID, err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	allText := sb.String()
	if strings.TrimSpace(allText) == "" {
		return nil, ErrNoNoteContent
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()
	questions, err := s.ai.GenerateQuiz(aiCtx, allText, difficulty)
	if err != nil {
		return nil, err
	}

	quiz := &types.Quiz{
		ID:         uuid.NewString(),
		UserID:     userID,
		Questions:  questions,
		Difficulty: difficulty,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.quizzes.CreateQuiz(ctx, quiz); err != nil {
		return nil, apperr.External("insert quiz", err)
	}
	return quiz, nil
}

// Score compares the submitted answers (keyed by question index) to the
// stored correct answers. Answer values may be the choice text or its numeric
// index. A quiz with no questions fails cleanly instead of dividing by zero.
func (s *QuizService) Score(ctx context.Context, quizID string, answers map[string]json.RawMessage) (*types.QuizScoreResponse, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	total := len(quiz.Questions)
	if total == 0 {
		return nil, fmt.Errorf("quiz %s has no questions: %w", quizID, apperr.ErrInvalidInput)
	}

	correct := 0
	for idx, q := range quiz.Questions {
		if answerMatches(answers[strconv.Itoa(idx)], q) {
			correct++
		}
	}

	score := int(math.Round(float64(correct) / float64(total) * 100))
	return &types.QuizScoreResponse{
		Score:   score,
		Correct: correct,
		Total:   total,
	}, nil
}

// answerMatches reports whether a submitted answer value names the correct
// choice. The frontend converts chosen letters to numeric indices before
// posting, so a number n matches when the correct answer is the letter at
// index n or the choice text at index n.
func answerMatches(raw json.RawMessage, q types.QuizQuestion) bool {
	if len(raw) == 0 {
		return false
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text == q.Answer
	}

	var index int
	if err := json.Unmarshal(raw, &index); err != nil || index < 0 {
		return false
	}
	if string(rune('A'+index)) == q.Answer {
		return true
	}
	return index < len(q.Choices) && q.Choices[index] == q.Answer
}
