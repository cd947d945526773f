package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/studybuddy-be/apperr"
	"github.com/tieubaoca/studybuddy-be/service"
	"github.com/tieubaoca/studybuddy-be/types"
)

type QuizHandler struct {
	quizService *service.QuizService
}

func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// HandleGenerateQuiz builds a quiz from the selected notes. A note that
// fails extraction is skipped; only a fully empty batch is rejected.
func (h *QuizHandler) HandleGenerateQuiz(c *gin.Context) {
	var req types.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing UID or note selection"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing UID or note selection"})
		return
	}

	quiz, err := h.quizService.Generate(c.Request.Context(), req.UserID, req.NoteIDs, req.Difficulty)
	if err != nil {
		if errors.Is(err, service.ErrNoNoteContent) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "No content found in selected notes"})
			return
		}
		log.Println("Error generating quiz:", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to generate quiz"})
		return
	}

	c.JSON(http.StatusOK, types.QuizResponse{
		Quiz: types.QuizPayload{
			ID:        quiz.ID,
			Questions: quiz.Questions,
		},
	})
}

// HandleSubmitQuiz scores a submission against the stored quiz. Nothing is
// persisted; the submission is scored and discarded.
func (h *QuizHandler) HandleSubmitQuiz(c *gin.Context) {
	var req types.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing UID or quiz ID"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing UID or quiz ID"})
		return
	}

	result, err := h.quizService.Score(c.Request.Context(), req.QuizID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Quiz not found"})
		case errors.Is(err, apperr.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Quiz has no questions"})
		default:
			log.Println("Error submitting quiz:", err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to submit quiz"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
