package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/tieubaoca/studybuddy-be/apperr"
	"github.com/tieubaoca/studybuddy-be/types"
)

type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(baseURL, apiKey, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client: client,
		model:  model,
	}
}

func (s *OpenAIService) Answer(ctx context.Context, noteText, question string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: answerSystemMessage,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildAnswerPrompt(noteText, question),
				},
			},
			// Low randomness for consistent answers.
			Temperature: 0.2,
		},
	)
	if err != nil {
		return "", apperr.External("openai chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperr.External("openai chat completion", errors.New("no response generated"))
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *OpenAIService) GenerateQuiz(ctx context.Context, notesText, difficulty string) ([]types.QuizQuestion, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildQuizPrompt(notesText, difficulty),
				},
			},
		},
	)
	if err != nil {
		return nil, apperr.External("openai chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return nil, apperr.External("openai chat completion", errors.New("no response generated"))
	}
	return parseQuizJSON(resp.Choices[0].Message.Content)
}
