package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/tieubaoca/studybuddy-be/apperr"
	"github.com/tieubaoca/studybuddy-be/types"
	"google.golang.org/api/option"
)

// GeminiService is the alternative completion backend. It holds a list of API
// keys and rotates to the next one when a call fails; the failed call itself
// is not retried.
type GeminiService struct {
	apiKeys    []string
	currentKey int
	client     *genai.Client
	modelName  string
	mu         sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	service := &GeminiService{
		apiKeys:    apiKeys,
		currentKey: 0,
		modelName:  modelName,
	}
	if err := service.initClient(); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	if err := s.client.Close(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	return s.initClient()
}

// currentClient snapshots the client under the mutex so a concurrent rotation
// cannot swap it mid-call.
func (s *GeminiService) currentClient() *genai.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

func (s *GeminiService) Answer(ctx context.Context, noteText, question string) (string, error) {
	model := s.currentClient().GenerativeModel(s.modelName)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx,
		genai.Text(answerSystemMessage+"\n\n"+buildAnswerPrompt(noteText, question)))
	if err != nil {
		if rerr := s.rotateAPIKey(); rerr != nil {
			log.Printf("rotate gemini api key: %v", rerr)
		}
		return "", apperr.External("gemini generate content", err)
	}
	content, err := candidateText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (s *GeminiService) GenerateQuiz(ctx context.Context, notesText, difficulty string) ([]types.QuizQuestion, error) {
	model := s.currentClient().GenerativeModel(s.modelName)

	resp, err := model.GenerateContent(ctx, genai.Text(buildQuizPrompt(notesText, difficulty)))
	if err != nil {
		if rerr := s.rotateAPIKey(); rerr != nil {
			log.Printf("rotate gemini api key: %v", rerr)
		}
		return nil, apperr.External("gemini generate content", err)
	}
	content, err := candidateText(resp)
	if err != nil {
		return nil, err
	}
	return parseQuizJSON(content)
}

func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", apperr.External("gemini generate content", errors.New("no response generated"))
	}
	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					content += string(text)
				}
			}
		}
	}
	return content, nil
}
