package service

import (
	"strings"
	"testing"

	"github.com/tieubaoca/studybuddy-be/apperr"
)

func TestParseQuizJSON(t *testing.T) {
	content := `[
  {"question": "What is 2+2?", "options": ["3", "4", "5", "6"], "answer": "4"},
  {"question": "Capital of France?", "options": ["Paris", "Lyon", "Nice", "Lille"], "answer": "Paris"}
]`
	questions, err := parseQuizJSON(content)
	if err != nil {
		t.Fatalf("parseQuizJSON: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	// "options" must be normalized into "choices".
	if len(questions[0].Choices) != 4 || questions[0].Choices[1] != "4" {
		t.Errorf("choices = %v", questions[0].Choices)
	}
	if questions[1].Answer != "Paris" {
		t.Errorf("answer = %q", questions[1].Answer)
	}
}

func TestParseQuizJSONMalformed(t *testing.T) {
	for _, content := range []string{
		"Here are your questions!",
		`{"question": "not an array"}`,
		"",
	} {
		_, err := parseQuizJSON(content)
		if !apperr.IsParse(err) {
			t.Errorf("parseQuizJSON(%q) err = %v, want ParseError", content, err)
		}
	}
}

func TestParseQuizJSONTrimsWhitespace(t *testing.T) {
	content := "\n  [{\"question\": \"Q\", \"options\": [\"A\",\"B\",\"C\",\"D\"], \"answer\": \"A\"}]  \n"
	questions, err := parseQuizJSON(content)
	if err != nil {
		t.Fatalf("parseQuizJSON: %v", err)
	}
	if len(questions) != 1 {
		t.Errorf("questions = %d, want 1", len(questions))
	}
}

func TestBuildAnswerPrompt(t *testing.T) {
	prompt := buildAnswerPrompt("note body", "the question")
	if !strings.Contains(prompt, "note body") {
		t.Error("prompt missing note text")
	}
	if !strings.Contains(prompt, "Question: the question") {
		t.Error("prompt missing question")
	}
	if !strings.Contains(prompt, "ONLY the content of the note") {
		t.Error("prompt missing grounding instruction")
	}
}

func TestBuildQuizPrompt(t *testing.T) {
	prompt := buildQuizPrompt("some notes", "hard")
	if !strings.Contains(prompt, "Difficulty: hard.") {
		t.Error("prompt missing difficulty")
	}
	if !strings.Contains(prompt, "10 multiple-choice questions") {
		t.Error("prompt missing question count")
	}
	if !strings.Contains(prompt, "JSON array") {
		t.Error("prompt missing output format instruction")
	}
}
