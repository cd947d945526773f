package service

import "testing"

func TestNewGeminiServiceRequiresKeys(t *testing.T) {
	if _, err := NewGeminiService(nil, "gemini-1.5-flash"); err == nil {
		t.Fatal("expected error for empty key list")
	}
}

func TestGeminiKeyRotation(t *testing.T) {
	svc, err := NewGeminiService([]string{"key-a", "key-b", "key-c"}, "gemini-1.5-flash")
	if err != nil {
		t.Fatalf("NewGeminiService: %v", err)
	}
	if svc.currentKey != 0 {
		t.Fatalf("initial key index = %d, want 0", svc.currentKey)
	}

	if err := svc.rotateAPIKey(); err != nil {
		t.Fatalf("rotateAPIKey: %v", err)
	}
	if svc.currentKey != 1 {
		t.Errorf("key index after rotation = %d, want 1", svc.currentKey)
	}
	if svc.currentClient() == nil {
		t.Error("client not rebuilt after rotation")
	}

	// Rotation wraps around to the first key.
	if err := svc.rotateAPIKey(); err != nil {
		t.Fatalf("rotateAPIKey: %v", err)
	}
	if err := svc.rotateAPIKey(); err != nil {
		t.Fatalf("rotateAPIKey: %v", err)
	}
	if svc.currentKey != 0 {
		t.Errorf("key index after wrap = %d, want 0", svc.currentKey)
	}
}
