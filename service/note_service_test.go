package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/tieubaoca/studybuddy-be/types"
)

type fakeStorage struct {
	objects   map[string][]byte
	uploadErr error
	deleteErr error
	deleted   []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.objects[objectPath] = data
	return "https://storage.test/" + objectPath, nil
}

func (f *fakeStorage) Delete(ctx context.Context, objectPath string) error {
	f.deleted = append(f.deleted, objectPath)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, objectPath)
	return nil
}

func TestUploadNote(t *testing.T) {
	storage := newFakeStorage()
	notes := &fakeNoteRepo{notes: map[string]*types.Note{}}
	svc := NewNoteService(storage, notes)

	note, err := svc.UploadNote(context.Background(), "u1", "bio.pdf", "application/pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("UploadNote: %v", err)
	}
	if note.FileName != "bio.pdf" || note.UserID != "u1" {
		t.Errorf("note = %+v", note)
	}
	if !strings.HasPrefix(note.StoragePath, "notes/u1/") || !strings.HasSuffix(note.StoragePath, "/bio.pdf") {
		t.Errorf("storage path = %q", note.StoragePath)
	}
	if note.FileURL != "https://storage.test/"+note.StoragePath {
		t.Errorf("file url = %q", note.FileURL)
	}
	// Stored bytes match what was uploaded.
	if string(storage.objects[note.StoragePath]) != "pdf bytes" {
		t.Error("object content mismatch")
	}
	// Metadata record exists with matching fields.
	stored, err := notes.GetNote(context.Background(), note.ID)
	if err != nil {
		t.Fatalf("metadata record missing: %v", err)
	}
	if stored.FileName != "bio.pdf" || stored.StoragePath != note.StoragePath {
		t.Errorf("stored metadata = %+v", stored)
	}
}

func TestUploadNoteDefaultUser(t *testing.T) {
	storage := newFakeStorage()
	notes := &fakeNoteRepo{notes: map[string]*types.Note{}}
	svc := NewNoteService(storage, notes)

	note, err := svc.UploadNote(context.Background(), "", "x.pdf", "application/pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("UploadNote: %v", err)
	}
	if note.UserID != types.DefaultUserID {
		t.Errorf("user = %q, want %q", note.UserID, types.DefaultUserID)
	}
}

func TestUploadNoteStorageFailure(t *testing.T) {
	storage := newFakeStorage()
	storage.uploadErr = errors.New("bucket unavailable")
	notes := &fakeNoteRepo{notes: map[string]*types.Note{}}
	svc := NewNoteService(storage, notes)

	if _, err := svc.UploadNote(context.Background(), "u1", "x.pdf", "application/pdf", strings.NewReader("x")); err == nil {
		t.Fatal("expected error")
	}
	if len(notes.notes) != 0 {
		t.Error("no metadata should be written when storage fails")
	}
}

// A failing storage delete does not block removing the metadata record.
func TestDeleteNoteBestEffort(t *testing.T) {
	storage := newFakeStorage()
	storage.deleteErr = errors.New("object gone")
	notes := &fakeNoteRepo{notes: map[string]*types.Note{
		"n1": {ID: "n1", StoragePath: "notes/u1/n1/x.pdf"},
	}}
	svc := NewNoteService(storage, notes)

	if err := svc.DeleteNote(context.Background(), "n1", "notes/u1/n1/x.pdf"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if len(storage.deleted) != 1 {
		t.Error("storage delete not attempted")
	}
	if _, err := notes.GetNote(context.Background(), "n1"); err == nil {
		t.Error("metadata record should be gone")
	}
}

func TestDeleteNoteOnlyStoragePath(t *testing.T) {
	storage := newFakeStorage()
	storage.objects["p"] = []byte("x")
	notes := &fakeNoteRepo{notes: map[string]*types.Note{}}
	svc := NewNoteService(storage, notes)

	if err := svc.DeleteNote(context.Background(), "", "p"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if _, ok := storage.objects["p"]; ok {
		t.Error("object should be deleted")
	}
}
