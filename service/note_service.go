package service

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/tieubaoca/studybuddy-be/apperr"
	"github.com/tieubaoca/studybuddy-be/repository"
	"github.com/tieubaoca/studybuddy-be/types"
	"github.com/tieubaoca/studybuddy-be/utils"
)

// NoteService uploads note files to object storage and keeps their metadata
// records. Ownership is whatever user id the client sent; nothing verifies it.
type NoteService struct {
	storage ObjectStorage
	notes   repository.NoteRepo
}

func NewNoteService(storage ObjectStorage, notes repository.NoteRepo) *NoteService {
	return &NoteService{
		storage: storage,
		notes:   notes,
	}
}

// UploadNote stores the file bytes and inserts the metadata record. If the
// metadata insert fails the stored object is not rolled back.
func (s *NoteService) UploadNote(ctx context.Context, userID, fileName, contentType string, r io.Reader) (*types.Note, error) {
	if userID == "" {
		userID = types.DefaultUserID
	}

	id := uuid.NewString()
	objectPath := utils.NoteObjectPath(userID, id, fileName)

	fileURL, err := s.storage.Upload(ctx, objectPath, contentType, r)
	if err != nil {
		return nil, apperr.External("upload to storage", err)
	}

	note := &types.Note{
		ID:          id,
		UserID:      userID,
		FileName:    fileName,
		FileURL:     fileURL,
		StoragePath: objectPath,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.notes.CreateNote(ctx, note); err != nil {
		return nil, apperr.External("insert note metadata", err)
	}
	return note, nil
}

// ListNotes returns the user's notes, newest first.
func (s *NoteService) ListNotes(ctx context.Context, userID string) ([]*types.Note, error) {
	notes, err := s.notes.ListNotesByUser(ctx, userID)
	if err != nil {
		return nil, apperr.External("list notes", err)
	}
	return notes, nil
}

// DeleteNote removes the stored object and the metadata record. The two are
// independently best-effort: a missing storage object does not block removing
// the metadata, and vice versa. A storage failure is logged, not fatal.
func (s *NoteService) DeleteNote(ctx context.Context, id, storagePath string) error {
	if storagePath != "" {
		if err := s.storage.Delete(ctx, storagePath); err != nil {
			log.Printf("delete storage object %s: %v", storagePath, err)
		}
	}
	if id != "" {
		if err := s.notes.DeleteNote(ctx, id); err != nil {
			return apperr.External("delete note metadata", err)
		}
	}
	return nil
}
