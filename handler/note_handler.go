package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/studybuddy-be/service"
	"github.com/tieubaoca/studybuddy-be/types"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// HandleListNotes returns the user's notes, newest first. A missing uid is
// not an error; it returns an empty array.
func (h *NoteHandler) HandleListNotes(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusOK, []types.NoteResponse{})
		return
	}

	notes, err := h.noteService.ListNotes(c.Request.Context(), uid)
	if err != nil {
		log.Println("Get notes error:", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch notes"})
		return
	}

	result := make([]types.NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, types.NoteResponse{
			ID:          note.ID,
			Name:        note.FileName,
			URL:         note.FileURL,
			StoragePath: note.StoragePath,
			CreatedAt:   note.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, result)
}

// HandleDeleteNote deletes the storage object and/or the metadata record;
// each identifier is optional and handled best-effort.
func (h *NoteHandler) HandleDeleteNote(c *gin.Context) {
	var req types.DeleteNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), req.ID, req.StoragePath); err != nil {
		log.Println("Delete note error:", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to delete note"})
		return
	}
	c.JSON(http.StatusOK, types.DeleteNoteResponse{OK: true})
}
