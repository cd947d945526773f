package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/studybuddy-be/service"
	"github.com/tieubaoca/studybuddy-be/types"
)

type UploadHandler struct {
	noteService *service.NoteService
}

func NewUploadHandler(noteService *service.NoteService) *UploadHandler {
	return &UploadHandler{
		noteService: noteService,
	}
}

// HandleUpload accepts a multipart file plus an optional userId form field
// and returns the stored file's public URL and metadata id.
func (h *UploadHandler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "No file provided"})
		return
	}
	defer file.Close()

	userID := c.Request.FormValue("userId")
	contentType := header.Header.Get("Content-Type")

	note, err := h.noteService.UploadNote(c.Request.Context(), userID, header.Filename, contentType, file)
	if err != nil {
		log.Println("Upload error:", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, types.UploadResponse{
		URL:      note.FileURL,
		FileName: note.FileName,
		ID:       note.ID,
	})
}
