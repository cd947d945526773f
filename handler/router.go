package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/studybuddy-be/service"
)

// NewRouter wires the HTTP surface. The websocket service may be nil, in
// which case the /ws/chat route is not registered.
func NewRouter(
	upload *UploadHandler,
	note *NoteHandler,
	chat *ChatHandler,
	quiz *QuizHandler,
	ws *service.WebSocketService,
) *gin.Engine {
	router := gin.Default()

	corsHandler := NewCorsHandler()
	router.Use(corsHandler.CorsMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	router.POST("/upload", upload.HandleUpload)

	api := router.Group("/api")
	{
		api.GET("/notes", note.HandleListNotes)
		api.POST("/delete-note", note.HandleDeleteNote)
		api.POST("/chat", chat.HandleChat)
		api.GET("/sessions", chat.HandleListSessions)
		api.POST("/generate_quiz", quiz.HandleGenerateQuiz)
		api.POST("/submit_quiz", quiz.HandleSubmitQuiz)
	}

	if ws != nil {
		router.GET("/ws/chat", func(c *gin.Context) {
			ws.HandleChat(c.Writer, c.Request)
		})
	}

	return router
}
