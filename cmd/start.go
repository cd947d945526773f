/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/studybuddy-be/config"
	"github.com/tieubaoca/studybuddy-be/database"
	"github.com/tieubaoca/studybuddy-be/handler"
	"github.com/tieubaoca/studybuddy-be/repository"
	"github.com/tieubaoca/studybuddy-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the study notes server",
	Long:  `Starts the HTTP server that handles note uploads, chat and quizzes`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()

		mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoDb := mongoClient.Database(cfg.MongoDatabase)

		objectStorage, err := service.NewGCSStorage(ctx, cfg.StorageBucket, cfg.GoogleCredentials, cfg.StorageTimeout)
		if err != nil {
			log.Fatalf("Failed to create storage client: %v", err)
		}

		// init repo
		noteRepo := repository.NewNoteRepo(mongoDb.Collection("notes"))
		conversationRepo := repository.NewConversationRepo(mongoDb.Collection("conversations"))
		quizRepo := repository.NewQuizRepo(mongoDb.Collection("quizzes"))

		// init service
		pdfService := service.NewPDFService(cfg.FetchTimeout, cfg.MaxNoteChars)

		var aiService service.AIService
		switch cfg.AIProvider {
		case "gemini":
			aiService, err = service.NewGeminiService(cfg.GeminiKeys(), cfg.Model)
			if err != nil {
				log.Fatalf("Failed to create Gemini service: %v", err)
			}
		default:
			aiService = service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model)
		}

		noteService := service.NewNoteService(objectStorage, noteRepo)
		chatService := service.NewChatService(pdfService, aiService, conversationRepo, cfg.AITimeout)
		quizService := service.NewQuizService(noteRepo, quizRepo, pdfService, aiService, cfg.AITimeout)
		wsService := service.NewWebSocketService(chatService)

		// Initialize handlers
		uploadHandler := handler.NewUploadHandler(noteService)
		noteHandler := handler.NewNoteHandler(noteService)
		chatHandler := handler.NewChatHandler(chatService)
		quizHandler := handler.NewQuizHandler(quizService)

		router := handler.NewRouter(uploadHandler, noteHandler, chatHandler, quizHandler, wsService)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
