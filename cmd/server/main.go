package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"fluentwork/config"
	"fluentwork/controllers"
	"fluentwork/internal/session"
	"fluentwork/routes"
	"fluentwork/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		generator   services.DialogueGenerator
		scorer      services.PerformanceScorer
		transcriber services.Transcriber
	)
	if cfg.UseMock {
		log.Println("Mock mode enabled, Gemini collaborators disabled")
		generator = services.MockDialogue{}
		scorer = services.MockScorer{}
		transcriber = services.MockTranscriber{}
	} else {
		timeout := time.Duration(cfg.Session.CollaboratorTimeoutSeconds) * time.Second
		gemini, err := services.NewGemini(context.Background(), cfg.Gemini.ApiKey, cfg.Gemini.Model, timeout)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		generator = services.NewGeminiDialogue(gemini)
		scorer = services.NewGeminiScorer(gemini)
		transcriber = services.NewGeminiTranscriber(gemini)
	}

	store := session.NewStore(cfg.Session.MaxStored)
	engine := services.NewEngine(store, generator, time.Duration(cfg.Session.MaxDurationSeconds)*time.Second)
	progress := services.NewProgressTracker()

	router := setupRouter(engine, scorer, transcriber, progress, store)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(
	engine *services.Engine,
	scorer services.PerformanceScorer,
	transcriber services.Transcriber,
	progress *services.ProgressTracker,
	store *session.Store,
) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "FluentWork API is running",
			"version": "1.0.0",
			"endpoints": []string{
				"/start-session",
				"/speech-to-text",
				"/get-manager-response",
				"/get-feedback",
				"/user-progress",
			},
		})
	})

	routes.SetupSessionRoutes(router, controllers.NewSessionController(engine, scorer, progress))
	routes.SetupProgressRoutes(router, controllers.NewProgressController(progress, store))
	routes.SetupSpeechRoutes(router, controllers.NewSpeechController(transcriber))

	return router
}
