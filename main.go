package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"studytrack-service/internal/db"
	"studytrack-service/internal/event"
	"studytrack-service/internal/handlers"
	"studytrack-service/internal/repository"
	"studytrack-service/internal/scheduler"
	"studytrack-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.Publisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, study events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("studytrack")

	// Repositories
	questionRepo := repository.NewQuestionRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	progressRepo := repository.NewProgressRepository(database)

	// Services
	var sink service.EventSink
	if publisher != nil {
		sink = publisher
	}
	questionService := service.NewQuestionService(questionRepo)
	progressService := service.NewProgressService(progressRepo, sessionRepo, answerRepo, questionRepo, sink)
	statsService := service.NewStatsService(progressRepo, answerRepo, questionRepo)

	// Handlers
	questionHandler := handlers.NewQuestionHandler(questionService)
	sessionHandler := handlers.NewSessionHandler(questionService, progressService)
	statsHandler := handlers.NewStatsHandler(statsService, progressService)

	// Public routes - question catalog browsing
	publicQuestion := r.Group("/public/study/question")
	{
		publicQuestion.GET("/", func(c *gin.Context) {
			questionHandler.ListQuestions(c)
			if publisher != nil {
				publisher.Publish("question.list", gin.H{"category": c.Query("category")})
			}
		})
		publicQuestion.GET("/:id", func(c *gin.Context) {
			questionHandler.GetQuestion(c)
			if publisher != nil {
				publisher.Publish("question.get", gin.H{"id": c.Param("id")})
			}
		})
	}

	// Protected routes - catalog administration
	protectedQuestion := r.Group("/protected/study/question")
	protectedQuestion.Use(requireUserID())
	{
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.POST("/bulk", questionHandler.BulkCreateQuestions)
		protectedQuestion.POST("/import", func(c *gin.Context) {
			questionHandler.ImportQuestions(c)
			if publisher != nil {
				publisher.Publish("question.imported", gin.H{"user_id": c.GetHeader("X-User-ID")})
			}
		})
		protectedQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	// Protected routes - practice sessions and stats
	protectedStudy := r.Group("/protected/study")
	protectedStudy.Use(requireUserID())
	{
		protectedStudy.GET("/session/start", sessionHandler.StartSession)
		protectedStudy.POST("/session/complete", sessionHandler.CompleteSession)
		protectedStudy.GET("/session/history", sessionHandler.GetSessionHistory)
		protectedStudy.GET("/stats", statsHandler.GetStats)
		protectedStudy.GET("/progress", statsHandler.GetProgress)
	}

	// Daily streak-at-risk sweep
	sweeper := scheduler.New(progressRepo, sink)
	sweeper.Start()
	defer sweeper.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "6680"
	}
	r.Run(":" + port)
}

// requireUserID rejects protected requests without the gateway-injected
// identity header.
func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
