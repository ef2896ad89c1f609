package main

import (
	"log"

	"questionnaire-backend/internal/config"
	"questionnaire-backend/internal/database"
	"questionnaire-backend/internal/handlers"
	"questionnaire-backend/internal/middleware"
	"questionnaire-backend/internal/services"
	"questionnaire-backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	completionService := services.NewCompletionService(db)
	responseService := services.NewResponseService(db)
	submissionService := services.NewSubmissionService(db, responseService, completionService)
	scoringService := services.NewScoringService()

	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(completionService)
	questionnaireHandler := handlers.NewQuestionnaireHandler(submissionService, responseService, hub)
	exportHandler := handlers.NewExportHandler(db, responseService, scoringService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Research-API-Key"},
		AllowCredentials: true,
	}))

	r.GET("/ws/research/monitor", middleware.ResearchAuth(cfg.ResearchAPIKey), wsHandler.HandleMonitor)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		participant := api.Group("")
		participant.Use(middleware.JWTAuth(authService))
		{
			participant.GET("/dashboard", dashboardHandler.GetDashboard)
			participant.GET("/questionnaires", questionnaireHandler.ListQuestionnaires)
			participant.GET("/questionnaires/:type", questionnaireHandler.GetQuestionnaire)
			participant.POST("/questionnaires/:type/submit", questionnaireHandler.Submit)
			participant.GET("/questionnaires/:type/responses", questionnaireHandler.GetResponses)
		}

		research := api.Group("/research")
		research.Use(middleware.ResearchAuth(cfg.ResearchAPIKey))
		{
			research.GET("/export", exportHandler.ExportResponses)
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
