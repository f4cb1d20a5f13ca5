package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ngofreelancing/platform-api/internal/auth"
	"github.com/ngofreelancing/platform-api/internal/config"
	"github.com/ngofreelancing/platform-api/internal/database"
	"github.com/ngofreelancing/platform-api/internal/handlers"
	"github.com/ngofreelancing/platform-api/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside local dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseURL)

	// 3. Initialize Core Services (Dependencies)
	chatService := services.NewChatService(cfg.GeminiAPIKey)
	jobService := services.NewJobService(db, cfg.JobsFallbackAll)
	applicationService := services.NewApplicationService(db)
	organizationService := services.NewOrganizationService(db)

	// 4. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, jobService, applicationService)
	chatHandler := handlers.NewChatHandler(chatService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{
		"Origin", "Content-Length", "Content-Type", "Authorization",
		auth.HeaderUserID, auth.HeaderUserEmail, auth.HeaderUserName,
	}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/jobs", jobHandler.ListJobs)
		api.POST("/chat", chatHandler.Chat)

		// Applicant Routes
		api.POST("/jobs/:id/applications", auth.RequireAuth(), applicationHandler.Submit)
		me := api.Group("/me", auth.RequireAuth())
		{
			me.GET("/applications", applicationHandler.ListMine)
			me.DELETE("/applications/:id", applicationHandler.Withdraw)
		}

		// Organization Routes
		orgs := api.Group("/organizations", auth.RequireAuth())
		{
			orgs.POST("", organizationHandler.Register)
			orgs.GET("/me", organizationHandler.Me)
			orgs.PATCH("/me", organizationHandler.UpdateMe)

			orgs.POST("/me/jobs", organizationHandler.CreateJob)
			orgs.GET("/me/jobs", organizationHandler.ListJobs)
			orgs.GET("/me/jobs/:id", organizationHandler.GetJob)
			orgs.DELETE("/me/jobs/:id", organizationHandler.DeleteJob)
			orgs.PATCH("/me/jobs/:id/status", organizationHandler.UpdateJobStatus)
			orgs.GET("/me/jobs/:id/applications", organizationHandler.ListJobApplications)

			orgs.GET("/me/applications", organizationHandler.ListApplications)
			orgs.PATCH("/me/applications/:id", organizationHandler.UpdateApplicationStatus)
		}
	}

	log.Println("🚀 Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
