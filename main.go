package main

import (
	"os"
	"time"

	"eduplatform/config"
	"eduplatform/database"
	routes "eduplatform/internal/app/http"
	"eduplatform/internal/infra/stripe"
	"eduplatform/internal/jobs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	stripe.Init()
	jobs.SetDispatcher(jobs.NewPool(4))
	jobs.SetMailer(jobs.NewSMTPMailer())
	jobs.StartScheduler(jobs.Dispatch())

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
