package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Ta1kunjms/GensanWorks/config"
	"github.com/Ta1kunjms/GensanWorks/internal/api/handlers"
	"github.com/Ta1kunjms/GensanWorks/internal/api/middleware"
	"github.com/Ta1kunjms/GensanWorks/internal/api/routes"
	"github.com/Ta1kunjms/GensanWorks/internal/cache"
	"github.com/Ta1kunjms/GensanWorks/internal/logger"
	"github.com/Ta1kunjms/GensanWorks/internal/repositories"
	"github.com/Ta1kunjms/GensanWorks/internal/services"
	"github.com/Ta1kunjms/GensanWorks/internal/storage"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	if err := config.InitDatabase(); err != nil {
		log.WithError(err).Fatal("database init failed")
	}
	log.Info("database connected")

	// cache is optional: without it roster stats are computed per request
	var stats cache.Cache
	if os.Getenv("REDIS_ADDR") != "" || os.Getenv("REDIS_URL") != "" {
		if err := config.InitRedis(); err != nil {
			log.WithError(err).Fatal("redis init failed")
		}
		stats = cache.NewRedisCache(config.RedisClient)
		log.Info("redis connected")
	} else {
		log.Warn("REDIS_ADDR not set, roster stats cache disabled")
	}

	// file storage is optional: without it requirement uploads are rejected
	var uploader storage.Uploader
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		up, err := storage.NewGCSUploader(context.Background(), bucket)
		if err != nil {
			log.WithError(err).Fatal("storage init failed")
		}
		defer up.Close()
		uploader = up
		log.Info("file storage connected")
	} else {
		log.Warn("GCS_BUCKET not set, requirement uploads disabled")
	}

	applicantRepo := repositories.NewApplicantRepo(config.DB)
	employerRepo := repositories.NewEmployerRepo(config.DB)
	jobRepo := repositories.NewJobRepo(config.DB)
	applicationRepo := repositories.NewApplicationRepo(config.DB)
	referralRepo := repositories.NewReferralRepo(config.DB)
	adminRepo := repositories.NewAdminRepo(config.DB)
	fileRepo := repositories.NewRequirementFileRepo(config.DB)

	authSvc := services.NewAuthService(applicantRepo, employerRepo, adminRepo)
	applicantSvc := services.NewApplicantService(applicantRepo)
	employerSvc := services.NewEmployerService(employerRepo, stats, log)
	jobSvc := services.NewJobService(jobRepo, employerRepo)
	applicationSvc := services.NewApplicationService(applicationRepo, jobRepo)
	referralSvc := services.NewReferralService(referralRepo, applicantRepo, jobRepo)
	fileSvc := services.NewRequirementFileService(fileRepo, employerSvc, uploader)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:        handlers.NewAuthHandler(authSvc),
		Applicant:   handlers.NewApplicantHandler(applicantSvc),
		Employer:    handlers.NewEmployerHandler(employerSvc, fileSvc),
		Job:         handlers.NewJobHandler(jobSvc),
		Application: handlers.NewApplicationHandler(applicationSvc),
		Referral:    handlers.NewReferralHandler(referralSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
