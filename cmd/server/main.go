package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"enso/internal/authz"
	"enso/internal/cache"
	"enso/internal/config"
	"enso/internal/database"
	"enso/internal/handler"
	"enso/internal/mailer"
	"enso/internal/queue"
	"enso/internal/repository"
	"enso/internal/router"
	"enso/internal/service"
	"enso/internal/storage"
	"enso/internal/validator"
	"enso/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Enso API
// @version         1.0
// @description     A REST API for team-based project management with mood boards and task dependencies. Built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage for mood board media
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	refreshTokenRepo := repository.NewRefreshTokenRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	teamMemberRepo := repository.NewTeamMemberRepository(mongoDB.Database)
	teamInvitationRepo := repository.NewTeamInvitationRepository(mongoDB.Database, cfg.InvitationExpiryDays)
	projectRepo := repository.NewProjectRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(teamMemberRepo)

	// Invitation email delivery. Without SMTP configured invitations still
	// work; they just have to be accepted from the in-app list.
	var emailQueue *queue.MemoryQueue
	var emailProcessor *queue.Processor
	if cfg.EmailEnabled {
		emailQueue = queue.NewMemoryQueue(100)
		smtpMailer := mailer.NewSMTPService(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
		emailProcessor = queue.NewProcessor(emailQueue, smtpMailer, teamInvitationRepo, cfg.EmailWorkers)
	}

	// Service layer
	teamService := service.NewTeamService(teamRepo, teamMemberRepo, teamInvitationRepo, projectRepo)
	userService := service.NewUserService(userRepo, redisCache)
	teamMemberService := service.NewTeamMemberService(teamMemberRepo, userRepo, teamRepo)
	projectService := service.NewProjectService(projectRepo, teamMemberRepo, teamRepo, userRepo, s3Client)
	taskService := service.NewTaskService(projectRepo, teamMemberRepo, teamRepo)

	var invitationQueue queue.Queue
	if emailQueue != nil {
		invitationQueue = emailQueue
	}
	teamInvitationService := service.NewTeamInvitationService(teamInvitationRepo, teamMemberRepo, teamRepo, userRepo, invitationQueue, cfg.AppBaseURL)

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		TeamService:      teamService,
		Cache:            redisCache,
		TokenStore:       cache.NewRefreshTokenStore(redisCache),
		JWTManager:       jwtManager,
		TokenGenerator:   auth.NewRefreshTokenGenerator(),
		AccessTokenTTL:   cfg.AccessTokenExpiry,
		RefreshTokenTTL:  cfg.RefreshTokenExpiry,
		RotationEnabled:  cfg.RotateRefreshToken,
	})

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	teamHandler := handler.NewTeamHandler(teamService)
	teamMemberHandler := handler.NewTeamMemberHandler(teamMemberService)
	invitationHandler := handler.NewTeamInvitationHandler(teamInvitationService, userService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		TeamHandler:       teamHandler,
		TeamMemberHandler: teamMemberHandler,
		InvitationHandler: invitationHandler,
		ProjectHandler:    projectHandler,
		TaskHandler:       taskHandler,
		JWTManager:        jwtManager,
		Authorizer:        authorizer,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start invitation email processor
	if emailProcessor != nil {
		emailProcessor.Start(ctx)
	}

	// Sweep expired invitations once a day. Terminal rows are kept.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed, err := teamInvitationService.SweepExpired(ctx); err != nil {
					log.Printf("Invitation sweep failed: %v", err)
				} else if removed > 0 {
					log.Printf("Invitation sweep removed %d expired invitations", removed)
				}
			}
		}
	}()

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop email processor (waits for workers)
	if emailProcessor != nil {
		log.Println("Stopping invitation email processor...")
		emailProcessor.Stop()
	}

	log.Println("Server shutdown complete")
}
