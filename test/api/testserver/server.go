//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"enso/internal/authz"
	"enso/internal/cache"
	"enso/internal/handler"
	"enso/internal/mailer"
	"enso/internal/queue"
	"enso/internal/repository"
	"enso/internal/router"
	"enso/internal/service"
	"enso/internal/storage"
	"enso/pkg/auth"
	"enso/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token expiry time used in tests.
	TestRefreshTokenExpiry = 7 * 24 * time.Hour
	// TestInvitationExpiryDays is the invitation expiry used in tests.
	TestInvitationExpiryDays = 7
	// TestAppBaseURL is the base URL rendered into invitation links.
	TestAppBaseURL = "http://localhost:8080"
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo           repository.UserRepository
	RefreshTokenRepo   repository.RefreshTokenRepository
	TeamRepo           repository.TeamRepository
	TeamMemberRepo     repository.TeamMemberRepository
	TeamInvitationRepo repository.TeamInvitationRepository
	ProjectRepo        repository.ProjectRepository

	// Services (for direct service access in tests)
	AuthService           service.AuthServicer
	UserService           service.UserServicer
	TeamService           service.TeamServicer
	TeamMemberService     service.TeamMemberServicer
	TeamInvitationService service.TeamInvitationServicer
	ProjectService        service.ProjectServicer
	TaskService           service.TaskServicer

	// Auth
	JWTManager *auth.JWTManager

	// Invitation email delivery
	EmailQueue     *queue.MemoryQueue
	EmailProcessor *queue.Processor
	Mailer         *mailer.MockService
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	refreshTokenRepo := repository.NewRefreshTokenRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	teamMemberRepo := repository.NewTeamMemberRepository(mongoDB.Database)
	teamInvitationRepo := repository.NewTeamInvitationRepository(mongoDB.Database, TestInvitationExpiryDays)
	projectRepo := repository.NewProjectRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(teamMemberRepo)

	// Invitation email queue with an in-memory mailer
	emailQueue := queue.NewMemoryQueue(100)
	mockMailer := mailer.NewMockService()
	emailProcessor := queue.NewProcessor(emailQueue, mockMailer, teamInvitationRepo, 2)

	// Service layer
	teamService := service.NewTeamService(teamRepo, teamMemberRepo, teamInvitationRepo, projectRepo)
	userService := service.NewUserService(userRepo, redisCache)
	teamMemberService := service.NewTeamMemberService(teamMemberRepo, userRepo, teamRepo)
	teamInvitationService := service.NewTeamInvitationService(teamInvitationRepo, teamMemberRepo, teamRepo, userRepo, emailQueue, TestAppBaseURL)
	projectService := service.NewProjectService(projectRepo, teamMemberRepo, teamRepo, userRepo, s3Client)
	taskService := service.NewTaskService(projectRepo, teamMemberRepo, teamRepo)

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		TeamService:      teamService,
		Cache:            redisCache,
		TokenStore:       cache.NewRefreshTokenStore(redisCache),
		JWTManager:       jwtManager,
		TokenGenerator:   auth.NewRefreshTokenGenerator(),
		AccessTokenTTL:   TestAccessTokenExpiry,
		RefreshTokenTTL:  TestRefreshTokenExpiry,
		RotationEnabled:  true,
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

	return &TestServer{
		Router:                r,
		MongoDB:               mongoDB,
		Redis:                 redisContainer,
		MinIO:                 minioContainer,
		UserRepo:              userRepo,
		RefreshTokenRepo:      refreshTokenRepo,
		TeamRepo:              teamRepo,
		TeamMemberRepo:        teamMemberRepo,
		TeamInvitationRepo:    teamInvitationRepo,
		ProjectRepo:           projectRepo,
		AuthService:           authService,
		UserService:           userService,
		TeamService:           teamService,
		TeamMemberService:     teamMemberService,
		TeamInvitationService: teamInvitationService,
		ProjectService:        projectService,
		TaskService:           taskService,
		JWTManager:            jwtManager,
		EmailQueue:            emailQueue,
		EmailProcessor:        emailProcessor,
		Mailer:                mockMailer,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartEmailProcessor starts the invitation email processor.
func (ts *TestServer) StartEmailProcessor(ctx context.Context) {
	ts.EmailProcessor.Start(ctx)
}

// StopEmailProcessor stops the email processor and resets the queue so
// subsequent tests can use it.
func (ts *TestServer) StopEmailProcessor() {
	ts.EmailProcessor.Stop()
	ts.EmailQueue.Reset()
	// Create a new processor since the old one has shutdown state
	ts.EmailProcessor = queue.NewProcessor(ts.EmailQueue, ts.Mailer, ts.TeamInvitationRepo, 2)
}
