// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "enso/swagger" // Import generated swagger docs

	"enso/internal/authz"
	"enso/internal/handler"
	"enso/internal/middleware"
	"enso/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	TeamHandler       *handler.TeamHandler
	TeamMemberHandler *handler.TeamMemberHandler
	InvitationHandler *handler.TeamInvitationHandler
	ProjectHandler    *handler.ProjectHandler
	TaskHandler       *handler.TaskHandler
	JWTManager        *auth.JWTManager
	Authorizer        authz.Authorizer
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.Auth(cfg.JWTManager))
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
			authProtected.POST("/logout-all", cfg.AuthHandler.LogoutAll)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(middleware.Auth(cfg.JWTManager))
		{
			users.GET("", cfg.UserHandler.GetAllUsers)
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.PUT("/:id", cfg.UserHandler.UpdateUser)
			users.DELETE("/:id", cfg.UserHandler.DeleteUser)
		}

		// Team routes (protected)
		teams := v1.Group("/teams")
		teams.Use(middleware.Auth(cfg.JWTManager))
		{
			// Team CRUD
			teams.POST("", cfg.TeamHandler.CreateTeam)
			teams.GET("", cfg.TeamHandler.ListTeams)
			teams.GET("/default", cfg.TeamHandler.GetDefaultTeam)

			// Team routes requiring team membership
			teamWithID := teams.Group("/:teamId")
			{
				// Team details - requires view permission
				teamWithID.GET("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamView), cfg.TeamHandler.GetTeam)
				teamWithID.PUT("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamUpdate), cfg.TeamHandler.UpdateTeam)
				teamWithID.DELETE("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamDelete), cfg.TeamHandler.DeleteTeam)
				teamWithID.POST("/transfer", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamTransfer), cfg.TeamHandler.TransferOwnership)

				// Restore is not behind TeamAuthz: a deleted team has no
				// memberships to authorize against.
				teamWithID.POST("/restore", cfg.TeamHandler.RestoreTeam)

				// Team members
				members := teamWithID.Group("/members")
				{
					members.GET("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamView), cfg.TeamMemberHandler.ListMembers)
					members.DELETE("/:userId", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMemberRemove), cfg.TeamMemberHandler.RemoveMember)
					members.PUT("/:userId/role", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMemberUpdateRole), cfg.TeamMemberHandler.UpdateRole)
				}
				teamWithID.POST("/leave", middleware.TeamMember(cfg.Authorizer), cfg.TeamMemberHandler.LeaveTeam)

				// Team invitations
				invitations := teamWithID.Group("/invitations")
				{
					invitations.POST("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMemberInvite), cfg.InvitationHandler.CreateInvitation)
					invitations.GET("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMemberInvite), cfg.InvitationHandler.ListTeamInvitations)
					invitations.DELETE("/:id", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMemberInvite), cfg.InvitationHandler.CancelInvitation)
				}

				// Team projects
				projects := teamWithID.Group("/projects")
				{
					projects.POST("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionProjectCreate), cfg.ProjectHandler.CreateProject)
					projects.GET("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionProjectList), cfg.ProjectHandler.ListProjects)
				}
			}
		}

		// Project routes (protected). Per-project access is evaluated by the
		// service from ownership, collaborators, and visibility.
		projects := v1.Group("/projects")
		projects.Use(middleware.Auth(cfg.JWTManager))
		{
			projects.GET("/:id", cfg.ProjectHandler.GetProject)
			projects.PUT("/:id", cfg.ProjectHandler.UpdateProject)
			projects.DELETE("/:id", cfg.ProjectHandler.DeleteProject)

			projects.POST("/:id/collaborators", cfg.ProjectHandler.AddCollaborator)
			projects.DELETE("/:id/collaborators/:userId", cfg.ProjectHandler.RemoveCollaborator)

			projects.POST("/:id/board", cfg.ProjectHandler.AddBoardItem)
			projects.DELETE("/:id/board/:itemId", cfg.ProjectHandler.RemoveBoardItem)

			projects.POST("/:id/tasks", cfg.TaskHandler.AddTask)
			projects.PUT("/:id/tasks/:taskId", cfg.TaskHandler.UpdateTask)
			projects.DELETE("/:id/tasks/:taskId", cfg.TaskHandler.DeleteTask)
			projects.POST("/:id/tasks/:taskId/status", cfg.TaskHandler.CycleTaskStatus)
			projects.PUT("/:id/tasks/:taskId/dependencies", cfg.TaskHandler.SetDependencies)
			projects.GET("/:id/tasks/:taskId/blockers", cfg.TaskHandler.GetTaskBlockers)
		}

		// User invitations routes (protected)
		invitations := v1.Group("/invitations")
		invitations.Use(middleware.Auth(cfg.JWTManager))
		{
			invitations.GET("", cfg.InvitationHandler.ListMyInvitations)
			invitations.POST("/accept", cfg.InvitationHandler.AcceptInvitationByToken)
			invitations.POST("/:id/accept", cfg.InvitationHandler.AcceptInvitation)
			invitations.POST("/:id/decline", cfg.InvitationHandler.DeclineInvitation)
		}
	}

	return r
}
