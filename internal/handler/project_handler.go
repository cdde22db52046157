package handler

import (
	"errors"

	apperrors "enso/internal/errors"
	"enso/internal/middleware"
	"enso/internal/models"
	"enso/internal/service"
	"enso/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectHandler handles HTTP requests for project operations. Project-level
// access is evaluated per request by the service, so these routes sit behind
// plain authentication rather than team authorization middleware.
type ProjectHandler struct {
	service service.ProjectServicer
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service service.ProjectServicer) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// currentUserID parses the authenticated user id from the request context.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr := middleware.GetUserID(c)
	if userIDStr == "" {
		response.Unauthorized(c, "user not authenticated")
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return primitive.NilObjectID, false
	}

	return userID, true
}

// pathObjectID parses an ObjectID path parameter, writing a 400 on failure.
func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// writeProjectError maps service errors shared by most project endpoints.
func writeProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrProjectNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrProjectAccessDenied):
		response.Forbidden(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// CreateProject godoc
// @Summary      Create a new project
// @Description  Create a project in a team. The creator becomes the owner. Viewers cannot create projects.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                       true  "Team ID"
// @Param        body    body      models.CreateProjectRequest  true  "Project details"
// @Success      201     {object}  response.Response{data=models.ProjectWithPermissions}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotTeamMember):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrInsufficientPermissions):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, project)
}

// ListProjects godoc
// @Summary      List team projects
// @Description  List the projects in a team that are visible to the authenticated user. Private projects of other members are omitted.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.ProjectListResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.ListProjects(c.Request.Context(), teamID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotTeamMember) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetProject godoc
// @Summary      Get project details
// @Description  Retrieve a project with the caller's capability set. Media board items carry short-lived download URLs.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response{data=models.ProjectWithPermissions}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	project, err := h.service.GetProject(c.Request.Context(), projectID, userID)
	if err != nil {
		writeProjectError(c, err)
		return
	}

	response.Success(c, project)
}

// UpdateProject godoc
// @Summary      Update project
// @Description  Update project fields. Requires edit permission on the project.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Project ID"
// @Param        body  body      models.UpdateProjectRequest  true  "Fields to update"
// @Success      200   {object}  response.Response{data=models.ProjectWithPermissions}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		writeProjectError(c, err)
		return
	}

	response.Success(c, project)
}

// DeleteProject godoc
// @Summary      Delete project
// @Description  Delete a project. Requires delete permission (owner, or team owner/admin on team-visible projects).
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), projectID, userID); err != nil {
		writeProjectError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "project deleted"})
}

// AddCollaborator godoc
// @Summary      Add project collaborator
// @Description  Attach a team member as an explicit collaborator. Requires collaborator-management permission.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Project ID"
// @Param        body  body      models.AddCollaboratorRequest  true  "Collaborator details"
// @Success      200   {object}  response.Response{data=models.Project}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id}/collaborators [post]
func (h *ProjectHandler) AddCollaborator(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req models.AddCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.service.AddCollaborator(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotTeamMember):
			response.BadRequest(c, "collaborator must be a team member")
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		default:
			writeProjectError(c, err)
		}
		return
	}

	response.Success(c, project)
}

// RemoveCollaborator godoc
// @Summary      Remove project collaborator
// @Description  Detach an explicit collaborator. The project owner cannot be removed.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id      path      string  true  "Project ID"
// @Param        userId  path      string  true  "Collaborator user ID"
// @Success      200     {object}  response.Response{data=models.Project}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id}/collaborators/{userId} [delete]
func (h *ProjectHandler) RemoveCollaborator(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	collaboratorID, ok := pathObjectID(c, "userId")
	if !ok {
		return
	}

	project, err := h.service.RemoveCollaborator(c.Request.Context(), projectID, userID, collaboratorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrOwnerAlwaysCollaborates):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrCollaboratorNotFound):
			response.NotFound(c, err.Error())
		default:
			writeProjectError(c, err)
		}
		return
	}

	response.Success(c, project)
}

// AddBoardItem godoc
// @Summary      Add mood-board item
// @Description  Add an item to the project mood board. Media items return a presigned upload URL.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Project ID"
// @Param        body  body      models.AddBoardItemRequest  true  "Board item details"
// @Success      201   {object}  response.Response{data=models.AddBoardItemResponse}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id}/board [post]
func (h *ProjectHandler) AddBoardItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req models.AddBoardItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddBoardItem(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		writeProjectError(c, err)
		return
	}

	response.Created(c, result)
}

// RemoveBoardItem godoc
// @Summary      Remove mood-board item
// @Description  Remove an item from the project mood board
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id      path      string  true  "Project ID"
// @Param        itemId  path      string  true  "Board item ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id}/board/{itemId} [delete]
func (h *ProjectHandler) RemoveBoardItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	itemID, ok := pathObjectID(c, "itemId")
	if !ok {
		return
	}

	if err := h.service.RemoveBoardItem(c.Request.Context(), projectID, userID, itemID); err != nil {
		if errors.Is(err, apperrors.ErrBoardItemNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		writeProjectError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "board item removed"})
}
