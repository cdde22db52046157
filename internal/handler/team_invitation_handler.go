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

// TeamInvitationHandler handles HTTP requests for invitation operations.
type TeamInvitationHandler struct {
	invitationService service.TeamInvitationServicer
	userService       service.UserServicer
}

// NewTeamInvitationHandler creates a new TeamInvitationHandler.
func NewTeamInvitationHandler(invitationService service.TeamInvitationServicer, userService service.UserServicer) *TeamInvitationHandler {
	return &TeamInvitationHandler{
		invitationService: invitationService,
		userService:       userService,
	}
}

// currentUser resolves the authenticated user record for handlers that need
// the account email to match against invitations.
func (h *TeamInvitationHandler) currentUser(c *gin.Context) (*models.User, primitive.ObjectID, bool) {
	userIDStr := middleware.GetUserID(c)
	if userIDStr == "" {
		response.Unauthorized(c, "user not authenticated")
		return nil, primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return nil, primitive.NilObjectID, false
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return nil, primitive.NilObjectID, false
	}

	return user, userID, true
}

// CreateInvitation godoc
// @Summary      Create team invitation
// @Description  Invite a user to join a team. Requires owner or admin role.
// @Tags         team-invitations
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                          true  "Team ID"
// @Param        body    body      models.CreateInvitationRequest  true  "Invitation details"
// @Success      201     {object}  response.Response{data=models.TeamInvitation}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invitations [post]
func (h *TeamInvitationHandler) CreateInvitation(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	inviterIDStr := middleware.GetUserID(c)
	inviterID, _ := primitive.ObjectIDFromHex(inviterIDStr)

	var req models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invitation, err := h.invitationService.CreateInvitation(c.Request.Context(), teamID, inviterID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyMember) {
			response.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrPendingInvitation) {
			response.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, invitation)
}

// ListTeamInvitations godoc
// @Summary      List team invitations
// @Description  List pending invitations for a team. Pass includeExpired=true to also return pending invitations whose deadline has passed. Requires owner or admin role.
// @Tags         team-invitations
// @Accept       json
// @Produce      json
// @Param        teamId          path      string  true   "Team ID"
// @Param        includeExpired  query     bool    false  "Include expired pending invitations"
// @Success      200             {object}  response.Response{data=models.InvitationListResponse}
// @Failure      400             {object}  response.Response
// @Failure      401             {object}  response.Response
// @Failure      403             {object}  response.Response
// @Failure      500             {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invitations [get]
func (h *TeamInvitationHandler) ListTeamInvitations(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	includeExpired := c.Query("includeExpired") == "true"

	result, err := h.invitationService.ListTeamInvitations(c.Request.Context(), teamID, includeExpired)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// CancelInvitation godoc
// @Summary      Cancel team invitation
// @Description  Cancel a pending invitation. Requires owner or admin role.
// @Tags         team-invitations
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        id      path      string  true  "Invitation ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/invitations/{id} [delete]
func (h *TeamInvitationHandler) CancelInvitation(c *gin.Context) {
	teamID, exists := middleware.GetTeamID(c)
	if !exists {
		response.BadRequest(c, "team id not found in context")
		return
	}

	invitationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid invitation id format")
		return
	}

	if err := h.invitationService.CancelInvitation(c.Request.Context(), invitationID, teamID); err != nil {
		if errors.Is(err, apperrors.ErrInvitationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvitationNotPending) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "invitation cancelled"})
}

// ListMyInvitations godoc
// @Summary      List my invitations
// @Description  List all pending invitations addressed to the authenticated user's email
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.MyInvitationListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations [get]
func (h *TeamInvitationHandler) ListMyInvitations(c *gin.Context) {
	user, _, ok := h.currentUser(c)
	if !ok {
		return
	}

	result, err := h.invitationService.ListMyInvitations(c.Request.Context(), user.Email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// AcceptInvitation godoc
// @Summary      Accept invitation
// @Description  Accept an invitation to join a team. Accepting an invitation that was already accepted by the same user succeeds again.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        id  path      string  true  "Invitation ID"
// @Success      200 {object}  response.Response{data=models.AcceptInvitationResponse}
// @Failure      400 {object}  response.Response
// @Failure      401 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Failure      409 {object}  response.Response
// @Failure      500 {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations/{id}/accept [post]
func (h *TeamInvitationHandler) AcceptInvitation(c *gin.Context) {
	user, userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	invitationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid invitation id format")
		return
	}

	result, err := h.invitationService.AcceptInvitation(c.Request.Context(), invitationID, userID, user.Email)
	if err != nil {
		h.writeAcceptError(c, err)
		return
	}

	response.Success(c, result)
}

// AcceptInvitationByToken godoc
// @Summary      Accept invitation by token
// @Description  Accept an invitation using the opaque token from the invitation email link
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        body  body      models.AcceptByTokenRequest  true  "Invitation token"
// @Success      200   {object}  response.Response{data=models.AcceptInvitationResponse}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations/accept [post]
func (h *TeamInvitationHandler) AcceptInvitationByToken(c *gin.Context) {
	user, userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req models.AcceptByTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.invitationService.AcceptInvitationByToken(c.Request.Context(), req.Token, userID, user.Email)
	if err != nil {
		h.writeAcceptError(c, err)
		return
	}

	response.Success(c, result)
}

func (h *TeamInvitationHandler) writeAcceptError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvitationNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrInvitationEmailMismatch):
		response.Forbidden(c, err.Error())
	case errors.Is(err, apperrors.ErrInvitationExpired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrInvitationNotPending):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// DeclineInvitation godoc
// @Summary      Decline invitation
// @Description  Decline an invitation to join a team
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        id  path      string  true  "Invitation ID"
// @Success      200 {object}  response.Response
// @Failure      400 {object}  response.Response
// @Failure      401 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Failure      409 {object}  response.Response
// @Failure      500 {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations/{id}/decline [post]
func (h *TeamInvitationHandler) DeclineInvitation(c *gin.Context) {
	user, _, ok := h.currentUser(c)
	if !ok {
		return
	}

	invitationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid invitation id format")
		return
	}

	if err := h.invitationService.DeclineInvitation(c.Request.Context(), invitationID, user.Email); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvitationNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInvitationEmailMismatch):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrInvitationExpired):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrInvitationNotPending):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, gin.H{"message": "invitation declined"})
}
