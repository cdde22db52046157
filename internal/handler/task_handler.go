package handler

import (
	"errors"

	apperrors "enso/internal/errors"
	"enso/internal/models"
	"enso/internal/service"
	"enso/pkg/response"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for task operations within a project.
type TaskHandler struct {
	service service.TaskServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service service.TaskServicer) *TaskHandler {
	return &TaskHandler{service: service}
}

func writeTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTaskNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrUnknownDependency):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrTaskBlocked):
		response.Conflict(c, err.Error())
	default:
		writeProjectError(c, err)
	}
}

// AddTask godoc
// @Summary      Add task
// @Description  Add a task to a project. New tasks start as todo with no dependencies.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Project ID"
// @Param        body  body      models.CreateTaskRequest  true  "Task details"
// @Success      201   {object}  response.Response{data=models.Task}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id}/tasks [post]
func (h *TaskHandler) AddTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.AddTask(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		writeTaskError(c, err)
		return
	}

	response.Created(c, task)
}

// UpdateTask godoc
// @Summary      Update task
// @Description  Update a task's text, deadline, or images. Status moves only through the status-cycle endpoint.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id      path      string                    true  "Project ID"
// @Param        taskId  path      string                    true  "Task ID"
// @Param        body    body      models.UpdateTaskRequest  true  "Fields to update"
// @Success      200     {object}  response.Response{data=models.Task}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id}/tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	taskID, ok := pathObjectID(c, "taskId")
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), projectID, taskID, userID, &req)
	if err != nil {
		writeTaskError(c, err)
		return
	}

	response.Success(c, task)
}

// DeleteTask godoc
// @Summary      Delete task
// @Description  Delete a task. Dependency edges pointing at it become inert; they are not rewritten.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id      path      string  true  "Project ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	taskID, ok := pathObjectID(c, "taskId")
	if !ok {
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), projectID, taskID, userID); err != nil {
		writeTaskError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "task deleted"})
}

// CycleTaskStatus godoc
// @Summary      Cycle task status
// @Description  Advance the task one step through todo → in-progress → review → done → todo. Leaving todo is refused with 409 while a direct dependency is not done.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id      path      string  true  "Project ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  response.Response{data=models.TaskStatusResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id}/tasks/{taskId}/status [post]
func (h *TaskHandler) CycleTaskStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	taskID, ok := pathObjectID(c, "taskId")
	if !ok {
		return
	}

	result, err := h.service.CycleTaskStatus(c.Request.Context(), projectID, taskID, userID)
	if err != nil {
		writeTaskError(c, err)
		return
	}

	response.Success(c, result)
}

// SetDependencies godoc
// @Summary      Set task dependencies
// @Description  Replace a task's dependency set. Every id must reference another task in the same project.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id      path      string                         true  "Project ID"
// @Param        taskId  path      string                         true  "Task ID"
// @Param        body    body      models.SetDependenciesRequest  true  "Dependency task IDs"
// @Success      200     {object}  response.Response{data=models.Task}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id}/tasks/{taskId}/dependencies [put]
func (h *TaskHandler) SetDependencies(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	taskID, ok := pathObjectID(c, "taskId")
	if !ok {
		return
	}

	var req models.SetDependenciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.SetDependencies(c.Request.Context(), projectID, taskID, userID, &req)
	if err != nil {
		writeTaskError(c, err)
		return
	}

	response.Success(c, task)
}

// GetTaskBlockers godoc
// @Summary      Get task blockers
// @Description  Report whether a task is blocked and which sibling tasks block it
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id      path      string  true  "Project ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  response.Response{data=models.TaskBlockersResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id}/tasks/{taskId}/blockers [get]
func (h *TaskHandler) GetTaskBlockers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	taskID, ok := pathObjectID(c, "taskId")
	if !ok {
		return
	}

	result, err := h.service.GetTaskBlockers(c.Request.Context(), projectID, taskID, userID)
	if err != nil {
		writeTaskError(c, err)
		return
	}

	response.Success(c, result)
}
