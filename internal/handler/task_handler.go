package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-planner-api/internal/dto"
	"github.com/noah-isme/study-planner-api/internal/service"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
	"github.com/noah-isme/study-planner-api/pkg/response"
)

type taskMutator interface {
	AddTask(ctx context.Context, planID string, req dto.AddTaskRequest) (*dto.TaskMutationResponse, error)
	UpdateTask(ctx context.Context, planID, taskID string, req dto.UpdateTaskRequest) (*dto.TaskMutationResponse, error)
	DeleteTask(ctx context.Context, planID, taskID string) (*dto.TaskMutationResponse, error)
	MoveTask(ctx context.Context, planID, taskID string, req dto.MoveTaskRequest) (*dto.TaskMutationResponse, error)
	CompleteTask(ctx context.Context, planID, taskID string, req dto.CompleteTaskRequest) (*dto.TaskMutationResponse, error)
}

// TaskHandler exposes task mutation endpoints on saved plans.
type TaskHandler struct {
	service taskMutator
}

// NewTaskHandler constructs the handler.
func NewTaskHandler(svc *service.MutationService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// Add godoc
// @Summary Add a task to a plan day
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param payload body dto.AddTaskRequest true "Task payload"
// @Success 201 {object} response.Envelope
// @Router /plans/{id}/tasks [post]
func (h *TaskHandler) Add(c *gin.Context) {
	var req dto.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid task payload"))
		return
	}
	result, err := h.service.AddTask(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Update godoc
// @Summary Update fields of an existing task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param taskId path string true "Task ID"
// @Param payload body dto.UpdateTaskRequest true "Patch payload"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/tasks/{taskId} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid task patch"))
		return
	}
	result, err := h.service.UpdateTask(c.Request.Context(), c.Param("id"), c.Param("taskId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Delete godoc
// @Summary Remove a task from a plan
// @Tags Tasks
// @Produce json
// @Param id path string true "Plan ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/tasks/{taskId} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	result, err := h.service.DeleteTask(c.Request.Context(), c.Param("id"), c.Param("taskId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Move godoc
// @Summary Move a task to another date
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param taskId path string true "Task ID"
// @Param payload body dto.MoveTaskRequest true "Move payload"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/tasks/{taskId}/move [post]
func (h *TaskHandler) Move(c *gin.Context) {
	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid move payload"))
		return
	}
	result, err := h.service.MoveTask(c.Request.Context(), c.Param("id"), c.Param("taskId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Complete godoc
// @Summary Mark a task as completed
// @Description Safe to call repeatedly. Notes and time taken are kept from earlier calls when omitted.
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param taskId path string true "Task ID"
// @Param payload body dto.CompleteTaskRequest false "Completion feedback"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/tasks/{taskId}/complete [post]
func (h *TaskHandler) Complete(c *gin.Context) {
	var req dto.CompleteTaskRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid completion payload"))
			return
		}
	}
	result, err := h.service.CompleteTask(c.Request.Context(), c.Param("id"), c.Param("taskId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
