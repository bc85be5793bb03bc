package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/focuskit/go-focus-app/internal/models"
	"github.com/focuskit/go-focus-app/internal/services"
)

type getTaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *string    `json:"due_date"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	return getTaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		CreatedAt:   task.CreatedAt,
		DueDate:     task.DueDate,
		Completed:   task.Completed,
		CompletedAt: task.CompletedAt,
	}
}

func newTaskListResponse(tasks []models.Task) []getTaskResponse {
	response := make([]getTaskResponse, len(tasks))
	for i := range tasks {
		response[i] = newGetTaskResponse(&tasks[i])
	}
	return response
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	var tasks []models.Task
	switch filter := c.Query("filter"); filter {
	case "":
		tasks = h.tasks.ListTasks(c)
	case "today":
		tasks = h.tasks.ListTodayTasks(c)
	case "completed":
		tasks = h.tasks.ListCompleted(c)
	case "incomplete":
		tasks = h.tasks.ListIncomplete(c)
	default:
		h.logger.Error().
			Str("filter", filter).
			Msg("unknown task filter")
		abort(c, newBadRequestError("unknown task filter"))
		return
	}

	h.logger.Debug().
		Int("count", len(tasks)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

type createTaskRequest struct {
	Title   string  `json:"title"`
	DueDate *string `json:"due_date,omitempty"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	task, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		Title:   req.Title,
		DueDate: req.DueDate,
	})
	if abortServiceError(c, err) {
		return
	}

	h.logger.Info().Msg("created task")
	c.JSON(http.StatusCreated, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	task, err := h.tasks.GetTask(c, c.Param("id"))
	if abortServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

type updateTaskRequest struct {
	Title        *string `json:"title,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	ClearDueDate bool    `json:"clear_due_date,omitempty"`
	Completed    *bool   `json:"completed,omitempty"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	if req.Title == nil && req.DueDate == nil && !req.ClearDueDate && req.Completed == nil {
		h.logger.Warn().Msg("no fields to update")
		abort(c, newBadRequestError("no fields to update"))
		return
	}

	task, err := h.tasks.UpdateTask(c, c.Param("id"), services.UpdateTaskParams{
		Title:        req.Title,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		Completed:    req.Completed,
	})
	if abortServiceError(c, err) {
		return
	}

	h.logger.Info().Msg("updated task")
	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleSetTaskCompleted(c *gin.Context) {
	value := c.Query("value")
	completed, err := strconv.ParseBool(value)
	if err != nil {
		h.logger.Error().
			Str("value", value).
			Msg("invalid completed value")
		abort(c, newBadRequestError("invalid completed value"))
		return
	}

	task, err := h.tasks.UpdateTask(c, c.Param("id"), services.UpdateTaskParams{
		Completed: &completed,
	})
	if abortServiceError(c, err) {
		return
	}

	h.logger.Info().
		Bool("completed", completed).
		Msg("updated task completion")
	c.JSON(http.StatusOK, newGetTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	id := c.Param("id")
	if !h.tasks.DeleteTask(c, id) {
		h.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		abort(c, newNotFoundError("task not found"))
		return
	}

	h.logger.Info().Msg("deleted task")
	c.Status(http.StatusNoContent)
}
