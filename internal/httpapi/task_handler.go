package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"focuswave/internal/service"
)

type TaskHandler struct {
	tasks service.TaskService
}

func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tag         string     `json:"tag"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Tag         *string    `json:"tag"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	ClearDue    bool       `json:"clearDueDate"`
}

type reorderRequest struct {
	Order []string `json:"order"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), UserID(c), service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(task))
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context(), UserID(c))
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.tasks.Get(c.Request.Context(), UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), UserID(c), c.Param("id"), service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
		ClearDue:    req.ClearDue,
	})
	if err != nil {
		writeError(c, fromError(err))
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), UserID(c), c.Param("id")); err != nil {
		writeError(c, fromError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, BadRequest("invalid_json", "invalid request body"))
		return
	}

	if err := h.tasks.Reorder(c.Request.Context(), UserID(c), req.Order); err != nil {
		writeError(c, fromError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
