package handlers

import (
	"net/http"

	"aster/services/todo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TodoHandler serves the todo list.
type TodoHandler struct {
	Service todo.TodoService
	Logger  *zap.Logger
}

func NewTodoHandler(svc todo.TodoService, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{Service: svc, Logger: logger}
}

func (h *TodoHandler) ListTodosHandler(c *gin.Context) {
	todos, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list todos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list todos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"todos": todos})
}

func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var input struct {
		Title    string `json:"title" binding:"required"`
		Priority string `json:"priority,omitempty"`
		DueDate  string `json:"dueDate,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input.Title, input.Priority, input.DueDate)
	if err != nil {
		h.Logger.Warn("failed to create todo", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TodoHandler) CompleteTodoHandler(c *gin.Context) {
	id := c.Param("id")

	completed, err := h.Service.Complete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, completed)
}

func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.Service.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
