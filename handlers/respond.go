package handlers

import (
	"errors"
	"net/http"

	"aster/services/assistant"
	"aster/services/schedule"
	"aster/services/todo"
	"aster/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps domain errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch schedule.ErrCode(err) {
	case schedule.CodeInvalidDate, schedule.CodeInvalidWindow:
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	case schedule.CodeNoAvailability:
		utils.JSONError(c, http.StatusNotFound, "no availability", err.Error())
	case schedule.CodeInvalidTransition:
		utils.JSONError(c, http.StatusConflict, "invalid proposal state", err.Error())
	case schedule.CodeSourceUnavailable:
		utils.JSONError(c, http.StatusBadGateway, "calendar source unavailable", err.Error())
	case schedule.CodePersistenceError:
		// Confirmation failures are retryable; nothing was created.
		utils.JSONError(c, http.StatusInternalServerError, "event not yet created, try again", err.Error())
	default:
		if errors.Is(err, assistant.ErrProposalNotFound) || errors.Is(err, todo.ErrTodoNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
			return
		}
		if errors.Is(err, todo.ErrInvalidTodo) || errors.Is(err, assistant.ErrInvalidEvent) {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
