package handlers

import (
	"net/http"
	"strconv"
	"time"

	"aster/models"
	"aster/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves day availability.
type CalendarHandler struct {
	Schedule schedule.ScheduleService
	Logger   *zap.Logger
}

func NewCalendarHandler(svc schedule.ScheduleService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Schedule: svc, Logger: logger}
}

// FreeSlotsHandler returns the open blocks for a date. Defaults: today,
// 9-18 working hours.
func (h *CalendarHandler) FreeSlotsHandler(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	window, err := windowFromQuery(c, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slots, err := h.Schedule.FreeSlots(c.Request.Context(), date, window)
	if err != nil {
		h.Logger.Warn("failed to compute free slots", zap.String("date", date), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "freeSlots": slots})
}

// DayHandler returns events, free slots and the free-minute total for a date.
func (h *CalendarHandler) DayHandler(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	window, err := windowFromQuery(c, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	overview, err := h.Schedule.DayOverview(c.Request.Context(), date, window)
	if err != nil {
		h.Logger.Warn("failed to build day overview", zap.String("date", date), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func windowFromQuery(c *gin.Context, date string) (*models.WorkWindow, error) {
	startStr := c.Query("workStart")
	endStr := c.Query("workEnd")
	if startStr == "" && endStr == "" {
		return nil, nil
	}

	win := models.DefaultWorkWindow(date)
	if startStr != "" {
		start, err := strconv.Atoi(startStr)
		if err != nil {
			return nil, err
		}
		win.StartHour = start
	}
	if endStr != "" {
		end, err := strconv.Atoi(endStr)
		if err != nil {
			return nil, err
		}
		win.EndHour = end
	}
	return &win, nil
}
