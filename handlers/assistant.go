package handlers

import (
	"net/http"

	"aster/models"
	"aster/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the proposal workflow and the tool surface.
type AssistantHandler struct {
	Service assistant.AssistantService
	Logger  *zap.Logger
}

func NewAssistantHandler(svc assistant.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Service: svc, Logger: logger}
}

// ScheduleMeeting drafts a meeting proposal. Nothing is written to the
// calendar until the proposal is confirmed.
func (h *AssistantHandler) ScheduleMeeting(c *gin.Context) {
	var req assistant.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	proposal, err := h.Service.BuildMeetingProposal(c.Request.Context(), req)
	if err != nil {
		h.Logger.Warn("failed to build proposal",
			zap.String("attendee", req.AttendeeName), zap.String("date", req.Date), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"proposalId": proposal.ProposalID,
		"proposal":   proposal,
	})
}

// CreateEvent drafts an arbitrary event from caller-supplied times. Like a
// scheduled meeting, it waits as a pending proposal for an explicit confirm.
func (h *AssistantHandler) CreateEvent(c *gin.Context) {
	var req assistant.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	proposal, err := h.Service.BuildEventProposal(c.Request.Context(), req)
	if err != nil {
		h.Logger.Warn("failed to build event proposal",
			zap.String("title", req.Title), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"proposalId": proposal.ProposalID,
		"proposal":   proposal,
	})
}

// ConfirmProposal finalizes a pending proposal and persists its event.
func (h *AssistantHandler) ConfirmProposal(c *gin.Context) {
	var input struct {
		ProposalID string `json:"proposalId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	event, err := h.Service.ConfirmProposal(c.Request.Context(), input.ProposalID)
	if err != nil {
		h.Logger.Warn("failed to confirm proposal",
			zap.String("proposalId", input.ProposalID), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// CancelProposal discards a pending proposal.
func (h *AssistantHandler) CancelProposal(c *gin.Context) {
	proposalID := c.Param("proposalID")

	if err := h.Service.CancelProposal(c.Request.Context(), proposalID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DispatchTool routes a structured tool request.
func (h *AssistantHandler) DispatchTool(c *gin.Context) {
	var req models.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Dispatch(c.Request.Context(), req)
	if err != nil {
		h.Logger.Warn("tool dispatch failed", zap.String("kind", string(req.Kind)), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
