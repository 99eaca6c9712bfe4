// File: services/assistant/event.go
package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aster/models"
	"aster/services/schedule"

	"github.com/google/uuid"
)

// ErrInvalidEvent wraps validation failures on a caller-supplied event draft.
var ErrInvalidEvent = errors.New("invalid event")

// EventRequest is a fully specified event draft from the caller: no slot
// discovery or contact resolution, just the times and attendees as given.
type EventRequest struct {
	Title     string   `json:"title" binding:"required"`
	Start     string   `json:"start" binding:"required"`
	End       string   `json:"end" binding:"required"`
	Attendees []string `json:"attendees,omitempty"`
}

// BuildEventProposal drafts an event exactly as requested and stores it as a
// PENDING proposal. Confirmation goes through the same gate as scheduled
// meetings, so the calendar is still written exactly once and only on an
// explicit confirm.
func (s *DefaultAssistantService) BuildEventProposal(ctx context.Context, req EventRequest) (*models.MeetingProposal, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidEvent)
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return nil, schedule.WrapDomainError(schedule.CodeInvalidDate,
			fmt.Sprintf("cannot parse start time %q", req.Start), err)
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return nil, schedule.WrapDomainError(schedule.CodeInvalidDate,
			fmt.Sprintf("cannot parse end time %q", req.End), err)
	}
	if !end.After(start) {
		return nil, schedule.NewDomainError(schedule.CodeInvalidWindow,
			"event end must be after its start")
	}

	proposal := &models.MeetingProposal{
		ProposalID:      uuid.New().String(),
		Date:            start.Format("2006-01-02"),
		DurationMinutes: int(end.Sub(start) / time.Minute),
		Purpose:         req.Title,
		EventDraft: models.EventDraft{
			Title:     req.Title,
			Start:     start,
			End:       end,
			Attendees: req.Attendees,
		},
		Status:    models.ProposalPending,
		CreatedAt: time.Now(),
	}

	if err := s.Proposals.Save(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to store proposal: %w", err)
	}

	return proposal, nil
}
