package assistant

import (
	"context"

	calendarRepo "aster/database/repository/calendar"
	contactRepo "aster/database/repository/contact"
	"aster/models"
	"aster/services/schedule"
	"aster/services/todo"
)

// AssistantService drives the meeting-proposal workflow and the structured
// tool surface the chat layer calls into.
type AssistantService interface {
	BuildMeetingProposal(ctx context.Context, req ProposalRequest) (*models.MeetingProposal, error)
	BuildEventProposal(ctx context.Context, req EventRequest) (*models.MeetingProposal, error)
	ConfirmProposal(ctx context.Context, proposalID string) (*models.Event, error)
	CancelProposal(ctx context.Context, proposalID string) error
	Dispatch(ctx context.Context, req models.ToolRequest) (*models.ToolResponse, error)
}

// ProposalRequest is the input for drafting a meeting proposal.
type ProposalRequest struct {
	AttendeeName    string                `json:"attendeeName" binding:"required"`
	Date            string                `json:"date" binding:"required"`
	DurationMinutes int                   `json:"durationMinutes,omitempty"`
	Purpose         string                `json:"purpose,omitempty"`
	Preference      models.SlotPreference `json:"preference,omitempty"`
}

// ReminderScheduler enqueues a reminder for a persisted event. Implemented by
// the reminder package; nil disables reminders.
type ReminderScheduler interface {
	ScheduleEventReminder(ctx context.Context, event models.Event) error
}

// DefaultAssistantService implements AssistantService.
type DefaultAssistantService struct {
	Contacts  contactRepo.ContactRepository
	Calendar  calendarRepo.CalendarRepository
	Schedule  schedule.ScheduleService
	Todos     todo.TodoService
	Proposals ProposalStore
	Reminders ReminderScheduler
}
