package schedule

import (
	"context"

	calendarRepo "aster/database/repository/calendar"
	"aster/models"
)

// ScheduleService computes day availability on top of the calendar repository.
type ScheduleService interface {
	FreeSlots(ctx context.Context, date string, window *models.WorkWindow) ([]models.FreeSlot, error)
	DayOverview(ctx context.Context, date string, window *models.WorkWindow) (*DayOverview, error)
}

// DayOverview is the calendar day view served to clients: the day's events,
// the derived free slots and the free-minute total.
type DayOverview struct {
	Date             string            `json:"date"`
	WorkingHours     WorkingHours      `json:"workingHours"`
	Events           []models.Event    `json:"events"`
	FreeSlots        []models.FreeSlot `json:"freeSlots"`
	TotalFreeMinutes int               `json:"totalFreeMinutes"`
}

type WorkingHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Repo calendarRepo.CalendarRepository
}

// FreeSlots reads the day's busy events and derives the open blocks. A nil
// window means default working hours.
func (s *DefaultScheduleService) FreeSlots(ctx context.Context, date string, window *models.WorkWindow) ([]models.FreeSlot, error) {
	win := resolveWindow(date, window)
	if _, err := validateInputs(date, win); err != nil {
		return nil, err
	}

	events, err := s.Repo.GetEventsForDate(ctx, date)
	if err != nil {
		return nil, WrapDomainError(CodeSourceUnavailable, "cannot read calendar events", err)
	}

	return ComputeFreeSlots(date, win, events)
}

// DayOverview returns the events and free slots for a date in one shot.
func (s *DefaultScheduleService) DayOverview(ctx context.Context, date string, window *models.WorkWindow) (*DayOverview, error) {
	win := resolveWindow(date, window)
	if _, err := validateInputs(date, win); err != nil {
		return nil, err
	}

	events, err := s.Repo.GetEventsForDate(ctx, date)
	if err != nil {
		return nil, WrapDomainError(CodeSourceUnavailable, "cannot read calendar events", err)
	}

	slots, err := ComputeFreeSlots(date, win, events)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, s := range slots {
		total += s.DurationMinutes
	}

	return &DayOverview{
		Date:             date,
		WorkingHours:     WorkingHours{Start: win.StartHour, End: win.EndHour},
		Events:           events,
		FreeSlots:        slots,
		TotalFreeMinutes: total,
	}, nil
}

func resolveWindow(date string, window *models.WorkWindow) models.WorkWindow {
	if window == nil {
		return models.DefaultWorkWindow(date)
	}
	win := *window
	win.Date = date
	return win
}
