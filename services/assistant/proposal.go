// File: services/assistant/proposal.go
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aster/models"
	"aster/services/schedule"
	"aster/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultDurationMinutes = 30
	defaultPurpose         = "Meeting"
	maxCandidateSlots      = 3
)

type contactResult struct {
	contact *models.Contact
	err     error
}

// BuildMeetingProposal resolves the attendee and the day's availability,
// picks a slot per the requested preference and drafts the event plus the
// invitation email. The proposal is stored PENDING; nothing is written to the
// calendar until it is confirmed.
func (s *DefaultAssistantService) BuildMeetingProposal(ctx context.Context, req ProposalRequest) (*models.MeetingProposal, error) {
	logger := utils.GetLogger()

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}
	purpose := req.Purpose
	if purpose == "" {
		purpose = defaultPurpose
	}

	// Contact resolution and slot discovery are independent; run the lookup
	// concurrently and only block on it after the slots are in.
	contactCh := make(chan contactResult, 1)
	go func() {
		c, err := s.Contacts.FindByName(ctx, req.AttendeeName)
		contactCh <- contactResult{contact: c, err: err}
	}()

	slots, err := s.Schedule.FreeSlots(ctx, req.Date, nil)
	if err != nil {
		return nil, err
	}

	selected, ok := schedule.SelectSlot(slots, req.Preference)
	if !ok {
		return nil, schedule.NewDomainError(schedule.CodeNoAvailability,
			fmt.Sprintf("no free slots on %s", req.Date))
	}

	res := <-contactCh
	contact, resolved := resolveContact(req.AttendeeName, res, logger)

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, schedule.WrapDomainError(schedule.CodeInvalidDate,
			fmt.Sprintf("cannot parse date %q", req.Date), err)
	}
	start := day.Add(time.Duration(selected.Start) * time.Minute)
	end := start.Add(time.Duration(duration) * time.Minute)

	title := fmt.Sprintf("%s with %s", purpose, contact.Name)
	eventDraft := models.EventDraft{
		Title:     title,
		Start:     start,
		End:       end,
		Attendees: []string{contact.Email},
	}
	emailDraft := models.EmailDraft{
		To:      contact.Email,
		Subject: "Meeting Invitation: " + title,
		Body: fmt.Sprintf(
			"Hi %s,\n\nI'd like to schedule a %d-minute meeting with you on %s from %s to %s regarding: %s.\n\nPlease let me know if this time works for you.\n\nBest regards",
			contact.Name, duration, req.Date,
			models.FormatMinutes(selected.Start),
			models.FormatMinutes(selected.Start+duration),
			purpose,
		),
	}

	candidates := slots
	if len(candidates) > maxCandidateSlots {
		candidates = candidates[:maxCandidateSlots]
	}

	proposal := &models.MeetingProposal{
		ProposalID:      uuid.New().String(),
		AttendeeName:    req.AttendeeName,
		Date:            req.Date,
		DurationMinutes: duration,
		Purpose:         purpose,
		Contact:         contact,
		ContactResolved: resolved,
		CandidateSlots:  candidates,
		SelectedSlot:    selected,
		EventDraft:      eventDraft,
		EmailDraft:      emailDraft,
		Status:          models.ProposalPending,
		CreatedAt:       time.Now(),
	}

	if err := s.Proposals.Save(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to store proposal: %w", err)
	}

	return proposal, nil
}

// resolveContact degrades to a placeholder when the directory misses or
// fails; a proposal must be constructible for attendees the directory does
// not know.
func resolveContact(name string, res contactResult, logger *zap.Logger) (models.Contact, bool) {
	if res.err != nil {
		logger.Warn("contact lookup failed, using placeholder",
			zap.String("name", name), zap.Error(res.err))
	} else if res.contact != nil {
		return *res.contact, true
	}
	return models.Contact{
		Name:  name,
		Email: PlaceholderEmail(name),
	}, false
}

// PlaceholderEmail builds a synthetic address for unresolved attendees:
// lower-cased, whitespace runs collapsed to dots.
func PlaceholderEmail(name string) string {
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) == 0 {
		return "unknown@example.com"
	}
	return strings.Join(parts, ".") + "@example.com"
}
