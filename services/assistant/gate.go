// File: services/assistant/gate.go
package assistant

import (
	"context"
	"errors"
	"fmt"

	"aster/models"
	"aster/services/schedule"
	"aster/utils"

	"go.uber.org/zap"
)

// ErrProposalNotFound is returned when a proposal ID is unknown or expired.
var ErrProposalNotFound = errors.New("proposal not found or expired")

// ConfirmProposal is the only mutating edge of the workflow. It moves a
// PENDING proposal to CONFIRMED, writing the event draft to the calendar
// exactly once. A persistence failure leaves the proposal PENDING so the
// confirm can be retried; any non-PENDING status is rejected so a second
// confirm can never create a duplicate event.
func (s *DefaultAssistantService) ConfirmProposal(ctx context.Context, proposalID string) (*models.Event, error) {
	logger := utils.GetLogger()

	proposal, err := s.Proposals.Get(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load proposal: %w", err)
	}
	if proposal == nil {
		return nil, ErrProposalNotFound
	}
	if proposal.Status != models.ProposalPending {
		return nil, schedule.NewDomainError(schedule.CodeInvalidTransition,
			fmt.Sprintf("proposal is already %s", proposal.Status))
	}

	event, err := s.Calendar.AppendEvent(ctx, proposal.EventDraft)
	if err != nil {
		return nil, schedule.WrapDomainError(schedule.CodePersistenceError,
			"failed to create event, not yet created, try again", err)
	}

	proposal.Status = models.ProposalConfirmed
	proposal.PersistedEvent = event
	if err := s.Proposals.Save(ctx, proposal); err != nil {
		// The event is durably written; do not ask the caller to retry.
		logger.Error("failed to record confirmed status",
			zap.String("proposalId", proposalID), zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleEventReminder(ctx, *event); err != nil {
			logger.Warn("failed to schedule reminder",
				zap.String("eventId", event.ID), zap.Error(err))
		}
	}

	return event, nil
}

// CancelProposal moves a PENDING proposal to CANCELLED. No side effects.
func (s *DefaultAssistantService) CancelProposal(ctx context.Context, proposalID string) error {
	proposal, err := s.Proposals.Get(ctx, proposalID)
	if err != nil {
		return fmt.Errorf("failed to load proposal: %w", err)
	}
	if proposal == nil {
		return ErrProposalNotFound
	}
	if proposal.Status != models.ProposalPending {
		return schedule.NewDomainError(schedule.CodeInvalidTransition,
			fmt.Sprintf("proposal is already %s", proposal.Status))
	}

	proposal.Status = models.ProposalCancelled
	if err := s.Proposals.Save(ctx, proposal); err != nil {
		return fmt.Errorf("failed to record cancelled status: %w", err)
	}
	return nil
}
