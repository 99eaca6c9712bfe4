package assistant

import (
	"context"
	"errors"
	"testing"

	"aster/models"
	"aster/services/schedule"
)

func buildPending(t *testing.T, svc *DefaultAssistantService) *models.MeetingProposal {
	t.Helper()
	proposal, err := svc.BuildMeetingProposal(context.Background(), ProposalRequest{
		AttendeeName: "Sarah Chen",
		Date:         "2025-03-10",
		Purpose:      "Roadmap review",
	})
	if err != nil {
		t.Fatalf("BuildMeetingProposal failed: %v", err)
	}
	return proposal
}

func TestConfirmProposal_PersistsOnce(t *testing.T) {
	calendar := newFakeCalendarRepo()
	svc, reminders := newTestService(&fakeContactRepo{}, calendar)
	proposal := buildPending(t, svc)

	event, err := svc.ConfirmProposal(context.Background(), proposal.ProposalID)
	if err != nil {
		t.Fatalf("ConfirmProposal failed: %v", err)
	}
	if event == nil || event.ID == "" {
		t.Fatal("expected a persisted event")
	}
	if calendar.appendCount() != 1 {
		t.Fatalf("append count = %d, want 1", calendar.appendCount())
	}
	if event.Title != proposal.EventDraft.Title {
		t.Errorf("event title = %q, want %q", event.Title, proposal.EventDraft.Title)
	}

	stored, _ := svc.Proposals.Get(context.Background(), proposal.ProposalID)
	if stored.Status != models.ProposalConfirmed {
		t.Errorf("stored status = %s, want CONFIRMED", stored.Status)
	}
	if stored.PersistedEvent == nil || stored.PersistedEvent.ID != event.ID {
		t.Error("stored proposal does not reference the persisted event")
	}
	if len(reminders.events) != 1 {
		t.Errorf("reminder enqueues = %d, want 1", len(reminders.events))
	}
}

func TestConfirmProposal_SecondConfirmRejected(t *testing.T) {
	calendar := newFakeCalendarRepo()
	svc, _ := newTestService(&fakeContactRepo{}, calendar)
	proposal := buildPending(t, svc)

	if _, err := svc.ConfirmProposal(context.Background(), proposal.ProposalID); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}

	_, err := svc.ConfirmProposal(context.Background(), proposal.ProposalID)
	if err == nil {
		t.Fatal("second confirm should fail")
	}
	if schedule.ErrCode(err) != schedule.CodeInvalidTransition {
		t.Errorf("error code = %q, want %q", schedule.ErrCode(err), schedule.CodeInvalidTransition)
	}
	if calendar.appendCount() != 1 {
		t.Errorf("append count after double confirm = %d, want exactly 1", calendar.appendCount())
	}
}

func TestConfirmProposal_StoreFailureIsRetryable(t *testing.T) {
	calendar := newFakeCalendarRepo()
	calendar.appendErr = errors.New("disk full")
	svc, reminders := newTestService(&fakeContactRepo{}, calendar)
	proposal := buildPending(t, svc)

	_, err := svc.ConfirmProposal(context.Background(), proposal.ProposalID)
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if schedule.ErrCode(err) != schedule.CodePersistenceError {
		t.Errorf("error code = %q, want %q", schedule.ErrCode(err), schedule.CodePersistenceError)
	}

	// The proposal is still pending: the failed confirm can be retried.
	stored, _ := svc.Proposals.Get(context.Background(), proposal.ProposalID)
	if stored.Status != models.ProposalPending {
		t.Fatalf("status after failed confirm = %s, want PENDING", stored.Status)
	}
	if len(reminders.events) != 0 {
		t.Error("no reminder should be scheduled on a failed confirm")
	}

	calendar.appendErr = nil
	if _, err := svc.ConfirmProposal(context.Background(), proposal.ProposalID); err != nil {
		t.Fatalf("retry after store recovery failed: %v", err)
	}
	if calendar.appendCount() != 1 {
		t.Errorf("append count = %d, want 1", calendar.appendCount())
	}
}

func TestCancelProposal(t *testing.T) {
	calendar := newFakeCalendarRepo()
	svc, _ := newTestService(&fakeContactRepo{}, calendar)
	proposal := buildPending(t, svc)

	if err := svc.CancelProposal(context.Background(), proposal.ProposalID); err != nil {
		t.Fatalf("CancelProposal failed: %v", err)
	}

	stored, _ := svc.Proposals.Get(context.Background(), proposal.ProposalID)
	if stored.Status != models.ProposalCancelled {
		t.Errorf("status = %s, want CANCELLED", stored.Status)
	}
	if calendar.appendCount() != 0 {
		t.Error("cancel must not write to the calendar")
	}

	// Terminal: neither confirm nor a second cancel is allowed.
	if _, err := svc.ConfirmProposal(context.Background(), proposal.ProposalID); schedule.ErrCode(err) != schedule.CodeInvalidTransition {
		t.Errorf("confirm after cancel: error code = %q, want %q", schedule.ErrCode(err), schedule.CodeInvalidTransition)
	}
	if err := svc.CancelProposal(context.Background(), proposal.ProposalID); schedule.ErrCode(err) != schedule.CodeInvalidTransition {
		t.Errorf("second cancel: error code = %q, want %q", schedule.ErrCode(err), schedule.CodeInvalidTransition)
	}
}

func TestGate_UnknownProposal(t *testing.T) {
	svc, _ := newTestService(&fakeContactRepo{}, newFakeCalendarRepo())

	if _, err := svc.ConfirmProposal(context.Background(), "nope"); !errors.Is(err, ErrProposalNotFound) {
		t.Errorf("confirm unknown: err = %v, want ErrProposalNotFound", err)
	}
	if err := svc.CancelProposal(context.Background(), "nope"); !errors.Is(err, ErrProposalNotFound) {
		t.Errorf("cancel unknown: err = %v, want ErrProposalNotFound", err)
	}
}

func TestConfirmProposal_ReminderFailureDoesNotFailConfirm(t *testing.T) {
	calendar := newFakeCalendarRepo()
	svc, reminders := newTestService(&fakeContactRepo{}, calendar)
	reminders.err = errors.New("queue down")
	proposal := buildPending(t, svc)

	event, err := svc.ConfirmProposal(context.Background(), proposal.ProposalID)
	if err != nil {
		t.Fatalf("ConfirmProposal failed: %v", err)
	}
	if event == nil {
		t.Fatal("expected event despite reminder failure")
	}
}
