package models

import "time"

// ProposalStatus is the confirmation-gate state of a meeting proposal.
// Pending is the only state that permits a transition; Confirmed and
// Cancelled are terminal.
type ProposalStatus string

const (
	ProposalPending   ProposalStatus = "PENDING"
	ProposalConfirmed ProposalStatus = "CONFIRMED"
	ProposalCancelled ProposalStatus = "CANCELLED"
)

// EmailDraft is the correspondence prepared alongside a proposed meeting.
// Template substitution only; no text generation happens in this service.
type EmailDraft struct {
	To      string `bson:"to" json:"to"`
	Subject string `bson:"subject" json:"subject"`
	Body    string `bson:"body" json:"body"`
}

// MeetingProposal holds context between slot discovery and final confirmation.
// It lives in the proposal store under ProposalID until it is confirmed or
// cancelled; the calendar is only written on the PENDING -> CONFIRMED edge.
type MeetingProposal struct {
	ProposalID      string         `json:"proposalId"`
	AttendeeName    string         `json:"attendeeName"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Purpose         string         `json:"purpose"`
	Contact         Contact        `json:"contact"`
	ContactResolved bool           `json:"contactResolved"`
	CandidateSlots  []FreeSlot     `json:"candidateSlots"`
	SelectedSlot    FreeSlot       `json:"selectedSlot"`
	EventDraft      EventDraft     `json:"eventDraft"`
	EmailDraft      EmailDraft     `json:"emailDraft"`
	Status          ProposalStatus `json:"status"`
	PersistedEvent  *Event         `json:"persistedEvent,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}
