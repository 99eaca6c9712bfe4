package models

import "time"

// Event is a persisted calendar event. Start/End are absolute timestamps;
// busy-interval math downstream clips them to a working-hours window.
type Event struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end" json:"end"`
	Attendees []string  `bson:"attendees,omitempty" json:"attendees,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// EventDraft is the not-yet-persisted form of an event, carried inside a
// meeting proposal until the user confirms it.
type EventDraft struct {
	Title     string    `bson:"title" json:"title"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end" json:"end"`
	Attendees []string  `bson:"attendees,omitempty" json:"attendees,omitempty"`
}
