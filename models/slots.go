package models

import "fmt"

// WorkWindow bounds free-slot computation to working hours on a single date.
type WorkWindow struct {
	Date      string `json:"date"`      // "2006-01-02"
	StartHour int    `json:"startHour"` // 0-23
	EndHour   int    `json:"endHour"`   // 0-23, must be > StartHour
}

// Default working hours when the caller does not specify a window.
const (
	DefaultWorkStartHour = 9
	DefaultWorkEndHour   = 18
)

// DefaultWorkWindow returns the 9-18 window for the given date.
func DefaultWorkWindow(date string) WorkWindow {
	return WorkWindow{Date: date, StartHour: DefaultWorkStartHour, EndHour: DefaultWorkEndHour}
}

// FreeSlot is a maximal open block within a work window. Start and End are
// minutes from midnight (e.g., 630 for 10:30), half-open [Start, End).
type FreeSlot struct {
	Start           int    `json:"start"`
	End             int    `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
	Label           string `json:"label"` // e.g., "10:30 - 13:00"
}

// FormatMinutes renders minutes-from-midnight as "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// SlotLabel builds the display label for a [start, end) pair.
func SlotLabel(start, end int) string {
	return FormatMinutes(start) + " - " + FormatMinutes(end)
}

// PreferenceKind discriminates slot preference policies.
type PreferenceKind string

const (
	PrefNone      PreferenceKind = "none"
	PrefMorning   PreferenceKind = "morning"
	PrefAfternoon PreferenceKind = "afternoon"
	PrefAt        PreferenceKind = "at" // first slot starting at or after Hour
)

// SlotPreference selects which candidate slot a proposal should use.
// Hour is only consulted when Kind is PrefAt.
type SlotPreference struct {
	Kind PreferenceKind `json:"kind"`
	Hour int            `json:"hour,omitempty"`
}
