package schedule

import (
	"fmt"
	"sort"
	"time"

	"aster/models"
)

// busyInterval is an event clipped to a work window, in minutes from midnight.
type busyInterval struct {
	start int
	end   int
}

func validateInputs(date string, window models.WorkWindow) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, WrapDomainError(CodeInvalidDate, fmt.Sprintf("cannot parse date %q", date), err)
	}
	if window.StartHour < 0 || window.EndHour > 23 || window.StartHour >= window.EndHour {
		return time.Time{}, NewDomainError(CodeInvalidWindow,
			fmt.Sprintf("invalid working hours %d-%d", window.StartHour, window.EndHour))
	}
	return day, nil
}

// ComputeFreeSlots derives the open blocks of a working day from the events
// that touch it. Pure function: identical inputs always yield identical
// output. Events outside the window are dropped, partial overlaps are clipped,
// and overlapping or back-to-back events merge through the sweep cursor, so
// the result is a disjoint, ordered sequence whose union with the clipped
// busy time is exactly the window.
func ComputeFreeSlots(date string, window models.WorkWindow, events []models.Event) ([]models.FreeSlot, error) {
	day, err := validateInputs(date, window)
	if err != nil {
		return nil, err
	}

	winStart := window.StartHour * 60
	winEnd := window.EndHour * 60
	windowStart := day.Add(time.Duration(winStart) * time.Minute)
	windowEnd := day.Add(time.Duration(winEnd) * time.Minute)

	var busy []busyInterval
	for _, ev := range events {
		start := ev.Start.UTC()
		end := ev.End.UTC()

		// Discard events that do not reach into the window at all.
		if !end.After(windowStart) || !start.Before(windowEnd) {
			continue
		}
		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}

		// Clip conservatively to whole minutes: the busy start rounds
		// down and the busy end rounds up, so sub-minute precision in
		// the event times can never leak busy seconds into a free slot.
		busy = append(busy, busyInterval{
			start: int(start.Sub(day) / time.Minute),
			end:   minutesCeil(end.Sub(day)),
		})
	}

	// Order by start; when starts coincide, shorter intervals first. The
	// cursor merge makes the tie-break semantically neutral but it keeps
	// iteration deterministic.
	sort.Slice(busy, func(i, j int) bool {
		if busy[i].start != busy[j].start {
			return busy[i].start < busy[j].start
		}
		return busy[i].end < busy[j].end
	})

	var slots []models.FreeSlot
	cursor := winStart
	for _, b := range busy {
		if cursor < b.start {
			slots = append(slots, newFreeSlot(cursor, b.start))
		}
		if b.end > cursor {
			cursor = b.end
		}
	}
	if cursor < winEnd {
		slots = append(slots, newFreeSlot(cursor, winEnd))
	}

	return slots, nil
}

func minutesCeil(d time.Duration) int {
	m := int(d / time.Minute)
	if d%time.Minute != 0 {
		m++
	}
	return m
}

func newFreeSlot(start, end int) models.FreeSlot {
	return models.FreeSlot{
		Start:           start,
		End:             end,
		DurationMinutes: end - start,
		Label:           models.SlotLabel(start, end),
	}
}
