package schedule

import "aster/models"

// SelectSlot applies a preference policy to an ordered candidate list and
// returns the chosen slot. The second return is false only when candidates is
// empty; an unmatched preference silently falls back to the first candidate,
// so callers that need strict matching must check the returned slot against
// the preference themselves.
func SelectSlot(candidates []models.FreeSlot, pref models.SlotPreference) (models.FreeSlot, bool) {
	if len(candidates) == 0 {
		return models.FreeSlot{}, false
	}

	switch pref.Kind {
	case models.PrefMorning:
		for _, s := range candidates {
			if s.Start/60 < 12 {
				return s, true
			}
		}
	case models.PrefAfternoon:
		for _, s := range candidates {
			if s.Start/60 >= 12 {
				return s, true
			}
		}
	case models.PrefAt:
		for _, s := range candidates {
			if s.Start/60 >= pref.Hour {
				return s, true
			}
		}
	}

	return candidates[0], true
}
