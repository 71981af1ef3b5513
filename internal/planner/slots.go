package planner

import "github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"

// slot is a candidate intake timestamp emitted by the enumerator
// (GLOSSARY).
type slot struct {
	TimeMin float64
	Phase   models.Phase
}

func cadenceFor(sport models.SportType, phase models.Phase) float64 {
	if sport != models.SportTriathlon {
		if sport == models.SportBike {
			return nonTriBikeCadenceMin
		}
		return nonTriRunCadenceMin
	}
	switch phase {
	case models.PhaseBike:
		return triBikeCadenceMin
	case models.PhaseRun:
		return triRunCadenceMin
	default:
		return triSwimCadenceMin
	}
}

// EnumerateSlots produces candidate intake timestamps honoring
// phase-specific cadences and the tail safety margin (spec.md §4.3).
// Slots falling in a Swim segment are still emitted; the slot filler
// skips them.
func EnumerateSlots(timeline []models.PhaseSegment, sport models.SportType) []slot {
	tailLimit := durationMinutes(timeline) - tailSafetyMarginMin

	var slots []slot
	for _, seg := range timeline {
		cadence := cadenceFor(sport, seg.Phase)
		segEnd := seg.EndMin
		if sport == models.SportTriathlon && seg.Phase == models.PhaseBike {
			segEnd -= triBikeTransitionMarginMin
		}

		for t := seg.StartMin + cadence; t < segEnd && t <= tailLimit; t += cadence {
			slots = append(slots, slot{TimeMin: t, Phase: seg.Phase})
		}
	}
	return slots
}
