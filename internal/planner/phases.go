package planner

import "github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"

// BuildPhaseTimeline partitions the race into ordered phase segments
// (spec.md §4.2). There is a single builder keyed on SportType — the
// teacher's two-overload split (spec.md §9) is explicitly not carried
// forward.
func BuildPhaseTimeline(race models.RaceProfile) []models.PhaseSegment {
	durationMin := race.DurationHours * 60

	if race.SportType != models.SportTriathlon {
		phase := models.PhaseRun
		if race.SportType == models.SportBike {
			phase = models.PhaseBike
		}
		return []models.PhaseSegment{
			{Phase: phase, StartMin: 0, EndMin: durationMin},
		}
	}

	swimEnd := triSwimTimeShare * durationMin
	bikeEnd := (triSwimTimeShare + triBikeTimeShare) * durationMin

	return []models.PhaseSegment{
		{Phase: models.PhaseSwim, StartMin: 0, EndMin: swimEnd},
		{Phase: models.PhaseBike, StartMin: swimEnd, EndMin: bikeEnd},
		{Phase: models.PhaseRun, StartMin: bikeEnd, EndMin: durationMin},
	}
}

// phaseDescription renders a short human-readable label for an event's
// phase, distinguishing triathlon legs from single-sport races.
func phaseDescription(sport models.SportType, phase models.Phase) string {
	switch phase {
	case models.PhaseSwim:
		return "Swim leg"
	case models.PhaseBike:
		if sport == models.SportTriathlon {
			return "Bike leg"
		}
		return "Bike"
	case models.PhaseRun:
		if sport == models.SportTriathlon {
			return "Run leg"
		}
		return "Run"
	default:
		return string(phase)
	}
}

// phaseAt returns the segment containing timeMin, or the last segment if
// timeMin is at or beyond the end of the timeline (used for boundary
// events like the final remediation append).
func phaseAt(timeline []models.PhaseSegment, timeMin float64) models.PhaseSegment {
	for i, seg := range timeline {
		isLast := i == len(timeline)-1
		if timeMin >= seg.StartMin && (timeMin < seg.EndMin || (isLast && timeMin <= seg.EndMin)) {
			return seg
		}
	}
	return timeline[len(timeline)-1]
}

func durationMinutes(timeline []models.PhaseSegment) float64 {
	return timeline[len(timeline)-1].EndMin
}

func findPhase(timeline []models.PhaseSegment, phase models.Phase) (models.PhaseSegment, bool) {
	for _, seg := range timeline {
		if seg.Phase == phase {
			return seg, true
		}
	}
	return models.PhaseSegment{}, false
}
