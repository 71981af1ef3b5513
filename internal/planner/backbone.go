package planner

import (
	"sort"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

// placeBackbone pre-places high-carb drink events to cover roughly 45%
// of the total carb target, anchored to the bike phase when present
// (spec.md §4.4).
func placeBackbone(sport models.SportType, timeline []models.PhaseSegment, products []models.Product, targets models.MultiNutrientTargets, st *state, occ *occupiedMinutes) []models.NutritionEvent {
	drinks := make([]models.Product, 0)
	for _, p := range products {
		if p.IsHighCarbDrink() {
			drinks = append(drinks, p)
		}
	}
	if len(drinks) == 0 {
		return nil
	}
	sort.SliceStable(drinks, func(i, j int) bool { return drinks[i].CarbsG > drinks[j].CarbsG })
	best := drinks[0]

	budget := backboneCarbShare * targets.CarbsG

	var events []models.NutritionEvent
	placeRun := func(start, end, interval float64, phaseFor func(t float64) models.Phase) {
		for t := start; t <= end && st.carbsG < budget; t += interval {
			phase := phaseFor(t)
			events = append(events, placeEvent(sport, t, phase, best, st, occ))
		}
	}

	if bikeSeg, ok := findPhase(timeline, models.PhaseBike); ok {
		start := bikeSeg.StartMin + backboneBikeStartOffsetMin
		end := bikeSeg.EndMin - backboneBikeEndMarginMin
		placeRun(start, end, backboneBikeIntervalMin, func(float64) models.Phase { return models.PhaseBike })
		return events
	}

	durMin := durationMinutes(timeline)
	end := durMin - backboneOtherEndMarginMin
	placeRun(backboneOtherStartMin, end, backboneOtherIntervalMin, func(t float64) models.Phase {
		return phaseAt(timeline, t).Phase
	})
	return events
}
