package planner

import "github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"

// pickPreRaceProduct selects a non-caffeinated bar (preferred) or gel
// for the pre-race entry (spec.md §4.5).
func pickPreRaceProduct(products []models.Product) (models.Product, bool) {
	for _, p := range products {
		if !p.HasCaffeine && p.IsBarOrBake() {
			return p, true
		}
	}
	for _, p := range products {
		if !p.HasCaffeine && p.Texture == models.TextureGel {
			return p, true
		}
	}
	return models.Product{}, false
}

// fillSlots runs the pre-race entry check and the per-slot scored
// selection pass (spec.md §4.5).
func fillSlots(sport models.SportType, timeline []models.PhaseSegment, slots []slot, products []models.Product, targets models.MultiNutrientTargets, st *state, occ *occupiedMinutes) []models.NutritionEvent {
	durMin := durationMinutes(timeline)
	var events []models.NutritionEvent

	if st.carbsG < preRaceCarbFloorShare*targets.CarbsG {
		if p, ok := pickPreRaceProduct(products); ok {
			events = append(events, placeEvent(sport, preRaceTimeMin, timeline[0].Phase, p, st, occ))
		}
	}

	for _, sl := range slots {
		if sl.Phase == models.PhaseSwim {
			continue
		}
		if occ.withinWindow(sl.TimeMin, clusterWindowMin) {
			continue
		}

		raceProgress := sl.TimeMin / durMin
		remainingCarbs, remainingSodium, _, _ := st.remaining(targets)
		caffeineCeiling := targets.CaffeineMg * caffeineCeilingFactor

		candidates := make([]scoredCandidate, 0, len(products))
		for _, p := range products {
			if !eligible(p, sl.Phase, raceProgress, targets.CaffeineEnabled, st.caffeineMg, caffeineCeiling, st.nextCaffeineMin, sl.TimeMin) {
				continue
			}
			in := scoreInputs{
				Phase:             sl.Phase,
				RaceProgress:      raceProgress,
				RemainingCarbsG:   remainingCarbs,
				RemainingSodiumMg: remainingSodium,
				ConsecutiveUses:   st.consecutiveUseCount(p.Name),
				TotalIntakes:      st.totalIntakes,
			}
			candidates = append(candidates, scoredCandidate{Product: p, Score: scoreProduct(p, in)})
		}

		chosen, ok := selectBest(candidates, st.rng)
		if !ok {
			continue
		}
		events = append(events, placeEvent(sport, sl.TimeMin, sl.Phase, chosen, st, occ))
	}

	return events
}
