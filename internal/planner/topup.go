package planner

import "github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"

// topUpCandidate returns the highest-carb non-caffeinated product
// eligible for phase (bar/bake restricted to Bike, same rule as the
// slot filler). Top-up never reaches for a caffeinated product — it is
// a reactive fallback pass, not a scored placement.
func topUpCandidate(phase models.Phase, products []models.Product) (models.Product, bool) {
	var best models.Product
	found := false
	for _, p := range products {
		if p.HasCaffeine {
			continue
		}
		if p.IsBarOrBake() && phase != models.PhaseBike {
			continue
		}
		if !found || p.CarbsG > best.CarbsG {
			best = p
			found = true
		}
	}
	return best, found
}

// nextFreeMinute walks forward minute-by-minute from `from` (clamped to
// [segStart, segEnd]) looking for a timestamp that keeps spacingMin away
// from every already-occupied instant. Returns -1 if the segment is
// exhausted.
func nextFreeMinute(occ *occupiedMinutes, from, segStart, segEnd, spacingMin float64) float64 {
	t := maxFloat(from, segStart)
	for t <= segEnd {
		if !occ.withinWindow(t, spacingMin) {
			return t
		}
		t++
	}
	return -1
}

// topUp implements the tail top-up pass (spec.md §4.6), dispatching to
// one of the two sub-strategies named in spec.md §9: triathlon
// bike-first-then-run fill, or single-phase tail fill. The third
// sub-strategy (final single-event append) belongs to the sort+
// cumulative remediation step and lives in sort.go.
func topUp(sport models.SportType, timeline []models.PhaseSegment, products []models.Product, targets models.MultiNutrientTargets, st *state, occ *occupiedMinutes) []models.NutritionEvent {
	budget := targets.CarbsG + topUpBufferG
	if st.carbsG >= budget {
		return nil
	}
	if sport == models.SportTriathlon {
		return topUpTriathlon(timeline, products, targets, budget, st, occ)
	}
	return topUpSingleSport(sport, timeline, products, budget, st, occ)
}

func topUpTriathlon(timeline []models.PhaseSegment, products []models.Product, targets models.MultiNutrientTargets, budget float64, st *state, occ *occupiedMinutes) []models.NutritionEvent {
	var events []models.NutritionEvent

	remainingNeeded := budget - st.carbsG
	bikeGoalCarbs := st.carbsG + remainingNeeded*triBikeCarbShare

	if bikeSeg, ok := findPhase(timeline, models.PhaseBike); ok {
		t := bikeSeg.StartMin
		for st.carbsG < bikeGoalCarbs && st.carbsG < budget {
			t = nextFreeMinute(occ, t, bikeSeg.StartMin, bikeSeg.EndMin, triBikeTopUpSpacingMin)
			if t < 0 {
				break
			}
			p, ok := topUpCandidate(models.PhaseBike, products)
			if !ok {
				break
			}
			events = append(events, placeEvent(models.SportTriathlon, t, models.PhaseBike, p, st, occ))
			t += triBikeTopUpSpacingMin
		}
	}

	if runSeg, ok := findPhase(timeline, models.PhaseRun); ok {
		t := runSeg.StartMin
		for st.carbsG < budget {
			t = nextFreeMinute(occ, t, runSeg.StartMin, runSeg.EndMin, triRunTopUpSpacingMin)
			if t < 0 {
				break
			}
			p, ok := topUpCandidate(models.PhaseRun, products)
			if !ok {
				break
			}
			events = append(events, placeEvent(models.SportTriathlon, t, models.PhaseRun, p, st, occ))
			t += triRunTopUpSpacingMin
		}
	}

	return events
}

func topUpSingleSport(sport models.SportType, timeline []models.PhaseSegment, products []models.Product, budget float64, st *state, occ *occupiedMinutes) []models.NutritionEvent {
	var events []models.NutritionEvent

	durMin := durationMinutes(timeline)
	for t := durMin - nonTriTopUpTailOffsetMin; st.carbsG < budget && t > 0; t -= nonTriTopUpStepMin {
		if occ.has(t) {
			continue
		}
		phase := phaseAt(timeline, t).Phase
		p, ok := topUpCandidate(phase, products)
		if !ok {
			break
		}
		events = append(events, placeEvent(sport, t, phase, p, st, occ))
	}

	return events
}
