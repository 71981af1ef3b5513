package planner

import (
	"sort"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

// sortAndRecomputeCumulative sorts events by TimeMin (stably) and
// recomputes every cumulative total from the constituent events in one
// walk (spec.md §4.7, §9: "set per-event fields to zero during
// placement and let the final pass compute all cumulative values").
func sortAndRecomputeCumulative(events []models.NutritionEvent) []models.NutritionEvent {
	sort.SliceStable(events, func(i, j int) bool { return events[i].TimeMin < events[j].TimeMin })

	var carbsSoFar, caffeineSoFar float64
	for i := range events {
		carbsSoFar += events[i].CarbsG()
		if events[i].HasCaffeine {
			caffeineSoFar += events[i].CaffeineMgValue()
		}
		if carbsSoFar < 0 || caffeineSoFar < 0 {
			panicBug("sortAndRecomputeCumulative", "cumulative total went negative")
		}
		if i > 0 && (carbsSoFar < events[i-1].TotalCarbsSoFar || caffeineSoFar < events[i-1].TotalCaffeineSoFar) {
			panicBug("sortAndRecomputeCumulative", "cumulative totals are not monotonic")
		}
		events[i].SetCumulativeTotals(carbsSoFar, caffeineSoFar)
	}
	return events
}

// finalize runs the sort+cumulative pass, then the carbs-shortfall
// remediation step, then re-runs sort+cumulative if remediation added an
// event (spec.md §4.7). This is sub-strategy (c), "final single-event
// append", named in spec.md §9.
func finalize(sport models.SportType, timeline []models.PhaseSegment, products []models.Product, targets models.MultiNutrientTargets, events []models.NutritionEvent, st *state, occ *occupiedMinutes) []models.NutritionEvent {
	events = sortAndRecomputeCumulative(events)

	delivered := 0.0
	if len(events) > 0 {
		delivered = events[len(events)-1].TotalCarbsSoFar
	}
	if delivered >= targets.CarbsG {
		return events
	}

	durMin := durationMinutes(timeline)
	t := durMin - nonTriTopUpTailOffsetMin
	for t > 0 && occ.withinWindow(t, clusterWindowMin) {
		t--
	}
	if t <= 0 {
		return events
	}

	phase := phaseAt(timeline, t).Phase
	p, ok := topUpCandidate(phase, products)
	if !ok {
		return events
	}

	events = append(events, placeEvent(sport, t, phase, p, st, occ))
	return sortAndRecomputeCumulative(events)
}
