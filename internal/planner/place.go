package planner

import (
	"math"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

// placeEvent records a selected product as a NutritionEvent, updates the
// running planner state (nutrient totals, diversity queue, caffeine
// spacing floor) and marks the timestamp occupied. It is the single
// mutation point shared by the backbone placer, slot filler and tail
// top-up (spec.md §4.4-§4.6).
func placeEvent(sport models.SportType, timeMinFloat float64, phase models.Phase, p models.Product, st *state, occ *occupiedMinutes) models.NutritionEvent {
	timeMin := int(math.Round(timeMinFloat))

	ev := models.NewNutritionEvent(
		timeMin,
		phase,
		phaseDescription(sport, phase),
		p.Name,
		actionForTexture(p.Texture),
		p.CarbsG,
		p.SodiumMg,
		p.VolumeMl,
		p.CaffeineMg,
		p.HasCaffeine,
		p.Texture,
		isIsotonic(p),
	)

	st.recordIntake(p)
	occ.insert(float64(timeMin))

	if p.HasCaffeine {
		st.nextCaffeineMin = float64(timeMin) + caffeineSpacingFloorMin
	}

	return ev
}
