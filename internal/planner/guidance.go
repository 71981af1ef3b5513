package planner

import "github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"

// GeneralGuidance returns race-day hydration and pacing tips keyed by
// temperature and intensity. These are advisory text only: nothing here
// feeds ComputeTargets or GeneratePlan, matching spec.md's framing of
// general tips as a separate informational collaborator.
func GeneralGuidance(temp models.Temperature, intensity models.Intensity) []string {
	tips := []string{
		"Weigh in before and after the race to estimate fluid loss for next time.",
		"Never try a brand-new product on race day; everything on the plan should already be tested in training.",
	}

	switch temp {
	case models.TemperatureHot:
		tips = append(tips,
			"Increase sodium intake and favor cooler fluids; heat raises sweat sodium losses.",
			"Watch for dark urine or cramping as early signs of under-hydration.")
	case models.TemperatureCold:
		tips = append(tips,
			"Thirst cues are blunted in the cold; stick to the fluid schedule even if you don't feel thirsty.")
	}

	switch intensity {
	case models.IntensityHard:
		tips = append(tips,
			"At race effort, gut tolerance drops; favor liquid and gel carbs over solids.")
	case models.IntensityEasy:
		tips = append(tips,
			"At easy effort, solids are well tolerated and can make up a larger share of intake.")
	}

	return tips
}
