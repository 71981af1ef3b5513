package planner

import "github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ComputeTargets derives per-hour and total nutrient targets for the
// given race and athlete (spec.md §4.1). It is a pure function and is
// always called internally by GeneratePlan, but is also exported as its
// own operation per spec.md §6.
func ComputeTargets(race models.RaceProfile, athlete models.AthleteProfile, caffeineEnabled bool) models.MultiNutrientTargets {
	carbsPerHour := carbPerHourByIntensity[race.Intensity]
	if race.DurationHours > longRaceBonusThresholdHours && race.Intensity != models.IntensityEasy {
		carbsPerHour += longRaceBonusCarbsPerHour
	}

	fluidPerHour := float64(fluidBasePerHour)
	switch race.Temperature {
	case models.TemperatureHot:
		fluidPerHour += fluidHotAdjustment
	case models.TemperatureCold:
		fluidPerHour += fluidColdAdjustment
	}
	if athlete.WeightKg > fluidHeavyWeightKg {
		fluidPerHour += fluidHeavyWeightBonus
	} else if athlete.WeightKg < fluidLightWeightKg {
		fluidPerHour += fluidLightWeightCut
	}
	fluidPerHour = clamp(fluidPerHour, fluidMinPerHour, fluidMaxPerHour)

	sodiumPerHour := float64(sodiumBasePerHour)
	if race.Temperature == models.TemperatureHot {
		sodiumPerHour += sodiumHotAdjustment
	}
	if athlete.WeightKg > sodiumHeavyWeightKg {
		sodiumPerHour += sodiumHeavyWeightBonus
	}
	sodiumPerHour = clamp(sodiumPerHour, sodiumMinPerHour, sodiumMaxPerHour)

	targets := models.MultiNutrientTargets{
		CarbsGPerHour:   carbsPerHour,
		SodiumMgPerHour: sodiumPerHour,
		FluidMlPerHour:  fluidPerHour,
		CarbsG:          carbsPerHour * race.DurationHours,
		SodiumMg:        sodiumPerHour * race.DurationHours,
		FluidMl:         fluidPerHour * race.DurationHours,
		CaffeineEnabled: caffeineEnabled,
	}

	if caffeineEnabled {
		mgPerKg := caffeineMgPerKgByIntensity[race.Intensity]
		targets.CaffeineMg = minFloat(athlete.WeightKg*mgPerKg, caffeineTotalCapMg)
	}

	if race.SportType == models.SportTriathlon {
		targets.PhaseTargets = computeTriathlonPhaseTargets(targets)
	}

	return targets
}

func computeTriathlonPhaseTargets(total models.MultiNutrientTargets) map[models.Phase]*models.PhaseNutrientTargets {
	// Carbs: fixed 70/30 bike/run split, swim zero (spec.md §4.1).
	bikeCarbs := total.CarbsG * triBikeCarbShare
	runCarbs := total.CarbsG * triRunCarbShare

	// Sodium/fluid: proportional to phase duration shares, renormalized
	// over the non-swim phases so the two sub-targets sum to the total
	// (spec.md §4.1: "split proportional to phase duration shares";
	// swim's zero nutrition share means the normalization base is
	// bike+run only).
	nonSwimShare := triBikeTimeShare + triRunTimeShare
	bikeFrac := triBikeTimeShare / nonSwimShare
	runFrac := triRunTimeShare / nonSwimShare

	return map[models.Phase]*models.PhaseNutrientTargets{
		models.PhaseSwim: {CarbsG: 0, SodiumMg: 0, FluidMl: 0},
		models.PhaseBike: {
			CarbsG:   bikeCarbs,
			SodiumMg: total.SodiumMg * bikeFrac,
			FluidMl:  total.FluidMl * bikeFrac,
		},
		models.PhaseRun: {
			CarbsG:   runCarbs,
			SodiumMg: total.SodiumMg * runFrac,
			FluidMl:  total.FluidMl * runFrac,
		},
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
