package planner

import (
	"fmt"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

func isSolidTexture(t models.Texture) bool {
	return t == models.TextureBake || t == models.TextureChew
}

func isGelTexture(t models.Texture) bool {
	return t == models.TextureGel || t == models.TextureLightGel
}

// minSpacingFor returns the minimum required gap, in minutes, between
// two temporally-adjacent events (spec.md §4.8 check 2). The later
// event's phase decides the bike/run threshold.
func minSpacingFor(a, b models.NutritionEvent) float64 {
	if a.HasCaffeine || b.HasCaffeine {
		return caffeineSpacingMin
	}
	phase := b.Phase
	switch {
	case isSolidTexture(a.Texture()) || isSolidTexture(b.Texture()):
		if phase == models.PhaseBike {
			return solidSpacingBikeMin
		}
		return solidSpacingRunMin
	case isGelTexture(a.Texture()) || isGelTexture(b.Texture()):
		if phase == models.PhaseBike {
			return gelSpacingBikeMin
		}
		return gelSpacingRunMin
	default:
		return defaultSpacingMin
	}
}

// Validate runs the seven diagnostic checks of spec.md §4.8 in the
// order spec.md §6 requires (targets -> spacing -> clustering ->
// caffeine -> diversity -> drink use -> hydration coupling). It never
// mutates events; it only produces diagnostics.
func Validate(events []models.NutritionEvent, products []models.Product, targets models.MultiNutrientTargets, caffeineEnabled bool) (warnings, errors []string) {
	delivered := 0.0
	totalCaffeine := 0.0
	if len(events) > 0 {
		delivered = events[len(events)-1].TotalCarbsSoFar
		totalCaffeine = events[len(events)-1].TotalCaffeineSoFar
	}

	// 1. Carb target consistency.
	if targets.CarbsG > 0 {
		lower := targets.CarbsG * (1 - carbToleranceFraction)
		upper := targets.CarbsG * (1 + carbToleranceFraction)
		if delivered < lower {
			warnings = append(warnings, fmt.Sprintf(
				"carbs underdelivered: %.1fg vs target %.1fg (more than %.0f%% below)",
				delivered, targets.CarbsG, carbToleranceFraction*100))
		} else if delivered > upper {
			warnings = append(warnings, fmt.Sprintf(
				"carbs overdelivered: %.1fg vs target %.1fg (more than %.0f%% above)",
				delivered, targets.CarbsG, carbToleranceFraction*100))
		}
	}

	// 2 & 3. Spacing, then clustering (spec.md §6 diagnostic order:
	// targets -> spacing -> clustering -> ...).
	for i := 1; i < len(events); i++ {
		a, b := events[i-1], events[i]
		gap := float64(b.TimeMin - a.TimeMin)

		if required := minSpacingFor(a, b); gap < required {
			errors = append(errors, fmt.Sprintf(
				"spacing violation: %dmin -> %dmin is %gmin apart, requires >= %gmin",
				a.TimeMin, b.TimeMin, gap, required))
		}

		if gap < clusterWindowMin {
			errors = append(errors, fmt.Sprintf(
				"events at %dmin and %dmin are clustered (%gmin apart, below the %gmin window)",
				a.TimeMin, b.TimeMin, gap, float64(clusterWindowMin)))
		}
	}

	// 4. Caffeine policy.
	if !caffeineEnabled {
		for _, e := range events {
			if e.HasCaffeine {
				errors = append(errors, fmt.Sprintf(
					"caffeine event at %dmin present while caffeine is disabled", e.TimeMin))
			}
		}
	} else if targets.CaffeineMg > 0 && totalCaffeine > targets.CaffeineMg*caffeineWarnOveragePct {
		warnings = append(warnings, fmt.Sprintf(
			"total caffeine %.1fmg exceeds %.0f%% of target %.1fmg",
			totalCaffeine, caffeineWarnOveragePct*100, targets.CaffeineMg))
	}

	// 5. Diversity.
	if len(events) > 0 {
		counts := make(map[string]int)
		for _, e := range events {
			counts[e.ProductName]++
		}
		for name, count := range counts {
			if float64(count) > diversityWarnShare*float64(len(events)) {
				warnings = append(warnings, fmt.Sprintf(
					"diversity: %q accounts for %d/%d events (over %.0f%%)",
					name, count, len(events), diversityWarnShare*100))
			}
		}
	}

	// 6. Drink under-use.
	catalogHasHighCarbDrink := false
	for _, p := range products {
		if p.IsHighCarbDrink() {
			catalogHasHighCarbDrink = true
			break
		}
	}
	usedDrink := false
	for _, e := range events {
		if e.Texture() == models.TextureDrink {
			usedDrink = true
			break
		}
	}
	if catalogHasHighCarbDrink && !usedDrink && delivered > drinkUnderuseCarbsFloorG {
		warnings = append(warnings, fmt.Sprintf(
			"high-carb drinks were available but none were used despite %.1fg delivered", delivered))
	}

	// 7. Hydration coupling.
	for _, e := range events {
		if e.Texture() != models.TextureGel || e.IsIsotonic() {
			continue
		}
		coupled := false
		for _, other := range events {
			if other.Texture() != models.TextureDrink || other.VolumeMl() < hydrationCouplingMinVolumeMl {
				continue
			}
			if abs(float64(other.TimeMin-e.TimeMin)) <= hydrationCouplingWindowMin {
				coupled = true
				break
			}
		}
		if !coupled {
			warnings = append(warnings, fmt.Sprintf(
				"gel at %dmin has no paired drink (>=%dml) within %dmin",
				e.TimeMin, hydrationCouplingMinVolumeMl, hydrationCouplingWindowMin))
		}
	}

	return warnings, errors
}
