package planner

import (
	"strings"
	"testing"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

func gelEvent(timeMin int, caffeine bool) models.NutritionEvent {
	caffeineMg := 0.0
	if caffeine {
		caffeineMg = 50
	}
	return models.NewNutritionEvent(timeMin, models.PhaseRun, "Run", "Energy Gel", "Take gel", 25, 50, 0, caffeineMg, caffeine, models.TextureGel, false)
}

func TestValidate_FlagsCaffeineWhileDisabled(t *testing.T) {
	events := []models.NutritionEvent{gelEvent(30, true)}
	targets := models.MultiNutrientTargets{CarbsG: 25}
	_, errs := Validate(events, sampleCatalog(), targets, false)

	found := false
	for _, e := range errs {
		if strings.Contains(e, "disabled") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a caffeine-while-disabled error, got %v", errs)
	}
}

func TestValidate_FlagsClusteredEvents(t *testing.T) {
	events := []models.NutritionEvent{gelEvent(30, false), gelEvent(32, false)}
	targets := models.MultiNutrientTargets{CarbsG: 50}
	_, errs := Validate(events, sampleCatalog(), targets, true)

	found := false
	for _, e := range errs {
		if strings.Contains(e, "clustered") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a clustering error for events 2min apart, got %v", errs)
	}
}

// Two Run-phase gel events 2min apart violate both the 5min cluster
// window and the 20min gel/run spacing floor. spec.md §6 requires
// diagnostics ordered targets -> spacing -> clustering -> ..., so the
// spacing message for this pair must precede its clustering message.
func TestValidate_SpacingPrecedesClusteringForSamePair(t *testing.T) {
	events := []models.NutritionEvent{gelEvent(30, false), gelEvent(32, false)}
	targets := models.MultiNutrientTargets{CarbsG: 50}
	_, errs := Validate(events, sampleCatalog(), targets, true)

	spacingIdx, clusteredIdx := -1, -1
	for i, e := range errs {
		if strings.Contains(e, "spacing violation") && spacingIdx == -1 {
			spacingIdx = i
		}
		if strings.Contains(e, "clustered") && clusteredIdx == -1 {
			clusteredIdx = i
		}
	}
	if spacingIdx == -1 || clusteredIdx == -1 {
		t.Fatalf("expected both a spacing and a clustering error, got %v", errs)
	}
	if spacingIdx >= clusteredIdx {
		t.Errorf("expected spacing violation (index %d) before clustering (index %d): %v", spacingIdx, clusteredIdx, errs)
	}
}

func TestValidate_FlagsSpacingViolation(t *testing.T) {
	events := []models.NutritionEvent{gelEvent(30, false), gelEvent(40, false)}
	targets := models.MultiNutrientTargets{CarbsG: 50}
	_, errs := Validate(events, sampleCatalog(), targets, true)

	found := false
	for _, e := range errs {
		if strings.Contains(e, "spacing violation") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a spacing violation (gel run spacing is %dmin), got %v", gelSpacingRunMin, errs)
	}
}

func TestValidate_NoErrorsForWellSpacedPlan(t *testing.T) {
	events := []models.NutritionEvent{gelEvent(30, false), gelEvent(60, false)}
	targets := models.MultiNutrientTargets{CarbsG: 50}
	_, errs := Validate(events, sampleCatalog(), targets, true)
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidate_WarnsOnCarbUnderdelivery(t *testing.T) {
	events := []models.NutritionEvent{gelEvent(30, false)}
	events[0].TotalCarbsSoFar = 25
	targets := models.MultiNutrientTargets{CarbsG: 100}
	warnings, _ := Validate(events, sampleCatalog(), targets, true)

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "underdelivered") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a carb underdelivery warning, got %v", warnings)
	}
}

func TestValidate_WarnsOnDrinkUnderuse(t *testing.T) {
	events := []models.NutritionEvent{gelEvent(30, false)}
	events[0].TotalCarbsSoFar = 250
	targets := models.MultiNutrientTargets{CarbsG: 250}
	warnings, _ := Validate(events, sampleCatalog(), targets, true)

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "high-carb drinks were available") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a drink under-use warning, got %v", warnings)
	}
}

func TestValidate_WarnsOnUnpairedGel(t *testing.T) {
	events := []models.NutritionEvent{gelEvent(30, false)}
	events[0].TotalCarbsSoFar = 25
	targets := models.MultiNutrientTargets{CarbsG: 25}
	warnings, _ := Validate(events, sampleCatalog(), targets, true)

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "no paired drink") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an unpaired-gel hydration warning, got %v", warnings)
	}
}
