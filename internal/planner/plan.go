// Package planner implements the race-day nutrition planning engine:
// target computation, phase-aware scheduling, scored product selection,
// and self-validating diagnostics. GeneratePlan and ComputeTargets are
// pure functions of their arguments (spec.md §5) — no global state is
// read or written, and every call constructs its own transient state.
package planner

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

var structValidator = validator.New()

// ValidateInputs performs the input validation failures named in
// spec.md §7: struct-tag bounds via validator/v10, plus the cross-field
// and catalog-level rules tags cannot express.
func ValidateInputs(race models.RaceProfile, athlete models.AthleteProfile, products []models.Product) error {
	if err := structValidator.Struct(race); err != nil {
		return newValidationError("race", err.Error())
	}
	if err := structValidator.Struct(athlete); err != nil {
		return newValidationError("athlete", err.Error())
	}
	if len(products) == 0 {
		return newValidationError("products", "catalog must not be empty")
	}

	hasGel := false
	for i, p := range products {
		if err := structValidator.Struct(p); err != nil {
			return newValidationError(fmt.Sprintf("products[%d]", i), err.Error())
		}
		if p.HasCaffeine == (p.CaffeineMg == 0) {
			return newValidationError(fmt.Sprintf("products[%d].caffeine_mg", i),
				"must be zero iff has_caffeine is false")
		}
		if p.Texture == models.TextureDrink && p.VolumeMl <= 0 {
			return newValidationError(fmt.Sprintf("products[%d].volume_ml", i),
				"a drink product must have a positive volume")
		}
		if p.Texture == models.TextureGel {
			hasGel = true
		}
	}
	if !hasGel {
		return newValidationError("products", "catalog must contain at least one gel")
	}

	return nil
}

// GeneratePlan runs the full six-stage pipeline described in spec.md §2:
// target computation, phase timeline, slot enumeration, drink backbone
// placement, scored slot filling, tail top-up, and the final sort +
// cumulative-totals + validation pass.
func GeneratePlan(race models.RaceProfile, athlete models.AthleteProfile, products []models.Product, caffeineEnabled bool) (result models.PlanResult, err error) {
	if verr := ValidateInputs(race, athlete, products); verr != nil {
		return models.PlanResult{}, verr
	}

	defer func() {
		if r := recover(); r != nil {
			if bug, ok := r.(Bug); ok {
				err = bug
				return
			}
			panic(r)
		}
	}()

	targets := ComputeTargets(race, athlete, caffeineEnabled)
	timeline := BuildPhaseTimeline(race)
	slots := EnumerateSlots(timeline, race.SportType)

	st := newState()
	occ := &occupiedMinutes{}

	var events []models.NutritionEvent
	events = append(events, placeBackbone(race.SportType, timeline, products, targets, st, occ)...)
	events = append(events, fillSlots(race.SportType, timeline, slots, products, targets, st, occ)...)
	events = append(events, topUp(race.SportType, timeline, products, targets, st, occ)...)

	events = finalize(race.SportType, timeline, products, targets, events, st, occ)

	warnings, planErrors := Validate(events, products, targets, caffeineEnabled)

	result = models.PlanResult{
		PlanID:   uuid.New().String(),
		Events:   events,
		Warnings: warnings,
		Errors:   planErrors,
	}
	return result, nil
}
