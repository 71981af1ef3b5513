package models

// PhaseNutrientTargets holds the carb/sodium/fluid sub-target for a single
// phase of a triathlon. Caffeine is never split per-phase (spec.md §4.1).
type PhaseNutrientTargets struct {
	CarbsG   float64 `json:"carbs_g"`
	SodiumMg float64 `json:"sodium_mg"`
	FluidMl  float64 `json:"fluid_ml"`
}

// MultiNutrientTargets is the output of the target computer.
type MultiNutrientTargets struct {
	CarbsG   float64 `json:"carbs_g"`
	SodiumMg float64 `json:"sodium_mg"`
	FluidMl  float64 `json:"fluid_ml"`
	CaffeineMg float64 `json:"caffeine_mg"`

	CarbsGPerHour   float64 `json:"carbs_g_per_hour"`
	SodiumMgPerHour float64 `json:"sodium_mg_per_hour"`
	FluidMlPerHour  float64 `json:"fluid_ml_per_hour"`

	CaffeineEnabled bool `json:"caffeine_enabled"`

	// PhaseTargets is non-nil only for Triathlon; keyed by Phase.
	PhaseTargets map[Phase]*PhaseNutrientTargets `json:"phase_targets,omitempty"`
}

// PhaseSegment is one contiguous leg of the race timeline, in minutes
// from race start. Segments are left-closed, right-open except the
// final segment, which is closed at both ends (spec.md §4.2).
type PhaseSegment struct {
	Phase    Phase   `json:"phase"`
	StartMin float64 `json:"start_min"`
	EndMin   float64 `json:"end_min"`
}

// NutritionEvent is one scheduled intake. TimeMin is negative for
// pre-race events. CaffeineMg is only meaningful when HasCaffeine is
// true; it is carried as a pointer to mirror its "optional" status in
// spec.md §3.
type NutritionEvent struct {
	TimeMin            int     `json:"time_min"`
	Phase              Phase   `json:"phase"`
	PhaseDescription   string  `json:"phase_description"`
	ProductName        string  `json:"product_name"`
	AmountPortions     int     `json:"amount_portions"`
	Action             string  `json:"action"`
	TotalCarbsSoFar    float64 `json:"total_carbs_so_far"`
	TotalCaffeineSoFar float64 `json:"total_caffeine_so_far"`
	HasCaffeine        bool    `json:"has_caffeine"`
	CaffeineMg         *float64 `json:"caffeine_mg,omitempty"`

	// carbsG/sodiumMg/volumeMl/caffeineMg/texture/isIsotonic are carried internally so the
	// final sort+cumulative pass (spec.md §4.7) can recompute totals
	// without re-looking the product up in the catalog. They are not part
	// of the wire contract described in spec.md §6 and are therefore
	// unexported.
	carbsG     float64
	sodiumMg   float64
	volumeMl   float64
	caffeineMg float64
	texture    Texture
	isIsotonic bool
}

// CarbsG returns the carbohydrate content of the product that produced
// this event (used by the sort+cumulative and validator passes).
func (e NutritionEvent) CarbsG() float64 { return e.carbsG }

// SodiumMg returns the sodium content of the product that produced this event.
func (e NutritionEvent) SodiumMg() float64 { return e.sodiumMg }

// VolumeMl returns the fluid volume of the product that produced this event.
func (e NutritionEvent) VolumeMl() float64 { return e.volumeMl }

// CaffeineMgValue returns the raw caffeine content (0 when none), distinct
// from the pointer field used on the wire.
func (e NutritionEvent) CaffeineMgValue() float64 { return e.caffeineMg }

// Texture returns the texture of the product that produced this event.
func (e NutritionEvent) Texture() Texture { return e.texture }

// IsIsotonic reports whether the product that produced this event was
// classified as isotonic at selection time (spec.md §4.5).
func (e NutritionEvent) IsIsotonic() bool { return e.isIsotonic }

// NewNutritionEvent constructs an event, carrying the constituent
// nutrient amounts needed by later passes. totalCarbsSoFar/
// totalCaffeineSoFar are left zero at construction time; the final
// sort+cumulative pass (spec.md §4.7, §9) is the single place that
// computes them.
func NewNutritionEvent(timeMin int, phase Phase, phaseDescription, productName, action string, carbsG, sodiumMg, volumeMl, caffeineMg float64, hasCaffeine bool, texture Texture, isotonic bool) NutritionEvent {
	e := NutritionEvent{
		TimeMin:          timeMin,
		Phase:            phase,
		PhaseDescription: phaseDescription,
		ProductName:      productName,
		AmountPortions:   1,
		Action:           action,
		HasCaffeine:      hasCaffeine,
		carbsG:           carbsG,
		sodiumMg:         sodiumMg,
		volumeMl:         volumeMl,
		caffeineMg:       caffeineMg,
		texture:          texture,
		isIsotonic:       isotonic,
	}
	if hasCaffeine {
		v := caffeineMg
		e.CaffeineMg = &v
	}
	return e
}

// SetCumulativeTotals is called only by the sort+cumulative pass.
func (e *NutritionEvent) SetCumulativeTotals(totalCarbsSoFar, totalCaffeineSoFar float64) {
	e.TotalCarbsSoFar = totalCarbsSoFar
	e.TotalCaffeineSoFar = totalCaffeineSoFar
}

// PlanResult is the output of GeneratePlan: a time-ordered event
// sequence plus validation diagnostics. PlanID is an audit/correlation
// field assigned once per GeneratePlan call; it plays no role in any
// planning invariant.
type PlanResult struct {
	PlanID   string           `json:"plan_id"`
	Events   []NutritionEvent `json:"events"`
	Warnings []string         `json:"warnings"`
	Errors   []string         `json:"errors"`
}
