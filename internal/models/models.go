// Package models holds the value types the race-day nutrition planner
// operates on. Every type here is immutable once constructed; the only
// mutable state in the planner lives in the planner package's unexported
// state type, which is internal
// to a single GeneratePlan call.
package models

// SportType identifies the discipline (or disciplines) of the race.
type SportType string

const (
	SportRun        SportType = "Run"
	SportBike       SportType = "Bike"
	SportTriathlon  SportType = "Triathlon"
)

// Temperature is the ambient temperature band for the race, already
// resolved from a numeric reading by the caller (see SPEC_FULL.md,
// transport layer collaborator contract).
type Temperature string

const (
	TemperatureCold     Temperature = "Cold"
	TemperatureModerate Temperature = "Moderate"
	TemperatureHot      Temperature = "Hot"
)

// Intensity is the target effort level for the race.
type Intensity string

const (
	IntensityEasy     Intensity = "Easy"
	IntensityModerate Intensity = "Moderate"
	IntensityHard     Intensity = "Hard"
)

// Phase identifies a leg of a race. Single-sport races use exactly one
// phase (Run or Bike); triathlons use all three.
type Phase string

const (
	PhaseSwim Phase = "Swim"
	PhaseBike Phase = "Bike"
	PhaseRun  Phase = "Run"
)

// ProductType is the broad category tag on a catalog product.
type ProductType string

const (
	ProductGel       ProductType = "gel"
	ProductDrink     ProductType = "drink"
	ProductBar       ProductType = "bar"
	ProductChew      ProductType = "chew"
	ProductRecovery  ProductType = "recovery"
)

// Texture drives segment-suitability scoring and spacing rules; it is a
// finer-grained shape classifier than ProductType.
type Texture string

const (
	TextureGel      Texture = "Gel"
	TextureLightGel Texture = "LightGel"
	TextureDrink    Texture = "Drink"
	TextureChew     Texture = "Chew"
	TextureBake     Texture = "Bake"
)

// AthleteProfile describes the athlete the plan is built for.
type AthleteProfile struct {
	WeightKg float64 `json:"weight_kg" validate:"gt=0,lte=250"`
}

// RaceProfile describes the race the plan is built for. Temperature is a
// band, not a numeric reading; mapping °C to a band is a transport-layer
// concern (spec.md §6).
type RaceProfile struct {
	SportType     SportType   `json:"sport_type" validate:"required,oneof=Run Bike Triathlon"`
	DurationHours float64     `json:"duration_hours" validate:"gt=0,lte=24"`
	Temperature   Temperature `json:"temperature" validate:"required,oneof=Cold Moderate Hot"`
	Intensity     Intensity   `json:"intensity" validate:"required,oneof=Easy Moderate Hard"`
}

// Product is a single catalog entry. CaffeineMg must be zero exactly
// when HasCaffeine is false; that cross-field rule is enforced by
// planner.ValidateInputs rather than a struct tag, since validator/v10's
// declarative tags cannot express "iff" directly.
type Product struct {
	Name        string      `json:"name" validate:"required"`
	ProductType ProductType `json:"product_type" validate:"required,oneof=gel drink bar chew recovery"`
	CarbsG      float64     `json:"carbs_g" validate:"gte=0"`
	SodiumMg    float64     `json:"sodium_mg" validate:"gte=0"`
	VolumeMl    float64     `json:"volume_ml" validate:"gte=0"`
	HasCaffeine bool        `json:"has_caffeine"`
	CaffeineMg  float64     `json:"caffeine_mg" validate:"gte=0"`
	Texture     Texture     `json:"texture" validate:"required,oneof=Gel LightGel Drink Chew Bake"`
	Category    string      `json:"category,omitempty"`
}

// IsHighCarbDrink reports whether this product is eligible for the
// drink-backbone placement pass (spec.md §4.4).
func (p Product) IsHighCarbDrink() bool {
	return p.Texture == TextureDrink && p.CarbsG > 30
}

// IsBarOrBake reports whether this product is in the solid/bar-or-bake
// shape class used by the bike-only eligibility rule (spec.md §4.5).
func (p Product) IsBarOrBake() bool {
	return p.ProductType == ProductBar || p.Texture == TextureBake
}
