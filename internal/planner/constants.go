package planner

import "github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"

// Fixed seed for the planner's tie-breaking PRNG. Identical inputs must
// produce identical plans (spec.md §5, §8 property 12); this is the
// single source of randomness in the package and it is never reseeded
// per-call from wall-clock time.
const randomSeed = 42

// Carb per-hour targets by intensity (spec.md §4.1).
var carbPerHourByIntensity = map[models.Intensity]float64{
	models.IntensityEasy:     50,
	models.IntensityModerate: 70,
	models.IntensityHard:     90,
}

const (
	longRaceBonusThresholdHours = 5
	longRaceBonusCarbsPerHour   = 10
)

// Fluid per-hour base/adjustments (spec.md §4.1).
const (
	fluidBasePerHour      = 500
	fluidHotAdjustment    = 200
	fluidColdAdjustment   = -100
	fluidHeavyWeightBonus = 50
	fluidLightWeightCut   = -50
	fluidHeavyWeightKg    = 80
	fluidLightWeightKg    = 60
	fluidMinPerHour       = 300
	fluidMaxPerHour       = 900
)

// Sodium per-hour base/adjustments (spec.md §4.1).
const (
	sodiumBasePerHour       = 400
	sodiumHotAdjustment     = 200
	sodiumHeavyWeightBonus  = 100
	sodiumHeavyWeightKg     = 80
	sodiumMinPerHour        = 300
	sodiumMaxPerHour        = 1000
)

// Caffeine dosing. Spec.md §4.1 only states the ordering
// Easy < Moderate < Hard and the absolute cap of 300mg; the per-kg rates
// themselves are an implementation decision.
var caffeineMgPerKgByIntensity = map[models.Intensity]float64{
	models.IntensityEasy:     1.5,
	models.IntensityModerate: 2.5,
	models.IntensityHard:     3.5,
}

const caffeineTotalCapMg = 300

// Triathlon phase time shares (spec.md §4.1, §9 — 20/50/30 is the single
// source of truth; no alternate split exists in this codebase).
const (
	triSwimTimeShare = 0.20
	triBikeTimeShare = 0.50
	triRunTimeShare  = 0.30
)

// Triathlon carb split between bike and run (swim gets zero).
const (
	triBikeCarbShare = 0.70
	triRunCarbShare  = 0.30
)

// Slot enumerator cadences and margins (spec.md §4.3).
const (
	tailSafetyMarginMin       = 5
	nonTriRunCadenceMin       = 22
	nonTriBikeCadenceMin      = 18
	triBikeCadenceMin         = 18
	triRunCadenceMin          = 25
	triSwimCadenceMin         = 20 // slots enumerated but always skipped by the filler
	triBikeTransitionMarginMin = 10
)

// Cluster window: minimum temporal separation between any two events
// (spec.md GLOSSARY, §3).
const clusterWindowMin = 5

// Drink backbone placer (spec.md §4.4).
const (
	backboneCarbShare          = 0.45
	backboneBikeStartOffsetMin = 15
	backboneBikeIntervalMin    = 35
	backboneBikeEndMarginMin   = 10
	backboneOtherStartMin      = 20
	backboneOtherIntervalMin   = 40
	backboneOtherEndMarginMin  = 10
)

// Slot filler (spec.md §4.5).
const (
	preRaceCarbFloorShare = 0.10
	preRaceTimeMin        = -15
	caffeineStartProgress = 0.40
	caffeineCeilingFactor = 1.2
	optimalCaffeineDoseLo = 50
	optimalCaffeineDoseHi = 100
	diversityWindowSize   = 5
	diversityPenaltyScale = -15
	maxIntakesPerHourDefault = 4.0
	highFrequencyPenalty     = -10
	caffeineSpacingFloorMin  = 45
)

// Scoring weights (spec.md §4.5).
const (
	carbEfficiencyWeight = 2.0
	sodiumFitWeight      = 15.0
	optimalCaffeineDoseBonus = 25.0
)

// Isotonic concentration heuristic bounds (spec.md §4.5, GLOSSARY): a
// product is isotonic when carbsG / (volumeMl/1000) / 10, i.e. percent
// carbohydrate by volume, falls in [6, 8].
const (
	isotonicConcentrationLo = 6.0
	isotonicConcentrationHi = 8.0
)

// Tail top-up (spec.md §4.6).
const (
	topUpBufferG           = 5
	triBikeTopUpSpacingMin = 15
	triRunTopUpSpacingMin  = 20
	nonTriTopUpStepMin     = 10
	nonTriTopUpTailOffsetMin = 5
)

// Validator (spec.md §4.8).
const (
	carbToleranceFraction     = 0.10
	caffeineSpacingMin        = 45
	solidSpacingBikeMin       = 25
	solidSpacingRunMin        = 30
	gelSpacingBikeMin         = 15
	gelSpacingRunMin          = 20
	defaultSpacingMin         = 12
	caffeineWarnOveragePct    = 1.2
	diversityWarnShare        = 0.60
	drinkUnderuseCarbsFloorG  = 200
	hydrationCouplingWindowMin = 10
	hydrationCouplingMinVolumeMl = 100
)
