package planner

import (
	"math"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

// eligible applies the pre-scoring eligibility filter (spec.md §4.5).
// caffeineCeilingMg is caffeineTargetMg * caffeineCeilingFactor; caffeineSoFarMg
// is the running total before this product would be added.
func eligible(p models.Product, phase models.Phase, raceProgress float64, caffeineEnabled bool, caffeineSoFarMg, caffeineCeilingMg, nextCaffeineMin, slotTimeMin float64) bool {
	if p.IsBarOrBake() && phase != models.PhaseBike {
		return false
	}
	if p.HasCaffeine {
		if !caffeineEnabled || raceProgress < caffeineStartProgress {
			return false
		}
		if slotTimeMin < nextCaffeineMin {
			return false
		}
		if caffeineSoFarMg+p.CaffeineMg > caffeineCeilingMg {
			return false
		}
	}
	return true
}

func segmentSuitability(phase models.Phase, p models.Product) float64 {
	switch phase {
	case models.PhaseBike:
		switch {
		case p.IsHighCarbDrink():
			return 50
		case p.Texture == models.TextureDrink:
			return 30
		case p.IsBarOrBake():
			return 20
		case p.Texture == models.TextureChew:
			return 15
		case p.Texture == models.TextureGel:
			return 10
		case p.Texture == models.TextureLightGel:
			return 5
		default:
			return 0
		}
	case models.PhaseRun:
		switch {
		case p.Texture == models.TextureGel && isIsotonic(p):
			return 40
		case p.Texture == models.TextureGel:
			return 25
		case p.Texture == models.TextureLightGel:
			return 20
		case p.Texture == models.TextureDrink && p.VolumeMl <= 200:
			return 15
		case p.Texture == models.TextureDrink:
			return 5
		case p.Texture == models.TextureBake:
			return -30
		case p.Texture == models.TextureChew:
			return -10
		default:
			return 0
		}
	case models.PhaseSwim:
		switch {
		case p.Texture == models.TextureGel && isIsotonic(p):
			return 20
		case p.Texture == models.TextureGel:
			return 10
		default:
			return -20
		}
	default:
		return 0
	}
}

// caffeineWindowBonus returns the race-progress-window scoring bonus for
// a caffeinated product (spec.md §4.5 table). Callers must already have
// confirmed raceProgress >= caffeineStartProgress and p.HasCaffeine.
func caffeineWindowBonus(raceProgress float64) float64 {
	switch {
	case raceProgress >= 0.40 && raceProgress <= 0.55:
		return 15
	case raceProgress >= 0.65 && raceProgress <= 0.80:
		return 20
	case raceProgress >= 0.85 && raceProgress <= 0.95:
		return 25
	default:
		return 5
	}
}

// scoreInputs bundles the state needed to score one candidate product
// for one slot. ConsecutiveUses and TotalIntakes vary per candidate
// product and per slot respectively, so callers fill in a fresh
// scoreInputs for every (slot, candidate) pair.
type scoreInputs struct {
	Phase             models.Phase
	RaceProgress      float64
	RemainingCarbsG   float64
	RemainingSodiumMg float64
	ConsecutiveUses   int
	TotalIntakes      int
}

// scoreProduct implements the weighted scoring function of spec.md
// §4.5. Higher is better; a score <= 0 means the slot should be left
// empty rather than filled with this candidate.
func scoreProduct(p models.Product, in scoreInputs) float64 {
	score := carbEfficiencyWeight * p.CarbsG

	score += segmentSuitability(in.Phase, p)

	if in.RemainingSodiumMg > 0 {
		score += sodiumFitWeight * minFloat(p.SodiumMg/in.RemainingSodiumMg, 1)
	}

	if p.HasCaffeine && in.RaceProgress >= caffeineStartProgress {
		score += caffeineWindowBonus(in.RaceProgress)
		if p.CaffeineMg >= optimalCaffeineDoseLo && p.CaffeineMg <= optimalCaffeineDoseHi {
			score += optimalCaffeineDoseBonus
		}
	}

	if in.ConsecutiveUses >= 2 {
		score += diversityPenaltyScale * float64(in.ConsecutiveUses)
	}

	// Sort-stable tie-breaker, not a physical rate (spec.md §9 decision).
	intakeRate := float64(in.TotalIntakes) / (in.RaceProgress + 0.1)
	if intakeRate > maxIntakesPerHourDefault {
		score += highFrequencyPenalty
	}

	return score
}

// scoredCandidate pairs a product with its score for one slot.
type scoredCandidate struct {
	Product models.Product
	Score   float64
}

// selectBest picks the top-scoring candidate, breaking ties with the
// planner's seeded PRNG (spec.md §5, §9: the PRNG is used only for
// tie-breaking, never for the primary ranking). Returns false if no
// candidate has a positive score (spec.md §4.5: "If the top-ranked
// candidate has score <= 0, the slot is left empty").
func selectBest(candidates []scoredCandidate, rng interface{ Intn(int) int }) (models.Product, bool) {
	if len(candidates) == 0 {
		return models.Product{}, false
	}

	best := make([]models.Product, 0, 1)
	bestScore := -math.MaxFloat64

	for _, c := range candidates {
		switch {
		case c.Score > bestScore:
			best = best[:0]
			best = append(best, c.Product)
			bestScore = c.Score
		case c.Score == bestScore:
			best = append(best, c.Product)
		}
	}

	if bestScore <= 0 {
		return models.Product{}, false
	}

	if len(best) == 1 {
		return best[0], true
	}
	return best[rng.Intn(len(best))], true
}
