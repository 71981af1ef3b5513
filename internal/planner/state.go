package planner

import (
	"math/rand"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

// state is the transient planner state described in spec.md §3
// ("PlannerState"). It is created fresh at the start of every
// GeneratePlan call and discarded on return; nothing here is shared
// across calls or goroutines.
type state struct {
	carbsG     float64
	sodiumMg   float64
	fluidMl    float64
	caffeineMg float64

	// recentProducts is the diversity FIFO: the last five selected
	// product names (GLOSSARY: "Diversity queue").
	recentProducts []string

	totalIntakes int

	// nextCaffeineMin is the caffeine guard, as a minute offset: no caffeinated
	// product may be selected before this minute, enforcing the
	// spacing floor (spec.md §4.5).
	nextCaffeineMin float64

	rng *rand.Rand
}

func newState() *state {
	return &state{
		rng: rand.New(rand.NewSource(randomSeed)),
	}
}

func (s *state) recordIntake(p models.Product) {
	s.carbsG += p.CarbsG
	s.sodiumMg += p.SodiumMg
	s.fluidMl += p.VolumeMl
	if p.HasCaffeine {
		s.caffeineMg += p.CaffeineMg
	}
	s.totalIntakes++

	s.recentProducts = append(s.recentProducts, p.Name)
	if len(s.recentProducts) > diversityWindowSize {
		s.recentProducts = s.recentProducts[len(s.recentProducts)-diversityWindowSize:]
	}
}

// consecutiveUseCount returns how many of the most recent selections
// (from the tail of the diversity queue backward) are this exact
// product, used by the diversity penalty in the scorer.
func (s *state) consecutiveUseCount(productName string) int {
	count := 0
	for i := len(s.recentProducts) - 1; i >= 0; i-- {
		if s.recentProducts[i] != productName {
			break
		}
		count++
	}
	return count
}

func (s *state) remaining(targets models.MultiNutrientTargets) (carbs, sodium, fluid, caffeine float64) {
	carbs = maxFloat(targets.CarbsG-s.carbsG, 0)
	sodium = maxFloat(targets.SodiumMg-s.sodiumMg, 0)
	fluid = maxFloat(targets.FluidMl-s.fluidMl, 0)
	caffeine = maxFloat(targets.CaffeineMg-s.caffeineMg, 0)
	return
}
