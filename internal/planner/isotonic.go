package planner

import (
	"strings"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

// isIsotonic classifies a product as isotonic when its category names it
// explicitly, or via the 6-8% carbohydrate-by-volume concentration
// heuristic (spec.md §4.5, GLOSSARY). Products with no volume (gels sold
// without a stated volume) fall back to the category check only.
func isIsotonic(p models.Product) bool {
	if strings.Contains(strings.ToLower(p.Category), "isotonic") {
		return true
	}
	if p.VolumeMl <= 0 {
		return false
	}
	concentration := p.CarbsG / (p.VolumeMl / 1000) / 10
	return concentration >= isotonicConcentrationLo && concentration <= isotonicConcentrationHi
}
