package planner

import (
	"testing"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{Name: "Iso Drink", ProductType: models.ProductDrink, CarbsG: 40, SodiumMg: 400, VolumeMl: 500, Texture: models.TextureDrink, Category: "isotonic drink"},
		{Name: "Energy Gel", ProductType: models.ProductGel, CarbsG: 25, SodiumMg: 50, Texture: models.TextureGel, Category: "gel"},
		{Name: "Caffeine Gel", ProductType: models.ProductGel, CarbsG: 25, SodiumMg: 50, HasCaffeine: true, CaffeineMg: 50, Texture: models.TextureGel, Category: "gel"},
		{Name: "Light Gel", ProductType: models.ProductGel, CarbsG: 12, SodiumMg: 20, Texture: models.TextureLightGel, Category: "gel"},
		{Name: "Energy Bar", ProductType: models.ProductBar, CarbsG: 30, SodiumMg: 100, Texture: models.TextureBake, Category: "bar"},
		{Name: "Chew Pack", ProductType: models.ProductChew, CarbsG: 20, SodiumMg: 60, Texture: models.TextureChew, Category: "chew"},
	}
}

func runRace(sport models.SportType, hours float64) models.RaceProfile {
	return models.RaceProfile{
		SportType:     sport,
		DurationHours: hours,
		Temperature:   models.TemperatureModerate,
		Intensity:     models.IntensityModerate,
	}
}

func TestGeneratePlan_RunDeterministic(t *testing.T) {
	race := runRace(models.SportRun, 4)
	athlete := models.AthleteProfile{WeightKg: 70}
	products := sampleCatalog()

	first, err := GeneratePlan(race, athlete, products, true)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}
	second, err := GeneratePlan(race, athlete, products, true)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}

	if len(first.Events) != len(second.Events) {
		t.Fatalf("event count differs between runs: %d vs %d", len(first.Events), len(second.Events))
	}
	for i := range first.Events {
		a, b := first.Events[i], second.Events[i]
		if a.TimeMin != b.TimeMin || a.ProductName != b.ProductName {
			t.Fatalf("event %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestGeneratePlan_EventsAreSortedByTime(t *testing.T) {
	race := runRace(models.SportBike, 5)
	athlete := models.AthleteProfile{WeightKg: 75}
	result, err := GeneratePlan(race, athlete, sampleCatalog(), true)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}
	for i := 1; i < len(result.Events); i++ {
		if result.Events[i].TimeMin < result.Events[i-1].TimeMin {
			t.Fatalf("events not sorted: %d came after %d", result.Events[i].TimeMin, result.Events[i-1].TimeMin)
		}
	}
}

func TestGeneratePlan_CumulativeTotalsMonotonic(t *testing.T) {
	race := runRace(models.SportTriathlon, 8)
	athlete := models.AthleteProfile{WeightKg: 68}
	result, err := GeneratePlan(race, athlete, sampleCatalog(), true)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}
	var prevCarbs, prevCaffeine float64
	for _, e := range result.Events {
		if e.TotalCarbsSoFar < prevCarbs {
			t.Fatalf("cumulative carbs decreased: %v after %v", e.TotalCarbsSoFar, prevCarbs)
		}
		if e.TotalCaffeineSoFar < prevCaffeine {
			t.Fatalf("cumulative caffeine decreased: %v after %v", e.TotalCaffeineSoFar, prevCaffeine)
		}
		prevCarbs, prevCaffeine = e.TotalCarbsSoFar, e.TotalCaffeineSoFar
	}
}

func TestGeneratePlan_NoCaffeineWhenDisabled(t *testing.T) {
	race := runRace(models.SportRun, 4)
	athlete := models.AthleteProfile{WeightKg: 70}
	result, err := GeneratePlan(race, athlete, sampleCatalog(), false)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}
	for _, e := range result.Events {
		if e.HasCaffeine {
			t.Fatalf("caffeine event present despite caffeine disabled: %+v", e)
		}
	}
	for _, msg := range result.Errors {
		t.Fatalf("unexpected planning error with caffeine disabled: %s", msg)
	}
}

func TestGeneratePlan_TriathlonCoversAllPhases(t *testing.T) {
	race := runRace(models.SportTriathlon, 10)
	athlete := models.AthleteProfile{WeightKg: 72}
	result, err := GeneratePlan(race, athlete, sampleCatalog(), true)
	if err != nil {
		t.Fatalf("GeneratePlan returned error: %v", err)
	}
	seen := map[models.Phase]bool{}
	for _, e := range result.Events {
		seen[e.Phase] = true
	}
	if !seen[models.PhaseBike] || !seen[models.PhaseRun] {
		t.Fatalf("expected bike and run events in a triathlon plan, got phases: %v", seen)
	}
}

func TestValidateInputs_RejectsEmptyCatalog(t *testing.T) {
	race := runRace(models.SportRun, 3)
	athlete := models.AthleteProfile{WeightKg: 70}
	if err := ValidateInputs(race, athlete, nil); err == nil {
		t.Fatal("expected error for empty catalog, got nil")
	}
}

func TestValidateInputs_RejectsCatalogWithoutGel(t *testing.T) {
	race := runRace(models.SportRun, 3)
	athlete := models.AthleteProfile{WeightKg: 70}
	products := []models.Product{
		{Name: "Drink only", ProductType: models.ProductDrink, CarbsG: 40, VolumeMl: 500, Texture: models.TextureDrink},
	}
	if err := ValidateInputs(race, athlete, products); err == nil {
		t.Fatal("expected error for catalog without a gel, got nil")
	}
}

func TestValidateInputs_RejectsInconsistentCaffeineFlag(t *testing.T) {
	race := runRace(models.SportRun, 3)
	athlete := models.AthleteProfile{WeightKg: 70}
	products := []models.Product{
		{Name: "Bad Gel", ProductType: models.ProductGel, CarbsG: 25, Texture: models.TextureGel, HasCaffeine: true, CaffeineMg: 0},
	}
	if err := ValidateInputs(race, athlete, products); err == nil {
		t.Fatal("expected error for has_caffeine=true with caffeine_mg=0, got nil")
	}
}

func TestValidateInputs_RejectsZeroVolumeDrink(t *testing.T) {
	race := runRace(models.SportRun, 3)
	athlete := models.AthleteProfile{WeightKg: 70}
	products := []models.Product{
		{Name: "Gel", ProductType: models.ProductGel, CarbsG: 25, Texture: models.TextureGel},
		{Name: "Drink", ProductType: models.ProductDrink, CarbsG: 40, VolumeMl: 0, Texture: models.TextureDrink},
	}
	if err := ValidateInputs(race, athlete, products); err == nil {
		t.Fatal("expected error for zero-volume drink, got nil")
	}
}

func TestValidateInputs_RejectsOutOfRangeWeight(t *testing.T) {
	race := runRace(models.SportRun, 3)
	athlete := models.AthleteProfile{WeightKg: -1}
	if err := ValidateInputs(race, athlete, sampleCatalog()); err == nil {
		t.Fatal("expected error for non-positive weight, got nil")
	}
}
