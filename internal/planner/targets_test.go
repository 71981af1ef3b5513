package planner

import (
	"testing"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

func TestComputeTargets_TableDriven(t *testing.T) {
	tests := []struct {
		name       string
		race       models.RaceProfile
		athlete    models.AthleteProfile
		caffeine   bool
		wantCarbsG float64
	}{
		{
			name:       "moderate 4h run, easy intensity",
			race:       models.RaceProfile{SportType: models.SportRun, DurationHours: 4, Temperature: models.TemperatureModerate, Intensity: models.IntensityEasy},
			athlete:    models.AthleteProfile{WeightKg: 70},
			caffeine:   false,
			wantCarbsG: carbPerHourByIntensity[models.IntensityEasy] * 4,
		},
		{
			name:       "long race earns the long-race carb bonus",
			race:       models.RaceProfile{SportType: models.SportBike, DurationHours: 10, Temperature: models.TemperatureModerate, Intensity: models.IntensityModerate},
			athlete:    models.AthleteProfile{WeightKg: 70},
			caffeine:   false,
			wantCarbsG: (carbPerHourByIntensity[models.IntensityModerate] + longRaceBonusCarbsPerHour) * 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTargets(tt.race, tt.athlete, tt.caffeine)
			if got.CarbsG != tt.wantCarbsG {
				t.Errorf("CarbsG = %v, want %v", got.CarbsG, tt.wantCarbsG)
			}
		})
	}
}

func TestComputeTargets_CaffeineCappedAt300(t *testing.T) {
	race := models.RaceProfile{SportType: models.SportRun, DurationHours: 4, Temperature: models.TemperatureModerate, Intensity: models.IntensityHard}
	athlete := models.AthleteProfile{WeightKg: 200} // 200kg * 3.5mg/kg = 700mg, well above the cap
	got := ComputeTargets(race, athlete, true)
	if got.CaffeineMg != caffeineTotalCapMg {
		t.Errorf("CaffeineMg = %v, want cap %v", got.CaffeineMg, caffeineTotalCapMg)
	}
}

func TestComputeTargets_NoCaffeineWhenDisabled(t *testing.T) {
	race := models.RaceProfile{SportType: models.SportRun, DurationHours: 4, Temperature: models.TemperatureModerate, Intensity: models.IntensityHard}
	athlete := models.AthleteProfile{WeightKg: 70}
	got := ComputeTargets(race, athlete, false)
	if got.CaffeineMg != 0 || got.CaffeineEnabled {
		t.Errorf("expected zero, disabled caffeine targets, got %+v", got)
	}
}

func TestComputeTargets_TriathlonPhaseSplitSumsToTotal(t *testing.T) {
	race := models.RaceProfile{SportType: models.SportTriathlon, DurationHours: 9, Temperature: models.TemperatureHot, Intensity: models.IntensityModerate}
	athlete := models.AthleteProfile{WeightKg: 65}
	got := ComputeTargets(race, athlete, true)

	if got.PhaseTargets == nil {
		t.Fatal("expected non-nil PhaseTargets for a triathlon")
	}
	sumCarbs := got.PhaseTargets[models.PhaseSwim].CarbsG + got.PhaseTargets[models.PhaseBike].CarbsG + got.PhaseTargets[models.PhaseRun].CarbsG
	if diff := sumCarbs - got.CarbsG; diff > 0.01 || diff < -0.01 {
		t.Errorf("phase carb targets sum to %v, want %v", sumCarbs, got.CarbsG)
	}
	if got.PhaseTargets[models.PhaseSwim].CarbsG != 0 {
		t.Errorf("expected zero swim carbs, got %v", got.PhaseTargets[models.PhaseSwim].CarbsG)
	}
}

func TestComputeTargets_NonTriathlonHasNoPhaseTargets(t *testing.T) {
	race := models.RaceProfile{SportType: models.SportRun, DurationHours: 3, Temperature: models.TemperatureModerate, Intensity: models.IntensityModerate}
	athlete := models.AthleteProfile{WeightKg: 70}
	got := ComputeTargets(race, athlete, false)
	if got.PhaseTargets != nil {
		t.Errorf("expected nil PhaseTargets for a non-triathlon, got %v", got.PhaseTargets)
	}
}
