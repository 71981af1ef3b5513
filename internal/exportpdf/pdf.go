// Package exportpdf renders a generated plan into a printable pacing
// card, the race-morning artifact an athlete tapes to a top tube or
// stuffs in a pocket.
package exportpdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

var titleCaser = cases.Title(language.English)

// RenderPacingCard lays out the plan's target summary, minute-by-minute
// event table and warnings on A4 pages; a table too long for the first
// page continues on the next.
func RenderPacingCard(race models.RaceProfile, targets models.MultiNutrientTargets, result models.PlanResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Race-Day Pacing Card", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Sport: %s | Duration: %.1fh | Temperature: %s | Intensity: %s",
		titleCaser.String(string(race.SportType)), race.DurationHours,
		titleCaser.String(string(race.Temperature)), titleCaser.String(string(race.Intensity))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Targets: %.0fg carbs | %.0fmg sodium | %.0fml fluid | %.0fmg caffeine",
		targets.CarbsG, targets.SodiumMg, targets.FluidMl, targets.CaffeineMg), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Plan ID: %s", result.PlanID), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(20, 7, "Time", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Phase", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 7, "Action", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 7, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Carbs so far", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Caffeine so far", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, e := range result.Events {
		pdf.CellFormat(20, 6, fmt.Sprintf("%d min", e.TimeMin), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, titleCaser.String(string(e.Phase)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, e.Action, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, e.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1fg", e.TotalCarbsSoFar), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1fmg", e.TotalCaffeineSoFar), "1", 1, "C", false, 0, "")
	}

	if len(result.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, "Warnings", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, w := range result.Warnings {
			pdf.MultiCell(0, 5, "- "+w, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
