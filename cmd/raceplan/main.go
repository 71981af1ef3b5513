// Command raceplan is a one-shot CLI that reads a race/athlete request
// and a product catalog from disk, runs the planning engine, and prints
// the resulting plan as JSON (optionally also rendering a pacing-card
// PDF).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/config"
	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/exportpdf"
	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/planner"
)

// requestFile is the on-disk shape of the request JSON passed via -request.
type requestFile struct {
	Race            models.RaceProfile    `json:"race"`
	Athlete         models.AthleteProfile `json:"athlete"`
	CaffeineEnabled bool                  `json:"caffeine_enabled"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
	cfg := config.Load()

	var (
		catalogPath = flag.String("catalog", cfg.Planner.CatalogPath, "Path to the product catalog JSON file")
		requestPath = flag.String("request", cfg.Planner.RequestPath, "Path to the race/athlete request JSON file")
		pdfPath     = flag.String("pdf", "", "Optional path to also render a pacing-card PDF")
	)
	flag.Parse()

	catalogBytes, err := os.ReadFile(*catalogPath)
	if err != nil {
		log.Printf("failed to read catalog file: %v", err)
		os.Exit(1)
	}
	var products []models.Product
	if err := json.Unmarshal(catalogBytes, &products); err != nil {
		log.Printf("failed to parse catalog JSON: %v", err)
		os.Exit(1)
	}

	requestBytes, err := os.ReadFile(*requestPath)
	if err != nil {
		log.Printf("failed to read request file: %v", err)
		os.Exit(1)
	}
	var req requestFile
	if err := json.Unmarshal(requestBytes, &req); err != nil {
		log.Printf("failed to parse request JSON: %v", err)
		os.Exit(1)
	}

	result, err := planner.GeneratePlan(req.Race, req.Athlete, products, req.CaffeineEnabled)
	if err != nil {
		log.Printf("failed to generate plan: %v", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Printf("failed to marshal plan: %v", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	for _, tip := range planner.GeneralGuidance(req.Race.Temperature, req.Race.Intensity) {
		fmt.Fprintln(os.Stderr, "tip:", tip)
	}

	if *pdfPath != "" {
		targets := planner.ComputeTargets(req.Race, req.Athlete, req.CaffeineEnabled)
		pdfBytes, err := exportpdf.RenderPacingCard(req.Race, targets, result)
		if err != nil {
			log.Printf("failed to render pacing card: %v", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*pdfPath, pdfBytes, 0o644); err != nil {
			log.Printf("failed to write pacing card: %v", err)
			os.Exit(1)
		}
		fmt.Println("pacing card written to", *pdfPath)
	}
}
