// Command server runs the HTTP transport for the planning engine: an
// Echo instance exposing POST /v1/plans, behind bearer-token auth,
// per-caller rate limiting, and JSON request logging.
package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/config"
	appLogger "github.com/Alexey-Stp/race-day-nutrition-planner/internal/logger"
	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/planner"
	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/transport"
)

// plannerAdapter binds the free-standing planner.GeneratePlan function
// to the transport.PlannerService interface.
type plannerAdapter struct{}

func (plannerAdapter) GeneratePlan(race models.RaceProfile, athlete models.AthleteProfile, products []models.Product, caffeineEnabled bool) (models.PlanResult, error) {
	return planner.GeneratePlan(race, athlete, products, caffeineEnabled)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
	cfg := config.Load()
	appLog := appLogger.NewWithLevel(appLogger.LevelFromString(cfg.Logging.Level))

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(appLog.HTTPLogger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	rl := transport.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	handler := transport.NewHandler(plannerAdapter{})
	transport.RegisterRoutes(e, handler, transport.RequireJWT(), rl.Middleware())

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	appLog.Info("starting server", "addr", addr)
	if err := e.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
