// Command metadata-server is a small read-only Gin service that echoes
// the request enum vocabularies, so client applications can build
// request forms without hardcoding them. The planner's numeric constants
// (cadences, shares, caffeine windows, spacing minimums) are not served.
package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/config"
	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		gin.DefaultWriter.Write([]byte("no .env file found, using system environment variables\n"))
	}
	cfg := config.Load()

	router := gin.Default()

	v1 := router.Group("/api/v1")
	meta := v1.Group("/metadata")
	{
		meta.GET("/enums", getEnums)
		meta.GET("/health", getHealth)
	}

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	if err := router.Run(addr); err != nil {
		os.Exit(1)
	}
}

// getEnums echoes every string enum this API's request bodies accept.
func getEnums(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"sport_types":  []models.SportType{models.SportRun, models.SportBike, models.SportTriathlon},
			"temperatures": []models.Temperature{models.TemperatureCold, models.TemperatureModerate, models.TemperatureHot},
			"intensities":  []models.Intensity{models.IntensityEasy, models.IntensityModerate, models.IntensityHard},
			"phases":       []models.Phase{models.PhaseSwim, models.PhaseBike, models.PhaseRun},
			"product_types": []models.ProductType{
				models.ProductGel, models.ProductDrink, models.ProductBar, models.ProductChew, models.ProductRecovery,
			},
			"textures": []models.Texture{
				models.TextureGel, models.TextureLightGel, models.TextureDrink, models.TextureChew, models.TextureBake,
			},
		},
	})
}

func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
