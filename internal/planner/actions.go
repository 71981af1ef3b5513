package planner

import "github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"

// actionForTexture derives the NutritionEvent.Action label from a
// product's texture (spec.md §3: "action label derived from texture").
func actionForTexture(t models.Texture) string {
	switch t {
	case models.TextureGel:
		return "Take gel"
	case models.TextureLightGel:
		return "Take light gel"
	case models.TextureDrink:
		return "Drink"
	case models.TextureChew:
		return "Chew"
	case models.TextureBake:
		return "Eat bar"
	default:
		return "Take product"
	}
}
