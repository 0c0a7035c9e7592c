package services

import (
	"math"

	"backend/models"
	"backend/utils"
)

type RecommendationService struct {
	foodSvc *FoodService
	tracker *TrackerService
}

func NewRecommendationService(fs *FoodService, ts *TrackerService) *RecommendationService {
	return &RecommendationService{foodSvc: fs, tracker: ts}
}

// MealRecommendation is one matched catalog item, sized to a slot's
// calorie target.
type MealRecommendation struct {
	Name               string             `json:"name"`
	EstimatedQuantityG float64            `json:"estimated_quantity_g"`
	EstimatedMacros    map[string]float64 `json:"estimated_macros"`
}

type RecommendationResult struct {
	Recommendations map[string]MealRecommendation `json:"recommendations"`
	RemainingMacros map[string]float64            `json:"remaining_macros"`
}

// Recommend picks one catalog item per unlogged slot, closest in per-100g
// calories to the slot's current budget, never repeating an item within
// the same call.
func (s *RecommendationService) Recommend(sessionID string) (*RecommendationResult, error) {
	basis, err := s.tracker.RecommendationBasis(sessionID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.foodSvc.ListCandidates(basis.Preferences)
	if err != nil {
		return nil, err
	}
	return &RecommendationResult{
		Recommendations: matchSlots(candidates, basis.UnloggedSlots, basis.Targets),
		RemainingMacros: roundedMacros(basis.RemainingMacros),
	}, nil
}

// matchSlots fills slots greedily in meal order. Earlier slots pick first,
// so the result is order-dependent rather than globally optimal; slots are
// filled sequentially as the day progresses, which is the point.
func matchSlots(candidates []models.FoodItem, slots []string, targets map[string]float64) map[string]MealRecommendation {
	out := make(map[string]MealRecommendation, len(slots))
	used := make(map[string]bool)

	for _, slot := range slots {
		target := targets[slot]

		var best *models.FoodItem
		var bestDiff float64
		for i := range candidates {
			f := &candidates[i]
			if used[f.Name] || f.CaloriesPer100g == nil || *f.CaloriesPer100g <= 0 {
				continue
			}
			diff := math.Abs(*f.CaloriesPer100g - target)
			if best == nil || diff < bestDiff ||
				(diff == bestDiff && val(f.ProteinPer100g) > val(best.ProteinPer100g)) {
				best = f
				bestDiff = diff
			}
		}
		if best == nil {
			continue
		}
		used[best.Name] = true

		quantity := utils.Round2(target / *best.CaloriesPer100g * 100)
		out[slot] = MealRecommendation{
			Name:               best.Name,
			EstimatedQuantityG: quantity,
			EstimatedMacros: map[string]float64{
				"calories":      scalePer100g(best.CaloriesPer100g, quantity),
				"total_fat":     scalePer100g(best.FatPer100g, quantity),
				"saturated_fat": scalePer100g(best.SaturatedFatPer100g, quantity),
				"cholesterol":   scalePer100g(best.CholesterolPer100g, quantity),
				"sodium":        scalePer100g(best.SodiumPer100g, quantity),
				"carbohydrates": scalePer100g(best.CarbohydratePer100g, quantity),
				"fiber":         scalePer100g(best.FiberPer100g, quantity),
				"sugar":         scalePer100g(best.SugarPer100g, quantity),
				"protein":       scalePer100g(best.ProteinPer100g, quantity),
			},
		}
	}
	return out
}

func scalePer100g(per100g *float64, quantity float64) float64 {
	if per100g == nil {
		return 0
	}
	return utils.Round2(*per100g * quantity / 100)
}
