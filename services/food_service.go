package services

import (
	"strings"

	"backend/config"
	"backend/models"
)

type FoodService struct{}

func NewFoodService() *FoodService {
	return &FoodService{}
}

// SearchByPrefix returns up to 10 catalog rows whose name starts with the
// query, case-insensitively.
func (s *FoodService) SearchByPrefix(query string) ([]models.FoodItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	var foods []models.FoodItem
	err := config.DB.
		Where("LOWER(name) LIKE ?", strings.ToLower(query)+"%").
		Limit(10).
		Find(&foods).Error
	if err != nil {
		return nil, &UpstreamError{Op: "food catalog", Err: err}
	}
	return foods, nil
}

// ListCandidates scans the catalog rows that satisfy every active dietary
// flag. Inactive flags don't constrain the result.
func (s *FoodService) ListCandidates(prefs models.DietPreferences) ([]models.FoodItem, error) {
	q := config.DB
	if prefs.HeartCondition {
		q = q.Where("heart_condition = ?", true)
	}
	if prefs.Diabetic {
		q = q.Where("db = ?", true)
	}
	if prefs.HighMagnesium {
		q = q.Where("mg = ?", true)
	}
	if prefs.WeightLoss {
		q = q.Where("wl = ?", true)
	}

	var foods []models.FoodItem
	if err := q.Find(&foods).Error; err != nil {
		return nil, &UpstreamError{Op: "food catalog", Err: err}
	}
	return foods, nil
}
