// services/seed_service.go
package services

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"backend/config"
	"backend/models"
)

// SeedFoodCatalog imports the food dataset CSV at path into the catalog
// table if the table is empty. Blank and NaN cells stay unset; dietary
// flag columns are 1/0.
func SeedFoodCatalog(path string) error {
	var count int64
	if err := config.DB.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count food catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open food dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read dataset header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["Name"]; !ok {
		return fmt.Errorf("dataset is missing a Name column")
	}

	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("read dataset rows: %w", err)
	}

	items := make([]models.FoodItem, 0, len(records))
	for _, rec := range records {
		cell := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		items = append(items, models.FoodItem{
			Name:                cell("Name"),
			CaloriesPer100g:     parseOptionalFloat(cell("Calories_per_100g")),
			FatPer100g:          parseOptionalFloat(cell("FatContent_per_100g")),
			SaturatedFatPer100g: parseOptionalFloat(cell("SaturatedFatContent_per_100g")),
			CholesterolPer100g:  parseOptionalFloat(cell("CholesterolContent_per_100g")),
			SodiumPer100g:       parseOptionalFloat(cell("SodiumContent_per_100g")),
			CarbohydratePer100g: parseOptionalFloat(cell("CarbohydrateContent_per_100g")),
			FiberPer100g:        parseOptionalFloat(cell("FiberContent_per_100g")),
			SugarPer100g:        parseOptionalFloat(cell("SugarContent_per_100g")),
			ProteinPer100g:      parseOptionalFloat(cell("ProteinContent_per_100g")),
			HeartCondition:      parseFlag(cell("heart_condition")),
			Diabetic:            parseFlag(cell("db")),
			HighMagnesium:       parseFlag(cell("mg")),
			WeightLoss:          parseFlag(cell("wl")),
		})
	}

	if len(items) == 0 {
		return nil
	}
	return config.DB.CreateInBatches(items, 500).Error
}

func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "1", "1.0", "true", "t", "yes":
		return true
	}
	return false
}
