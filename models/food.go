package models

import "gorm.io/gorm"

// A catalog entry with per-100g nutrition figures. Per-100g columns are
// nullable: the source dataset has gaps, and a missing figure must stay
// visibly missing rather than collapse to zero.
type FoodItem struct {
	gorm.Model
	Name string `gorm:"index;not null" json:"Name"`

	CaloriesPer100g     *float64 `gorm:"column:calories_per_100g" json:"Calories_per_100g"`
	FatPer100g          *float64 `gorm:"column:fat_per_100g" json:"FatContent_per_100g"`
	SaturatedFatPer100g *float64 `gorm:"column:saturated_fat_per_100g" json:"SaturatedFatContent_per_100g"`
	CholesterolPer100g  *float64 `gorm:"column:cholesterol_per_100g" json:"CholesterolContent_per_100g"`
	SodiumPer100g       *float64 `gorm:"column:sodium_per_100g" json:"SodiumContent_per_100g"`
	CarbohydratePer100g *float64 `gorm:"column:carbohydrate_per_100g" json:"CarbohydrateContent_per_100g"`
	FiberPer100g        *float64 `gorm:"column:fiber_per_100g" json:"FiberContent_per_100g"`
	SugarPer100g        *float64 `gorm:"column:sugar_per_100g" json:"SugarContent_per_100g"`
	ProteinPer100g      *float64 `gorm:"column:protein_per_100g" json:"ProteinContent_per_100g"`

	// Dietary suitability flags, 1/0 in the source dataset.
	HeartCondition bool `gorm:"column:heart_condition" json:"heart_condition"`
	Diabetic       bool `gorm:"column:db" json:"db"`
	HighMagnesium  bool `gorm:"column:mg" json:"mg"`
	WeightLoss     bool `gorm:"column:wl" json:"wl"`
}
