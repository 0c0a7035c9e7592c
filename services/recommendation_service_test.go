package services

import (
	"testing"

	"backend/models"
)

func catalogItem(name string, calories, protein float64) models.FoodItem {
	return models.FoodItem{
		Name:            name,
		CaloriesPer100g: fp(calories),
		ProteinPer100g:  fp(protein),
	}
}

func TestMatchSlotsPicksClosestCalories(t *testing.T) {
	candidates := []models.FoodItem{
		catalogItem("far", 300, 40),
		catalogItem("close", 480, 10),
	}
	out := matchSlots(candidates, []string{"lunch"}, map[string]float64{"lunch": 500})

	rec, ok := out["lunch"]
	if !ok {
		t.Fatal("no recommendation for lunch")
	}
	if rec.Name != "close" {
		t.Fatalf("picked %q, want close", rec.Name)
	}
}

func TestMatchSlotsTieBreaksOnProtein(t *testing.T) {
	// Both rows sit 2 kcal from the target; the higher-protein one wins.
	candidates := []models.FoodItem{
		catalogItem("leaner", 498, 20),
		catalogItem("protein-rich", 502, 25),
	}
	out := matchSlots(candidates, []string{"dinner"}, map[string]float64{"dinner": 500})

	if got := out["dinner"].Name; got != "protein-rich" {
		t.Fatalf("picked %q, want protein-rich", got)
	}
}

func TestMatchSlotsNeverRepeatsAnItem(t *testing.T) {
	candidates := []models.FoodItem{
		catalogItem("oats", 390, 13),
		catalogItem("rice", 360, 7),
	}
	targets := map[string]float64{"lunch": 380, "dinner": 380}
	out := matchSlots(candidates, []string{"lunch", "dinner"}, targets)

	if out["lunch"].Name != "oats" {
		t.Fatalf("lunch = %q, want oats", out["lunch"].Name)
	}
	if out["dinner"].Name != "rice" {
		t.Fatalf("dinner = %q, want rice (oats already used)", out["dinner"].Name)
	}
}

func TestMatchSlotsQuantityScaling(t *testing.T) {
	item := catalogItem("chicken", 250, 27)
	item.FatPer100g = fp(8)
	item.SodiumPer100g = fp(0.4)

	out := matchSlots([]models.FoodItem{item}, []string{"snacks"}, map[string]float64{"snacks": 500})

	rec := out["snacks"]
	if rec.EstimatedQuantityG != 200 {
		t.Fatalf("quantity = %.2f g, want 200", rec.EstimatedQuantityG)
	}
	if rec.EstimatedMacros["calories"] != 500 {
		t.Fatalf("estimated calories = %.2f, want 500", rec.EstimatedMacros["calories"])
	}
	if rec.EstimatedMacros["protein"] != 54 {
		t.Fatalf("estimated protein = %.2f, want 54", rec.EstimatedMacros["protein"])
	}
	if rec.EstimatedMacros["total_fat"] != 16 {
		t.Fatalf("estimated fat = %.2f, want 16", rec.EstimatedMacros["total_fat"])
	}
	if rec.EstimatedMacros["sodium"] != 0.8 {
		t.Fatalf("estimated sodium = %.2f, want 0.8", rec.EstimatedMacros["sodium"])
	}
	// Missing per-100g figures scale to zero rather than poisoning output.
	if rec.EstimatedMacros["fiber"] != 0 {
		t.Fatalf("estimated fiber = %.2f, want 0", rec.EstimatedMacros["fiber"])
	}
}

func TestMatchSlotsSkipsUnusableRows(t *testing.T) {
	noCalories := models.FoodItem{Name: "mystery", ProteinPer100g: fp(50)}
	zeroCalories := catalogItem("water", 0, 0)

	out := matchSlots([]models.FoodItem{noCalories, zeroCalories}, []string{"lunch"}, map[string]float64{"lunch": 500})
	if _, ok := out["lunch"]; ok {
		t.Fatalf("got a recommendation from unusable rows: %+v", out["lunch"])
	}
}

func TestMatchSlotsGreedyOrderDependence(t *testing.T) {
	// One good item, two slots: the earlier slot claims it and the later
	// slot settles for the leftover.
	candidates := []models.FoodItem{
		catalogItem("best", 500, 30),
		catalogItem("second", 450, 10),
	}
	targets := map[string]float64{"breakfast": 500, "dinner": 500}
	out := matchSlots(candidates, []string{"breakfast", "dinner"}, targets)

	if out["breakfast"].Name != "best" {
		t.Fatalf("breakfast = %q, want best", out["breakfast"].Name)
	}
	if out["dinner"].Name != "second" {
		t.Fatalf("dinner = %q, want second", out["dinner"].Name)
	}
}
