package utils

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeMacrosAt2000(t *testing.T) {
	m := ComputeMacros(2000)

	if !almostEqual(m["total_fat"], 66.6667, 0.001) {
		t.Fatalf("total_fat = %.4f, want 66.6667", m["total_fat"])
	}
	if m["protein"] != 75.0 {
		t.Fatalf("protein = %.4f, want 75.0", m["protein"])
	}
	if m["cholesterol"] != 100.0 {
		t.Fatalf("cholesterol = %.4f, want 100.0", m["cholesterol"])
	}
	if m["fiber"] != 50.0 {
		t.Fatalf("fiber = %.4f, want 50.0", m["fiber"])
	}
}

func TestComputeMacrosReconstructsCalorieShares(t *testing.T) {
	// Multiplying each gram figure back by its kcal-per-gram divisor must
	// reproduce the macro's share of the calorie total.
	cases := []struct {
		name    string
		share   float64
		perGram float64
	}{
		{"total_fat", 0.30, 9},
		{"sugar", 0.10, 4},
		{"sodium", 0.05, 4},
		{"protein", 0.15, 4},
		{"saturated_fat", 0.10, 9},
		{"carbohydrates", 0.30, 4},
		{"cholesterol", 0.05, 1},
		{"fiber", 0.05, 2},
	}
	for _, calories := range []float64{0, 150.5, 1853.77, 2000, 3200} {
		m := ComputeMacros(calories)
		for _, c := range cases {
			got := m[c.name] * c.perGram
			want := calories * c.share
			if !almostEqual(got, want, 1e-9) {
				t.Fatalf("calories=%.2f %s: grams*perGram = %.6f, want %.6f", calories, c.name, got, want)
			}
		}
	}
}

func TestAdjustCaloriesForGoal(t *testing.T) {
	// Losing 1 kg in one week costs 1100 kcal/day.
	if got := AdjustCaloriesForGoal(2000, -1, 1); got != 900 {
		t.Fatalf("loss adjustment = %.2f, want 900", got)
	}
	// Gaining 0.5 kg over two weeks adds 275 kcal/day.
	if got := AdjustCaloriesForGoal(2000, 0.5, 2); got != 2275 {
		t.Fatalf("gain adjustment = %.2f, want 2275", got)
	}
	if got := AdjustCaloriesForGoal(1800, 0, 4); got != 1800 {
		t.Fatalf("no goal adjustment = %.2f, want 1800", got)
	}
}

func TestRounding(t *testing.T) {
	if got := Round2(746.6666667); got != 746.67 {
		t.Fatalf("Round2 = %v, want 746.67", got)
	}
	if got := Round1(33.349); got != 33.3 {
		t.Fatalf("Round1 = %v, want 33.3", got)
	}
}
