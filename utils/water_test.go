package utils

import "testing"

func TestEstimateInitialWater(t *testing.T) {
	if got := EstimateInitialWater(2000, 0, 0, 0); got != 2.0 {
		t.Fatalf("initial water for 2000 kcal = %v, want 2.0", got)
	}
	// 2000 + 25*15 + 100*0.5 + 75*0.3 = 2447.5 ml
	if got := EstimateInitialWater(2000, 25, 100, 75); got != 2.45 {
		t.Fatalf("initial water with macros = %v, want 2.45", got)
	}
}

func TestEstimateWaterFromConsumedOmitsCalorieTerm(t *testing.T) {
	// Same macros as above, but no base hydration: 447.5 ml.
	if got := EstimateWaterFromConsumed(25, 100, 75); got != 0.45 {
		t.Fatalf("consumed water = %v, want 0.45", got)
	}
	if got := EstimateWaterFromConsumed(0, 0, 0); got != 0 {
		t.Fatalf("consumed water with nothing eaten = %v, want 0", got)
	}
}
