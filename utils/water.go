package utils

// Water need in milliliters contributed per unit of each input:
// 1 ml per kcal, 15 ml per gram of fiber, 0.5 per sodium, 0.3 per protein.

// EstimateInitialWater returns the recommended daily water volume in liters
// for a fresh budget, before anything has been consumed.
func EstimateInitialWater(calories, fiber, sodium, protein float64) float64 {
	ml := calories*1 + fiber*15 + sodium*0.5 + protein*0.3
	return Round2(ml / 1000)
}

// EstimateWaterFromConsumed returns the water volume in liters implied by
// what has actually been eaten so far. The calorie term is deliberately
// omitted here: base hydration is only counted once, at initialization.
func EstimateWaterFromConsumed(fiber, sodium, protein float64) float64 {
	ml := fiber*15 + sodium*0.5 + protein*0.3
	return Round2(ml / 1000)
}
