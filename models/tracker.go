package models

// Meal slots in the order meals happen; redistribution only ever moves
// calories to slots later in this list.
var MealOrder = []string{"breakfast", "lunch", "snacks", "dinner"}

// Canonical macro names, in stable output order.
var MacroKeys = []string{
	"total_fat",
	"sugar",
	"sodium",
	"protein",
	"saturated_fat",
	"carbohydrates",
	"cholesterol",
	"fiber",
}

// IsMealSlot reports whether s names one of the four tracked slots.
func IsMealSlot(s string) bool {
	for _, m := range MealOrder {
		if m == s {
			return true
		}
	}
	return false
}

// ZeroMacros returns a consumed-macro map with every canonical key at 0.
func ZeroMacros() map[string]float64 {
	m := make(map[string]float64, len(MacroKeys))
	for _, k := range MacroKeys {
		m[k] = 0
	}
	return m
}

// DietPreferences are the dietary filters captured at initialization and
// applied when recommending catalog items.
type DietPreferences struct {
	HeartCondition bool `json:"heart_condition"`
	Diabetic       bool `json:"db"`
	HighMagnesium  bool `json:"mg"`
	WeightLoss     bool `json:"wl"`
}

// MealNutrients is the nutrient record supplied when a meal is logged.
// Every field is optional; an absent field contributes zero.
type MealNutrients struct {
	Calories     *float64 `json:"Calories"`
	Fat          *float64 `json:"FatContent"`
	SaturatedFat *float64 `json:"SaturatedFatContent"`
	Cholesterol  *float64 `json:"CholesterolContent"`
	Sodium       *float64 `json:"SodiumContent"`
	Carbohydrate *float64 `json:"CarbohydrateContent"`
	Fiber        *float64 `json:"FiberContent"`
	Sugar        *float64 `json:"SugarContent"`
	Protein      *float64 `json:"ProteinContent"`
}

// DailyBudget is one session's nutrition budget for a single calendar day.
// It is owned by the tracker service; nothing else mutates it.
type DailyBudget struct {
	BudgetID string `json:"budget_id"`
	Date     string `json:"date"`

	TotalDailyCalories float64 `json:"total_daily_calories"`

	// OriginalCalorieSplit is the post-initialization plan and never changes
	// afterwards; CalorieSplit holds the live planned-or-actual values.
	OriginalCalorieSplit map[string]float64 `json:"original_calorie_split"`
	CalorieSplit         map[string]float64 `json:"calorie_split"`
	WaterSplit           map[string]float64 `json:"water_split"`

	RecommendedMacros map[string]float64 `json:"recommended_macros"`
	ConsumedMacros    map[string]float64 `json:"consumed_macros"`

	LoggedMeals      map[string]MealNutrients `json:"logged_meals"`
	ConsumedCalories float64                  `json:"consumed_calories"`

	RecommendedWater float64 `json:"recommended_water"`
	FoodBasedWater   float64 `json:"food_based_water"`

	Preferences DietPreferences `json:"preferences"`
}
