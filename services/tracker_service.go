// services/tracker_service.go
package services

import (
	"log"
	"math"
	"sync"
	"time"

	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
)

const defaultSession = "default"

// Planned share of the daily budget per slot. Water uses the same shares.
var mealShares = map[string]float64{
	"breakfast": 0.25,
	"lunch":     0.35,
	"snacks":    0.15,
	"dinner":    0.25,
}

// TrackerService owns every session's DailyBudget. All access goes through
// the mutex: budgets are shared mutable state and operations must run one
// at a time.
type TrackerService struct {
	mu        sync.Mutex
	predictor CaloriePredictor
	sessions  map[string]*models.DailyBudget
	now       func() time.Time
}

func NewTrackerService(p CaloriePredictor) *TrackerService {
	return &TrackerService{
		predictor: p,
		sessions:  make(map[string]*models.DailyBudget),
		now:       time.Now,
	}
}

// Tracker is the process-wide instance, set up once from main.
var Tracker *TrackerService

func InitTracker() {
	p, err := NewLinearPredictor()
	if err != nil {
		log.Fatalf("Failed to configure calorie predictor: %v", err)
	}
	Tracker = NewTrackerService(p)
}

type BiometricInput struct {
	Age           *float64 `json:"age"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	BMI           *float64 `json:"BMI"`
	BMR           *float64 `json:"BMR"`
	ActivityLevel *float64 `json:"activity_level"`
	GenderF       *float64 `json:"gender_F"`
	GenderM       *float64 `json:"gender_M"`
}

type PredictInput struct {
	Attributes     BiometricInput `json:"attributes"`
	WeightGoalKg   float64        `json:"weight_goal_kg"`
	Weeks          *float64       `json:"weeks"`
	HeartCondition bool           `json:"heart_condition"`
	Diabetic       bool           `json:"db"`
	HighMagnesium  bool           `json:"mg"`
	WeightLoss     bool           `json:"wl"`
}

type PredictResult struct {
	SessionID              string             `json:"session_id"`
	BudgetID               string             `json:"budget_id"`
	BaseCalories           float64            `json:"base_calories"`
	AdjustedCalories       float64            `json:"adjusted_calories"`
	Macronutrients         map[string]float64 `json:"macronutrients"`
	RecommendedWaterLiters float64            `json:"recommended_water_liters"`
	CalorieSplit           map[string]float64 `json:"calorie_split"`
	WaterSplitLiters       map[string]float64 `json:"water_split_liters"`
}

type LogMealResult struct {
	Message                 string             `json:"message"`
	UpdatedCalorieSplit     map[string]float64 `json:"updated_calorie_split"`
	WaterFromConsumedMacros float64            `json:"water_based_on_consumed_macros"`
	FoodBasedWater          float64            `json:"food_based_water"`
	RemainingWater          float64            `json:"remaining_water"`
	RemainingCalories       float64            `json:"remaining_calories"`
	ConsumedCalories        float64            `json:"consumed_calories"`
	TotalDailyCalories      float64            `json:"total_daily_calories"`
	ConsumedMacros          map[string]float64 `json:"consumed_macros"`
	RecommendedMacros       map[string]float64 `json:"recommended_macros"`
	MacroPercentages        map[string]float64 `json:"macro_percentages"`
}

// RecommendationBasis is the slice of tracker state the matcher needs.
type RecommendationBasis struct {
	UnloggedSlots   []string
	Targets         map[string]float64
	Preferences     models.DietPreferences
	RemainingMacros map[string]float64
}

func resolveSession(id string) string {
	if id == "" {
		return defaultSession
	}
	return id
}

func (s *TrackerService) today() string {
	return s.now().Format("2006-01-02")
}

// Initialize builds (or replaces) the session's budget for today from a
// fresh calorie prediction. The only error path is input validation.
func (s *TrackerService) Initialize(sessionID string, in PredictInput) (*PredictResult, error) {
	features, err := validateBiometrics(in.Attributes)
	if err != nil {
		return nil, err
	}
	weeks := 1.0
	if in.Weeks != nil {
		weeks = *in.Weeks
	}
	if weeks <= 0 {
		return nil, &ValidationError{Field: "weeks"}
	}

	base, err := s.predictor.Predict(features)
	if err != nil {
		return nil, &UpstreamError{Op: "calorie predictor", Err: err}
	}

	adjusted := utils.AdjustCaloriesForGoal(base, in.WeightGoalKg, weeks)
	macros := utils.ComputeMacros(adjusted)
	water := utils.EstimateInitialWater(adjusted, 0, 0, 0)

	calorieSplit := make(map[string]float64, len(models.MealOrder))
	waterSplit := make(map[string]float64, len(models.MealOrder))
	for _, slot := range models.MealOrder {
		calorieSplit[slot] = utils.Round2(adjusted * mealShares[slot])
		waterSplit[slot] = utils.Round2(water * mealShares[slot])
	}
	// Rounding can leave the split off the target; dinner absorbs the
	// residual so the four slots sum to the adjusted total exactly.
	if total := sumSplit(calorieSplit); total != adjusted {
		calorieSplit["dinner"] += utils.Round2(adjusted - total)
	}

	budget := &models.DailyBudget{
		BudgetID:             uuid.NewString(),
		Date:                 s.today(),
		TotalDailyCalories:   adjusted,
		OriginalCalorieSplit: copySplit(calorieSplit),
		CalorieSplit:         calorieSplit,
		WaterSplit:           waterSplit,
		RecommendedMacros:    macros,
		ConsumedMacros:       models.ZeroMacros(),
		LoggedMeals:          make(map[string]models.MealNutrients),
		RecommendedWater:     water,
		Preferences: models.DietPreferences{
			HeartCondition: in.HeartCondition,
			Diabetic:       in.Diabetic,
			HighMagnesium:  in.HighMagnesium,
			WeightLoss:     in.WeightLoss,
		},
	}

	key := resolveSession(sessionID)
	s.mu.Lock()
	s.sessions[key] = budget
	s.mu.Unlock()

	return &PredictResult{
		SessionID:              key,
		BudgetID:               budget.BudgetID,
		BaseCalories:           utils.Round2(base),
		AdjustedCalories:       utils.Round2(adjusted),
		Macronutrients:         macros,
		RecommendedWaterLiters: water,
		CalorieSplit:           copySplit(calorieSplit),
		WaterSplitLiters:       copySplit(waterSplit),
	}, nil
}

// LogMeal records actual consumption for a slot and reshapes the rest of
// the day's budget around it. Failed attempts leave the budget untouched.
func (s *TrackerService) LogMeal(sessionID, slot string, nutrients models.MealNutrients) (*LogMealResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.sessions[resolveSession(sessionID)]
	if !ok {
		return nil, ErrNotInitialized
	}
	s.checkAndReset(b)

	if !models.IsMealSlot(slot) {
		return nil, &ValidationError{Field: "meal_type"}
	}
	if _, logged := b.LoggedMeals[slot]; logged {
		return nil, &DuplicateLogError{Slot: slot}
	}

	consumed := val(nutrients.Calories)
	expected := b.CalorieSplit[slot]
	// Positive delta: the slot came in under plan and later meals get the
	// surplus. Negative: overconsumption clawed back from later meals.
	delta := expected - consumed

	b.LoggedMeals[slot] = nutrients
	b.ConsumedCalories += consumed
	accumulateMacros(b.ConsumedMacros, nutrients)
	b.CalorieSplit[slot] = consumed

	s.redistribute(b, slot, delta)

	b.FoodBasedWater = utils.EstimateWaterFromConsumed(
		b.ConsumedMacros["fiber"],
		b.ConsumedMacros["sodium"],
		b.ConsumedMacros["protein"],
	)

	// Drift correction: clamping and rounding can pull the split away from
	// the daily total, so the last unlogged slot soaks up the difference.
	unlogged := unloggedSlots(b)
	if total := sumSplit(b.CalorieSplit); len(unlogged) > 0 && math.Abs(total-b.TotalDailyCalories) > 0.01 {
		last := unlogged[len(unlogged)-1]
		b.CalorieSplit[last] += utils.Round2(b.TotalDailyCalories - total)
	}

	remaining := b.TotalDailyCalories - b.ConsumedCalories

	percentages := make(map[string]float64, len(models.MacroKeys))
	for _, k := range models.MacroKeys {
		recommended := b.RecommendedMacros[k]
		if recommended > 0 {
			percentages[k] = utils.Round1(b.ConsumedMacros[k] / recommended * 100)
		} else {
			percentages[k] = 0
		}
	}

	return &LogMealResult{
		Message:                 capitalize(slot) + " logged successfully.",
		UpdatedCalorieSplit:     copySplit(b.CalorieSplit),
		WaterFromConsumedMacros: b.FoodBasedWater,
		FoodBasedWater:          utils.Round2(b.FoodBasedWater),
		RemainingWater:          utils.Round2(b.RecommendedWater + b.FoodBasedWater),
		RemainingCalories:       utils.Round2(remaining),
		ConsumedCalories:        utils.Round2(b.ConsumedCalories),
		TotalDailyCalories:      utils.Round2(b.TotalDailyCalories),
		ConsumedMacros:          roundedMacros(b.ConsumedMacros),
		RecommendedMacros:       roundedMacros(b.RecommendedMacros),
		MacroPercentages:        percentages,
	}, nil
}

// Snapshot returns a copy of the session's current budget, after the
// day-rollover check.
func (s *TrackerService) Snapshot(sessionID string) (*models.DailyBudget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.sessions[resolveSession(sessionID)]
	if !ok {
		return nil, ErrNotInitialized
	}
	s.checkAndReset(b)

	out := *b
	out.OriginalCalorieSplit = copySplit(b.OriginalCalorieSplit)
	out.CalorieSplit = copySplit(b.CalorieSplit)
	out.WaterSplit = copySplit(b.WaterSplit)
	out.RecommendedMacros = copySplit(b.RecommendedMacros)
	out.ConsumedMacros = copySplit(b.ConsumedMacros)
	out.LoggedMeals = make(map[string]models.MealNutrients, len(b.LoggedMeals))
	for k, v := range b.LoggedMeals {
		out.LoggedMeals[k] = v
	}
	return &out, nil
}

// RecommendationBasis extracts the unlogged slots, their current calorie
// targets, the session's dietary flags, and the unmet macro budget.
func (s *TrackerService) RecommendationBasis(sessionID string) (*RecommendationBasis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.sessions[resolveSession(sessionID)]
	if !ok {
		return nil, ErrNotInitialized
	}
	s.checkAndReset(b)

	unlogged := unloggedSlots(b)
	if len(unlogged) == 0 {
		return nil, ErrAllMealsLogged
	}

	targets := make(map[string]float64, len(unlogged))
	for _, slot := range unlogged {
		targets[slot] = b.CalorieSplit[slot]
	}
	remaining := make(map[string]float64, len(models.MacroKeys))
	for _, k := range models.MacroKeys {
		remaining[k] = math.Max(b.RecommendedMacros[k]-b.ConsumedMacros[k], 0)
	}
	return &RecommendationBasis{
		UnloggedSlots:   unlogged,
		Targets:         targets,
		Preferences:     b.Preferences,
		RemainingMacros: remaining,
	}, nil
}

// checkAndReset clears consumption state when the calendar day has moved
// on since the budget was last touched. Caller holds the lock.
func (s *TrackerService) checkAndReset(b *models.DailyBudget) {
	today := s.today()
	if b.Date == today {
		return
	}
	b.Date = today
	b.LoggedMeals = make(map[string]models.MealNutrients)
	b.ConsumedCalories = 0
	b.FoodBasedWater = 0
	b.CalorieSplit = copySplit(b.OriginalCalorieSplit)
	b.ConsumedMacros = models.ZeroMacros()
}

// redistribute spreads delta over the still-unlogged slots after the given
// one, weighted by their share of the original plan among themselves. With
// no such slot the delta is absorbed silently. A slot cannot go negative;
// the clamped remainder is not redistributed further.
func (s *TrackerService) redistribute(b *models.DailyBudget, slot string, delta float64) {
	idx := 0
	for i, m := range models.MealOrder {
		if m == slot {
			idx = i
			break
		}
	}

	var future []string
	for _, m := range models.MealOrder[idx+1:] {
		if _, logged := b.LoggedMeals[m]; !logged {
			future = append(future, m)
		}
	}
	if len(future) == 0 {
		return
	}

	var originalFutureTotal float64
	for _, m := range future {
		originalFutureTotal += b.OriginalCalorieSplit[m]
	}
	if originalFutureTotal <= 0 {
		return
	}
	for _, m := range future {
		proportion := b.OriginalCalorieSplit[m] / originalFutureTotal
		next := b.CalorieSplit[m] + delta*proportion
		b.CalorieSplit[m] = utils.Round2(math.Max(0, next))
	}
}

func validateBiometrics(in BiometricInput) (BiometricFeatures, error) {
	fields := []struct {
		name string
		ptr  *float64
	}{
		{"age", in.Age},
		{"weight", in.Weight},
		{"height", in.Height},
		{"BMI", in.BMI},
		{"BMR", in.BMR},
		{"activity_level", in.ActivityLevel},
		{"gender_F", in.GenderF},
		{"gender_M", in.GenderM},
	}
	for _, f := range fields {
		if f.ptr == nil || math.IsNaN(*f.ptr) || math.IsInf(*f.ptr, 0) {
			return BiometricFeatures{}, &ValidationError{Field: f.name}
		}
	}
	return BiometricFeatures{
		Age:           *in.Age,
		Weight:        *in.Weight,
		Height:        *in.Height,
		BMI:           *in.BMI,
		BMR:           *in.BMR,
		ActivityLevel: *in.ActivityLevel,
		GenderF:       *in.GenderF,
		GenderM:       *in.GenderM,
	}, nil
}

// accumulateMacros folds a logged meal's nutrients into the cumulative
// consumed-macro totals. Absent fields contribute nothing.
func accumulateMacros(consumed map[string]float64, n models.MealNutrients) {
	consumed["total_fat"] += val(n.Fat)
	consumed["saturated_fat"] += val(n.SaturatedFat)
	consumed["cholesterol"] += val(n.Cholesterol)
	consumed["sodium"] += val(n.Sodium)
	consumed["carbohydrates"] += val(n.Carbohydrate)
	consumed["fiber"] += val(n.Fiber)
	consumed["sugar"] += val(n.Sugar)
	consumed["protein"] += val(n.Protein)
}

func unloggedSlots(b *models.DailyBudget) []string {
	var out []string
	for _, m := range models.MealOrder {
		if _, logged := b.LoggedMeals[m]; !logged {
			out = append(out, m)
		}
	}
	return out
}

func sumSplit(split map[string]float64) float64 {
	var total float64
	for _, v := range split {
		total += v
	}
	return total
}

func copySplit(split map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(split))
	for k, v := range split {
		out[k] = v
	}
	return out
}

func roundedMacros(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = utils.Round2(v)
	}
	return out
}

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
