package services

import "testing"

func TestLinearPredictorIsDeterministic(t *testing.T) {
	p, err := NewLinearPredictor()
	if err != nil {
		t.Fatalf("NewLinearPredictor: %v", err)
	}
	f := BiometricFeatures{Age: 30, Weight: 70, Height: 175, BMI: 22.9, BMR: 1650, ActivityLevel: 3, GenderM: 1}

	a, err := p.Predict(f)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	b, err := p.Predict(f)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if a != b {
		t.Fatalf("predictions differ for identical input: %v vs %v", a, b)
	}
}

func TestLinearPredictorEnvOverride(t *testing.T) {
	t.Setenv("PREDICTOR_WEIGHTS", "1,0,0,0,0,0,0,0")
	t.Setenv("PREDICTOR_INTERCEPT", "10")

	p, err := NewLinearPredictor()
	if err != nil {
		t.Fatalf("NewLinearPredictor: %v", err)
	}
	got, err := p.Predict(BiometricFeatures{Age: 5})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got != 15 {
		t.Fatalf("prediction = %v, want 15", got)
	}
}

func TestLinearPredictorRejectsBadWeights(t *testing.T) {
	t.Setenv("PREDICTOR_WEIGHTS", "1,2,3")
	if _, err := NewLinearPredictor(); err == nil {
		t.Fatal("expected error for wrong weight count")
	}

	t.Setenv("PREDICTOR_WEIGHTS", "a,b,c,d,e,f,g,h")
	if _, err := NewLinearPredictor(); err == nil {
		t.Fatal("expected error for non-numeric weights")
	}
}
