package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// BiometricFeatures is the fixed feature vector the calorie model scores,
// in the order the model was trained on.
type BiometricFeatures struct {
	Age           float64
	Weight        float64
	Height        float64
	BMI           float64
	BMR           float64
	ActivityLevel float64
	GenderF       float64
	GenderM       float64
}

func (f BiometricFeatures) vector() [8]float64 {
	return [8]float64{f.Age, f.Weight, f.Height, f.BMI, f.BMR, f.ActivityLevel, f.GenderF, f.GenderM}
}

// CaloriePredictor produces a base daily calorie estimate from biometrics.
// Implementations must be deterministic for identical inputs.
type CaloriePredictor interface {
	Predict(f BiometricFeatures) (float64, error)
}

// LinearPredictor is a plain linear regression over the eight features.
// Coefficients ship in code and can be overridden with PREDICTOR_WEIGHTS
// (eight comma-separated values) and PREDICTOR_INTERCEPT.
type LinearPredictor struct {
	weights   [8]float64
	intercept float64
}

var defaultWeights = [8]float64{-2.47, 3.15, 1.08, -4.12, 1.05, 182.3, -118.6, 121.4}

const defaultIntercept = 146.9

func NewLinearPredictor() (*LinearPredictor, error) {
	p := &LinearPredictor{weights: defaultWeights, intercept: defaultIntercept}

	if raw := os.Getenv("PREDICTOR_WEIGHTS"); raw != "" {
		parts := strings.Split(raw, ",")
		if len(parts) != len(p.weights) {
			return nil, fmt.Errorf("PREDICTOR_WEIGHTS needs %d values, got %d", len(p.weights), len(parts))
		}
		for i, s := range parts {
			w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("PREDICTOR_WEIGHTS[%d]: %w", i, err)
			}
			p.weights[i] = w
		}
	}
	if raw := os.Getenv("PREDICTOR_INTERCEPT"); raw != "" {
		b, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("PREDICTOR_INTERCEPT: %w", err)
		}
		p.intercept = b
	}
	return p, nil
}

func (p *LinearPredictor) Predict(f BiometricFeatures) (float64, error) {
	v := f.vector()
	sum := p.intercept
	for i, w := range p.weights {
		sum += w * v[i]
	}
	return sum, nil
}
