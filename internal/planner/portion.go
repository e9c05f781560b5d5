package planner

import (
	"errors"
	"math"

	"NextShape_V0.1/internal/models"
)

var ErrInvalidPortion = errors.New("portion must be greater than zero")

// RescalePortion returns a copy of food with every nutritional value scaled to
// newPortion grams: round(value * newPortion / food.Portion). Optional values
// that are absent stay absent. Rescaling to the current portion is a no-op.
func RescalePortion(food models.ScannedFood, newPortion float64) (models.ScannedFood, error) {
	if newPortion <= 0 || food.Portion <= 0 {
		return models.ScannedFood{}, ErrInvalidPortion
	}
	if newPortion == food.Portion {
		return copyFood(food), nil
	}

	ratio := newPortion / food.Portion
	scaled := food
	scaled.Portion = newPortion
	scaled.Calories = scale(food.Calories, ratio)
	scaled.Protein = scale(food.Protein, ratio)
	scaled.Carbs = scale(food.Carbs, ratio)
	scaled.Fats = scale(food.Fats, ratio)
	scaled.Fiber = scaleOptional(food.Fiber, ratio)
	scaled.Sugar = scaleOptional(food.Sugar, ratio)
	scaled.Sodium = scaleOptional(food.Sodium, ratio)
	return scaled, nil
}

func scale(v, ratio float64) float64 {
	return math.Round(v * ratio)
}

func scaleOptional(v *float64, ratio float64) *float64 {
	if v == nil {
		return nil
	}
	s := scale(*v, ratio)
	return &s
}

// copyFood detaches the optional pointers so the result never aliases the input.
func copyFood(food models.ScannedFood) models.ScannedFood {
	out := food
	out.Fiber = clonePtr(food.Fiber)
	out.Sugar = clonePtr(food.Sugar)
	out.Sodium = clonePtr(food.Sodium)
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
