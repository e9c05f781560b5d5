/*
Package metabolic computes the deterministic energy targets that feed the
meal plan prompt: BMR (Mifflin-St Jeor), TDEE and the goal-adjusted calorie target.
Inputs are not range checked here; see models.Profile.Validate.
*/
package metabolic

import (
	"fmt"
	"math"

	"NextShape_V0.1/internal/models"
)

// defaultActivityFactor is used for any days-per-week value outside the table.
const defaultActivityFactor = 1.55

// activityFactors maps training days per week to the TDEE multiplier.
var activityFactors = map[int]float64{
	2: 1.375, // lightly active
	3: 1.465, // moderately active
	4: 1.55,  // very active
	5: 1.635, // extremely active
	6: 1.725, // athlete
}

const (
	weightLossDeficit = 500
	muscleGainSurplus = 300
)

// MacroSplit is a percentage distribution of daily calories.
type MacroSplit struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

func (m MacroSplit) String() string {
	return fmt.Sprintf("Protein: %d%% | Carbs: %d%% | Fats: %d%%", m.Protein, m.Carbs, m.Fats)
}

// Targets bundles every value derived from a profile.
type Targets struct {
	BMR            float64    `json:"bmr"`
	TDEE           int        `json:"tdee"`
	TargetCalories int        `json:"targetCalories"`
	MacroSplit     MacroSplit `json:"macroSplit"`
}

// BMR returns the basal metabolic rate, unrounded.
func BMR(p models.Profile) float64 {
	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Sex == models.SexMale {
		return base + 5
	}
	return base - 161
}

func ActivityFactor(daysPerWeek int) float64 {
	if f, ok := activityFactors[daysPerWeek]; ok {
		return f
	}
	return defaultActivityFactor
}

// TDEE returns BMR scaled by the activity factor, rounded to the nearest integer.
func TDEE(bmr float64, daysPerWeek int) int {
	return int(math.Round(bmr * ActivityFactor(daysPerWeek)))
}

// TargetCalories adjusts TDEE for the goal. Unknown goals are treated as maintenance.
func TargetCalories(tdee int, goal models.Goal) int {
	switch goal {
	case models.GoalWeightLoss:
		return tdee - weightLossDeficit
	case models.GoalMuscleGain:
		return tdee + muscleGainSurplus
	default:
		return tdee
	}
}

func MacroDistribution(goal models.Goal) MacroSplit {
	switch goal {
	case models.GoalWeightLoss:
		return MacroSplit{Protein: 35, Carbs: 35, Fats: 30}
	case models.GoalMuscleGain:
		return MacroSplit{Protein: 30, Carbs: 45, Fats: 25}
	default:
		return MacroSplit{Protein: 30, Carbs: 40, Fats: 30}
	}
}

// Calculate runs the whole chain for a profile.
func Calculate(p models.Profile) Targets {
	bmr := BMR(p)
	tdee := TDEE(bmr, p.DaysPerWeek)
	return Targets{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: TargetCalories(tdee, p.Goal),
		MacroSplit:     MacroDistribution(p.Goal),
	}
}
