package models

import "time"

// Macros are grams of protein, carbohydrate and fat.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

type MealPlan struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	CreatedAt     time.Time  `json:"createdAt"`
	DailyCalories int        `json:"dailyCalories"`
	Macros        Macros     `json:"macros"`
	Meals         DailyMeals `json:"meals"`
	Substitutions []string   `json:"substitutions"`
}

// DailyMeals is the fixed five-meal day. Pointers let a missing key be told
// apart from an empty meal.
type DailyMeals struct {
	Breakfast      *Meal `json:"breakfast"`
	MorningSnack   *Meal `json:"morningSnack"`
	Lunch          *Meal `json:"lunch"`
	AfternoonSnack *Meal `json:"afternoonSnack"`
	Dinner         *Meal `json:"dinner"`
}

// Missing returns the JSON keys of the meals that were not provided.
func (m DailyMeals) Missing() []string {
	var missing []string
	for _, slot := range []struct {
		key  string
		meal *Meal
	}{
		{"breakfast", m.Breakfast},
		{"morningSnack", m.MorningSnack},
		{"lunch", m.Lunch},
		{"afternoonSnack", m.AfternoonSnack},
		{"dinner", m.Dinner},
	} {
		if slot.meal == nil {
			missing = append(missing, slot.key)
		}
	}
	return missing
}

type Meal struct {
	Name          string     `json:"name"`
	Foods         []FoodItem `json:"foods"`
	TotalCalories Count      `json:"totalCalories"`
	Macros        Macros     `json:"macros"`
}

// FoodItem quantity is free text ("1 cup", "2 slices") and is never parsed.
type FoodItem struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// MealPayload is the shape the generator is asked to return.
type MealPayload struct {
	DailyCalories Count      `json:"dailyCalories"`
	Macros        Macros     `json:"macros"`
	Meals         DailyMeals `json:"meals"`
	Substitutions []string   `json:"substitutions"`
}
