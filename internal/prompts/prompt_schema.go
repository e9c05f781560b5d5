package prompts

import (
	"encoding/json"

	"NextShape_V0.1/internal/models"
)

/* =================================================================================
							RESPONSE CONTRACTS (SCHEMA BY EXAMPLE)
	The generator only gets an example object. The examples are built from the
	same structs the responses are decoded into, so keys cannot drift.
=================================================================================*/

func float(v float64) *float64 { return &v }

var workoutExample = models.WorkoutPayload{
	WeeklySchedule: []models.DayWorkout{
		{
			Day:       "Monday",
			IsRestDay: false,
			Warmup: []models.Exercise{{
				Name:         "Exercise name",
				Sets:         1,
				Reps:         "5-10 minutes",
				Rest:         "0",
				Instructions: "Detailed instructions",
				SafetyTips:   "Safety tips",
			}},
			MainWorkout: []models.Exercise{{
				Name:         "Exercise name",
				Sets:         3,
				Reps:         "12-15",
				Rest:         "60 seconds",
				Load:         "Moderate weight or bodyweight",
				Instructions: "Step by step instructions",
				SafetyTips:   "Important warnings",
				Adaptations:  "Adaptations for the stated limitations",
			}},
			Cooldown: []models.Exercise{{
				Name:         "Stretching",
				Sets:         1,
				Reps:         "30 seconds each",
				Rest:         "0",
				Instructions: "How to perform it",
			}},
			Notes: "Important notes for the day",
		},
		{
			Day:       "Tuesday",
			IsRestDay: true,
			Notes:     "Rest and recovery",
		},
	},
	ProgressionNotes: "How to progress week by week",
	SafetyAlerts:     []string{"Alert 1", "Alert 2"},
}

var sampleMeal = models.Meal{
	Name: "Meal name",
	Foods: []models.FoodItem{{
		Name:     "Food",
		Quantity: "quantity",
		Calories: 100,
		Protein:  10,
		Carbs:    20,
		Fats:     5,
	}},
	TotalCalories: 400,
	Macros:        models.Macros{Protein: 20, Carbs: 50, Fats: 10},
}

// mealExample returns the meal plan contract with the calculated target filled in.
func mealExample(dailyCalories int) models.MealPayload {
	breakfast, morningSnack, lunch, afternoonSnack, dinner := sampleMeal, sampleMeal, sampleMeal, sampleMeal, sampleMeal
	breakfast.Name = "Breakfast"
	morningSnack.Name = "Morning snack"
	lunch.Name = "Lunch"
	afternoonSnack.Name = "Afternoon snack"
	dinner.Name = "Dinner"

	return models.MealPayload{
		DailyCalories: models.Count(dailyCalories),
		Macros:        models.Macros{Protein: 150, Carbs: 200, Fats: 60},
		Meals: models.DailyMeals{
			Breakfast:      &breakfast,
			MorningSnack:   &morningSnack,
			Lunch:          &lunch,
			AfternoonSnack: &afternoonSnack,
			Dinner:         &dinner,
		},
		Substitutions: []string{"Suggestion 1", "Suggestion 2"},
	}
}

var foodExample = models.ScannedFood{
	Name:               "Identified food name",
	Portion:            150,
	Calories:           250,
	Protein:            12,
	Carbs:              35,
	Fats:               8,
	Fiber:              float(5),
	Sugar:              float(10),
	Sodium:             float(300),
	CalorieLevel:       models.CalorieLevelMedium,
	NutritionalQuality: models.QualityGood,
	Recommendation:     models.RecommendWeightLoss,
}

// exampleJSON renders a contract. The inputs are fixed structs, so marshalling cannot fail.
func exampleJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

/* =================================================================================
						PROMPT ENGINEERING & GUARDRAILS
=================================================================================*/

const workoutSystemPrompt = `You are a professional personal trainer who specialises in building safe and effective training plans. ALWAYS answer with valid JSON.`

const mealSystemPrompt = `You are a professional nutritionist who specialises in balanced and sustainable diets. ALWAYS answer with valid JSON.`

const foodSystemPrompt = `You are a nutritionist specialised in the nutritional analysis of food. ALWAYS answer with valid JSON containing accurate information.`

const languageInstruction = `

LANGUAGE OUTPUT:
Write every free-text value in %s. JSON keys and enumerated values MUST stay exactly as given in the response format.`

/*
workoutPromptTemplate receives, in order: weight, height, age, sex, desired weight,
experience level, training location, focus area, days per week, health conditions,
physical limitations, response format and days per week again.
*/
const workoutPromptTemplate = `You are a professional personal trainer and biomechanics specialist. Build a COMPLETE and SAFE training plan based on the following data:

USER DATA:
- Weight: %gkg
- Height: %gcm
- Age: %d years
- Sex: %s
- Desired weight: %gkg
- Level: %s
- Location: %s
- Focus: %s
- Days per week: %d
- Health conditions: %s
- Physical limitations: %s

CRITICAL INSTRUCTIONS:
1. SAFETY FIRST: Adapt every exercise to the physical limitations and health conditions
2. Respect biomechanics and progressive overload
3. Include a specific warmup and a cooldown with stretching
4. Give CLEAR and DIDACTIC instructions
5. Suggest loads suited to the level and to the equipment available at the location
6. Include safety alerts and injury prevention advice
7. Organise the plan by weekday with strategic rest days
8. Give weekly progression suggestions

RESPONSE FORMAT (JSON):
%s

Rest days use "isRestDay": true and no exercise lists.
Generate a COMPLETE plan with %d training days.`

/*
mealPromptTemplate receives, in order: weight, desired weight, height, age, sex, goal,
daily calories, dietary restrictions, training days, macro distribution and response format.
*/
const mealPromptTemplate = `You are a professional nutritionist. Build a COMPLETE and BALANCED meal plan based on the following data:

USER DATA:
- Current weight: %gkg
- Desired weight: %gkg
- Height: %gcm
- Age: %d years
- Sex: %s
- Goal: %s
- Daily calories: %d kcal
- Restrictions: %s
- Training days: %d

INSTRUCTIONS:
1. Create PRACTICAL and REALISTIC meals
2. Respect ALL dietary restrictions
3. Distribute macronutrients in a balanced way
4. Give approximate quantities
5. Include smart substitutions
6. Focus on affordable and sustainable foods

MACRO DISTRIBUTION:
%s

RESPONSE FORMAT (JSON):
%s

All five meals (breakfast, morningSnack, lunch, afternoonSnack, dinner) are REQUIRED.
"dailyCalories" MUST be exactly the daily calories given above.`

// foodImagePromptTemplate receives the response format.
const foodImagePromptTemplate = `You are a nutritionist specialised in nutritional analysis. Analyse this food image and give ACCURATE and COMPLETE nutritional information.

CRITICAL INSTRUCTIONS:
1. Identify the single food item precisely
2. Estimate the portion in grams (be realistic)
3. Compute the nutritional values for that portion
4. Classify the calorie level (low: <200kcal, medium: 200-400kcal, high: >400kcal)
5. Rate the nutritional quality (excellent/good/moderate/poor)
6. Say which goal it suits best (weight-loss/maintenance/muscle-gain/all)

RESPONSE FORMAT (JSON):
%s

RULES:
- portion: estimated grams of the visible portion
- calorieLevel: "low" (<200 kcal), "medium" (200-400), "high" (>400)
- nutritionalQuality: "excellent", "good", "moderate", "poor"
- recommendation: "weight-loss", "maintenance", "muscle-gain", "all"
- fiber, sugar and sodium may be omitted when they cannot be estimated
- If you cannot identify the food with confidence, say so honestly in "name"
- Values must be realistic and based on nutrition tables
- Consider preparation and visible ingredients`
