package models

// CalorieLevel thresholds: low < 200 kcal, medium 200-400, high > 400.
// The generator assigns it; it is not recomputed locally.
type CalorieLevel string

const (
	CalorieLevelLow    CalorieLevel = "low"
	CalorieLevelMedium CalorieLevel = "medium"
	CalorieLevelHigh   CalorieLevel = "high"
)

type NutritionalQuality string

const (
	QualityExcellent NutritionalQuality = "excellent"
	QualityGood      NutritionalQuality = "good"
	QualityModerate  NutritionalQuality = "moderate"
	QualityPoor      NutritionalQuality = "poor"
)

type Recommendation string

const (
	RecommendWeightLoss  Recommendation = "weight-loss"
	RecommendMaintenance Recommendation = "maintenance"
	RecommendMuscleGain  Recommendation = "muscle-gain"
	RecommendAll         Recommendation = "all"
)

// ScannedFood is the nutritional estimate for one photographed food item.
// Fiber, Sugar and Sodium are optional and stay nil when not reported.
type ScannedFood struct {
	Name     string  `json:"name"`
	Portion  float64 `json:"portion"` // grams
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`

	Fiber  *float64 `json:"fiber,omitempty"`
	Sugar  *float64 `json:"sugar,omitempty"`
	Sodium *float64 `json:"sodium,omitempty"`

	CalorieLevel       CalorieLevel       `json:"calorieLevel"`
	NutritionalQuality NutritionalQuality `json:"nutritionalQuality"`
	Recommendation     Recommendation     `json:"recommendation"`
}
