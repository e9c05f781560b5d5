/*
Package planner exposes the plan generation pipeline:
Profile -> metabolic targets -> prompt -> generation service -> normalized domain record.
*/
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"NextShape_V0.1/internal/aiservice"
	"NextShape_V0.1/internal/metabolic"
	"NextShape_V0.1/internal/models"
	"NextShape_V0.1/internal/prompts"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultOwnerID is the placeholder owner reference stamped on generated plans.
const DefaultOwnerID = "user-1"

// Sampling settings per task: lower temperature for food analysis.
const (
	planTemperature     = 0.7
	foodTemperature     = 0.3
	foodMaxTokens       = 1000
	defaultImageMIME    = "image/jpeg"
	taskWorkoutPlan     = "workout_plan"
	taskMealPlan        = "meal_plan"
	taskFoodScan        = "food_scan"
	workoutIDPrefix     = "workout-"
	mealIDPrefix        = "meal-"
	dataURLPrefix       = "data:"
	base64DataURLFormat = "data:%s;base64,%s"
)

// Generator is the single-attempt exchange with the generation service.
// *aiservice.Client implements it.
type Generator interface {
	Generate(ctx context.Context, logger *zerolog.Logger, req aiservice.Request, out interface{}) error
}

// Planner wires the composer and the generator together. It holds no
// mutable state and is safe for concurrent use.
type Planner struct {
	generator Generator
	composer  *prompts.Composer
	ownerID   string
	now       func() time.Time
	newID     func() string
}

// New returns a Planner. An empty ownerID falls back to DefaultOwnerID.
func New(generator Generator, composer *prompts.Composer, ownerID string) *Planner {
	if ownerID == "" {
		ownerID = DefaultOwnerID
	}
	if composer == nil {
		composer = prompts.NewComposer("")
	}
	return &Planner{
		generator: generator,
		composer:  composer,
		ownerID:   ownerID,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// GenerateWorkoutPlan asks the generator for a weekly plan built for p.
func (pl *Planner) GenerateWorkoutPlan(ctx context.Context, p models.Profile) (*models.WorkoutPlan, error) {
	logger := loggerFrom(ctx)

	req := aiservice.Request{
		Task:         taskWorkoutPlan,
		SystemPrompt: pl.composer.WorkoutSystemPrompt(),
		UserPrompt:   pl.composer.WorkoutPrompt(p),
		Temperature:  planTemperature,
	}

	var payload models.WorkoutPayload
	if err := pl.generator.Generate(ctx, logger, req, &payload); err != nil {
		logger.Error().Err(err).Msg("Failed to generate workout plan")
		return nil, err
	}

	plan, err := pl.normalizeWorkout(logger, payload)
	if err != nil {
		logger.Error().Err(err).Msg("Rejected workout plan payload")
		return nil, err
	}

	logger.Info().Str("plan_id", plan.ID).Int("days", len(plan.WeeklySchedule)).Msg("Workout plan generated")
	return plan, nil
}

// GenerateMealPlan computes the calorie target for p and asks for a five-meal plan.
func (pl *Planner) GenerateMealPlan(ctx context.Context, p models.Profile) (*models.MealPlan, error) {
	logger := loggerFrom(ctx)
	targets := metabolic.Calculate(p)

	logger.Debug().
		Float64("bmr", targets.BMR).
		Int("tdee", targets.TDEE).
		Int("target_calories", targets.TargetCalories).
		Msg("Calculated metabolic targets")

	req := aiservice.Request{
		Task:         taskMealPlan,
		SystemPrompt: pl.composer.MealSystemPrompt(),
		UserPrompt:   pl.composer.MealPrompt(p, targets),
		Temperature:  planTemperature,
	}

	var payload models.MealPayload
	if err := pl.generator.Generate(ctx, logger, req, &payload); err != nil {
		logger.Error().Err(err).Msg("Failed to generate meal plan")
		return nil, err
	}

	plan, err := pl.normalizeMeal(logger, payload, targets)
	if err != nil {
		logger.Error().Err(err).Msg("Rejected meal plan payload")
		return nil, err
	}

	logger.Info().Str("plan_id", plan.ID).Int("daily_calories", plan.DailyCalories).Msg("Meal plan generated")
	return plan, nil
}

// AnalyzeFoodImage estimates the nutrition of the food in imageData, which may be
// a data URL, an http(s) URL or bare base64 (assumed JPEG).
func (pl *Planner) AnalyzeFoodImage(ctx context.Context, imageData string) (*models.ScannedFood, error) {
	logger := loggerFrom(ctx)

	imageURL := ImageURL(imageData)
	if imageURL == "" {
		return nil, ErrEmptyImage
	}

	req := aiservice.Request{
		Task:         taskFoodScan,
		SystemPrompt: pl.composer.FoodSystemPrompt(),
		UserPrompt:   pl.composer.FoodImagePrompt(),
		ImageURL:     imageURL,
		Temperature:  foodTemperature,
		MaxTokens:    foodMaxTokens,
	}

	var food models.ScannedFood
	if err := pl.generator.Generate(ctx, logger, req, &food); err != nil {
		logger.Error().Err(err).Msg("Failed to analyze food image")
		return nil, err
	}

	logger.Info().Str("food", food.Name).Float64("portion", food.Portion).Float64("calories", food.Calories).Msg("Food analyzed")
	return &food, nil
}

// ImageURL turns the accepted image encodings into a URL for the image part.
func ImageURL(imageData string) string {
	imageData = strings.TrimSpace(imageData)
	switch {
	case imageData == "":
		return ""
	case strings.HasPrefix(imageData, dataURLPrefix),
		strings.HasPrefix(imageData, "http://"),
		strings.HasPrefix(imageData, "https://"):
		return imageData
	default:
		return fmt.Sprintf(base64DataURLFormat, defaultImageMIME, imageData)
	}
}

// loggerFrom returns the request logger stored in ctx, or the global logger.
func loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}
