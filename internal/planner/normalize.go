package planner

import (
	"errors"
	"fmt"
	"strings"

	"NextShape_V0.1/internal/aiservice"
	"NextShape_V0.1/internal/metabolic"
	"NextShape_V0.1/internal/models"
	"github.com/rs/zerolog"
)

var ErrEmptyImage = errors.New("image data is required")

/*=================================================================================
								RESPONSE NORMALIZER
	Only structural presence is checked. Field contents are passed through as the
	generator produced them.
=================================================================================*/

func (pl *Planner) normalizeWorkout(logger *zerolog.Logger, payload models.WorkoutPayload) (*models.WorkoutPlan, error) {
	if payload.WeeklySchedule == nil {
		return nil, aiservice.NewMalformedResponseError("workout plan has no weeklySchedule")
	}

	for _, day := range payload.WeeklySchedule {
		if day.IsRestDay && day.HasExercises() {
			// Passed through unchanged.
			logger.Warn().Str("day", day.Day).Msg("Rest day carries exercises")
		}
	}

	return &models.WorkoutPlan{
		ID:               workoutIDPrefix + pl.newID(),
		UserID:           pl.ownerID,
		CreatedAt:        pl.now(),
		WeeklySchedule:   payload.WeeklySchedule,
		ProgressionNotes: payload.ProgressionNotes,
		SafetyAlerts:     payload.SafetyAlerts,
	}, nil
}

func (pl *Planner) normalizeMeal(logger *zerolog.Logger, payload models.MealPayload, targets metabolic.Targets) (*models.MealPlan, error) {
	if missing := payload.Meals.Missing(); len(missing) > 0 {
		return nil, aiservice.NewMalformedResponseError(fmt.Sprintf("meal plan is missing meals: %s", strings.Join(missing, ", ")))
	}

	// dailyCalories is pinned to the calculated target.
	if int(payload.DailyCalories) != targets.TargetCalories {
		logger.Warn().
			Int("generated", int(payload.DailyCalories)).
			Int("target", targets.TargetCalories).
			Msg("Generated dailyCalories differs from target, using target")
	}

	return &models.MealPlan{
		ID:            mealIDPrefix + pl.newID(),
		UserID:        pl.ownerID,
		CreatedAt:     pl.now(),
		DailyCalories: targets.TargetCalories,
		Macros:        payload.Macros,
		Meals:         payload.Meals,
		Substitutions: payload.Substitutions,
	}, nil
}
