package user

import (
	"net/http"

	"NextShape_V0.1/internal/metabolic"
	"NextShape_V0.1/internal/models"
	"NextShape_V0.1/internal/utility"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

/* ====================================================================
                        Plan Generation Handlers
==================================================================== */

// GeneratePlansHandler generates the workout and meal plans in parallel.
// The calls are independent: one failing leaves the other to finish, and
// the first failure is reported.
func GeneratePlansHandler(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, p, err := resolveProfile(c)
	if err != nil {
		return profileErrorResponse(c, err)
	}

	log.Info().Str("session_id", sessionID).Msg("Generating workout and meal plans")

	var (
		workout *models.WorkoutPlan
		meal    *models.MealPlan
	)

	var g errgroup.Group

	g.Go(func() error {
		var err error
		workout, err = plans.GenerateWorkoutPlan(ctx, p)
		return err
	})

	g.Go(func() error {
		var err error
		meal, err = plans.GenerateMealPlan(ctx, p)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Plan generation failed")
		utility.NotifySession(sessionID, utility.Notification{Type: utility.PlansFailed, Error: err.Error()})
		return generationErrorResponse(c, err)
	}

	if _, err := sessions.SavePlans(sessionID, workout, meal); err != nil {
		return sessionErrorResponse(c, err)
	}

	utility.NotifySession(sessionID, utility.Notification{
		Type:          utility.PlansReady,
		WorkoutPlanID: workout.ID,
		MealPlanID:    meal.ID,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"workout_plan": workout,
		"meal_plan":    meal,
		"targets":      metabolic.Calculate(p),
	})
}

// GenerateWorkoutPlanHandler regenerates only the workout plan.
func GenerateWorkoutPlanHandler(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, p, err := resolveProfile(c)
	if err != nil {
		return profileErrorResponse(c, err)
	}

	workout, err := plans.GenerateWorkoutPlan(ctx, p)
	if err != nil {
		utility.NotifySession(sessionID, utility.Notification{Type: utility.PlansFailed, Error: err.Error()})
		return generationErrorResponse(c, err)
	}

	if _, err := sessions.SavePlans(sessionID, workout, nil); err != nil {
		return sessionErrorResponse(c, err)
	}
	utility.NotifySession(sessionID, utility.Notification{Type: utility.PlansReady, WorkoutPlanID: workout.ID})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"workout_plan": workout,
	})
}

// GenerateMealPlanHandler regenerates only the meal plan.
func GenerateMealPlanHandler(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, p, err := resolveProfile(c)
	if err != nil {
		return profileErrorResponse(c, err)
	}

	meal, err := plans.GenerateMealPlan(ctx, p)
	if err != nil {
		utility.NotifySession(sessionID, utility.Notification{Type: utility.PlansFailed, Error: err.Error()})
		return generationErrorResponse(c, err)
	}

	if _, err := sessions.SavePlans(sessionID, nil, meal); err != nil {
		return sessionErrorResponse(c, err)
	}
	utility.NotifySession(sessionID, utility.Notification{Type: utility.PlansReady, MealPlanID: meal.ID})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"meal_plan": meal,
		"targets":   metabolic.Calculate(p),
	})
}

// GetPlansHandler returns whatever the session currently holds.
func GetPlansHandler(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return sessionErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"profile":      s.Profile,
		"targets":      s.Targets,
		"workout_plan": s.WorkoutPlan,
		"meal_plan":    s.MealPlan,
		"updated_at":   s.UpdatedAt,
	})
}

// PlansSocketHandler keeps a websocket open so the session receives
// PLANS_READY / PLANS_FAILED notifications.
func PlansSocketHandler(c echo.Context) error {
	sessionID, err := utility.GetSessionIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ws, err := utility.Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	utility.RegisterClient(sessionID, ws)
	defer utility.UnregisterClient(sessionID, ws)

	// We don't expect messages from the client, but we must read to keep the socket open
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
	return nil
}
