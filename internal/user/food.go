package user

import (
	"errors"
	"net/http"
	"strconv"

	"NextShape_V0.1/internal/models"
	"NextShape_V0.1/internal/planner"
	"NextShape_V0.1/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

/* ====================================================================
                          Food Scanner Handlers
==================================================================== */

// ScanRequest carries a photo as a data URL, an http(s) URL or bare base64.
type ScanRequest struct {
	Image string `json:"image"`
}

// RescaleRequest asks for a scanned food recomputed for another portion in grams.
type RescaleRequest struct {
	Food    models.ScannedFood `json:"food"`
	Portion float64            `json:"portion"`
}

// FoodLogRequest adds a food to the log, optionally at a custom portion.
type FoodLogRequest struct {
	Food    models.ScannedFood `json:"food"`
	Portion *float64           `json:"portion,omitempty"`
}

// ScanFoodHandler analyses a food photo.
func ScanFoodHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	food, err := plans.AnalyzeFoodImage(ctx, req.Image)
	if err != nil {
		return generationErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, food)
}

// RescaleFoodHandler recomputes a scanned food for a new portion.
func RescaleFoodHandler(c echo.Context) error {
	var req RescaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	scaled, err := planner.RescalePortion(req.Food, req.Portion)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, scaled)
}

// AddFoodLogHandler appends a food to the session's daily log.
func AddFoodLogHandler(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return sessionErrorResponse(c, err)
	}

	var req FoodLogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.Food.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "food name is required"})
	}

	food := req.Food
	if req.Portion != nil {
		if food, err = planner.RescalePortion(req.Food, *req.Portion); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}

	updated, err := sessions.AddFood(s.ID, food)
	if err != nil {
		return sessionErrorResponse(c, err)
	}

	log.Info().Str("session_id", s.ID).Str("food", food.Name).Float64("calories", food.Calories).Msg("Food logged")
	return c.JSON(http.StatusCreated, foodLogResponse(updated))
}

// GetFoodLogHandler returns the session's daily log.
func GetFoodLogHandler(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return sessionErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, foodLogResponse(s))
}

// DeleteFoodLogHandler removes the food at :index from the log.
func DeleteFoodLogHandler(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return sessionErrorResponse(c, err)
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid food log index"})
	}

	updated, err := sessions.RemoveFood(s.ID, index)
	if err != nil {
		if errors.Is(err, session.ErrFoodIndex) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return sessionErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, foodLogResponse(updated))
}

func foodLogResponse(s session.Session) map[string]interface{} {
	resp := map[string]interface{}{
		"food_log":                s.FoodLog,
		"total_calories_consumed": s.TotalCaloriesConsumed,
	}
	if s.Targets != nil {
		resp["target_calories"] = s.Targets.TargetCalories
		resp["remaining_calories"] = float64(s.Targets.TargetCalories) - s.TotalCaloriesConsumed
	}
	return resp
}
