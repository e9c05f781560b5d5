package user

import (
	"net/http"

	"NextShape_V0.1/internal/metabolic"
	"NextShape_V0.1/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// GetQuizHandler returns the questionnaire steps.
func GetQuizHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"steps": models.QuizSteps,
		"total": len(models.QuizSteps),
	})
}

// SubmitQuizProfileHandler maps questionnaire answers to a profile and stores
// it, with its metabolic targets, on the session.
func SubmitQuizProfileHandler(c echo.Context) error {
	s, err := currentSession(c)
	if err != nil {
		return sessionErrorResponse(c, err)
	}

	var answers models.QuizAnswers
	if err := c.Bind(&answers); err != nil {
		log.Warn().Err(err).Msg("Failed to bind quiz answers")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	p, err := answers.ToProfile()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	targets := metabolic.Calculate(p)
	if _, err := sessions.SaveProfile(s.ID, p, targets); err != nil {
		return sessionErrorResponse(c, err)
	}

	log.Info().Str("session_id", s.ID).Str("goal", string(p.Goal)).Int("target_calories", targets.TargetCalories).Msg("Profile saved")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"profile":     p,
		"targets":     targets,
		"macro_split": targets.MacroSplit.String(),
		"next_step":   "/plans",
		"session_id":  s.ID,
	})
}
