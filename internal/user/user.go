/*
Package user holds the HTTP handlers of the visitor flow: questionnaire,
plan generation, food scanning and the daily food log.
*/
package user

import (
	"errors"
	"net/http"

	"NextShape_V0.1/internal/aiservice"
	"NextShape_V0.1/internal/metabolic"
	"NextShape_V0.1/internal/models"
	"NextShape_V0.1/internal/planner"
	"NextShape_V0.1/internal/session"
	"NextShape_V0.1/internal/utility"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var (
	plans    *planner.Planner
	sessions *session.Store
)

// Dependencies are the services the handlers need.
type Dependencies struct {
	Planner  *planner.Planner
	Sessions *session.Store
}

// InitUserPackage is called by the server package to wire the handlers.
func InitUserPackage(deps Dependencies) {
	plans = deps.Planner
	sessions = deps.Sessions
	log.Info().Msg("User package initialized.")
}

// currentSession loads the session resolved by the session middleware.
func currentSession(c echo.Context) (session.Session, error) {
	sessionID, err := utility.GetSessionIDFromContext(c)
	if err != nil {
		return session.Session{}, err
	}
	s, ok := sessions.Get(sessionID)
	if !ok {
		return session.Session{}, session.ErrSessionNotFound
	}
	return s, nil
}

// sessionErrorResponse answers requests whose session could not be loaded.
func sessionErrorResponse(c echo.Context, err error) error {
	if errors.Is(err, session.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session expired, please start again"})
	}
	log.Error().Err(err).Msg("Session missing from request context")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Session unavailable"})
}

// generationErrorResponse maps pipeline failures to HTTP responses.
func generationErrorResponse(c echo.Context, err error) error {
	var genErr *aiservice.GenerationError
	if errors.As(err, &genErr) {
		status := http.StatusBadGateway
		switch genErr.Kind {
		case aiservice.KindConfiguration:
			status = http.StatusInternalServerError
		case aiservice.KindQuota:
			status = http.StatusPaymentRequired
		}
		return c.JSON(status, map[string]string{
			"error": genErr.Error(),
			"kind":  string(genErr.Kind),
		})
	}

	switch {
	case errors.Is(err, planner.ErrEmptyImage), errors.Is(err, planner.ErrInvalidPortion):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, session.ErrSessionNotFound):
		return sessionErrorResponse(c, err)
	}

	log.Error().Err(err).Msg("Unexpected generation failure")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate, please try again later"})
}

// PlanRequest optionally carries a profile. Without one the session profile is used.
type PlanRequest struct {
	Profile *models.Profile `json:"profile"`
}

var errNoProfile = errors.New("complete the questionnaire first")

// resolveProfile picks the request profile (validating and storing it) or falls back to the session's.
func resolveProfile(c echo.Context) (string, models.Profile, error) {
	s, err := currentSession(c)
	if err != nil {
		return "", models.Profile{}, err
	}

	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return s.ID, models.Profile{}, err
	}

	if req.Profile == nil {
		if s.Profile == nil {
			return s.ID, models.Profile{}, errNoProfile
		}
		return s.ID, *s.Profile, nil
	}

	p := *req.Profile
	if err := p.Validate(); err != nil {
		return s.ID, models.Profile{}, err
	}
	if _, err := sessions.SaveProfile(s.ID, p, metabolic.Calculate(p)); err != nil {
		return s.ID, models.Profile{}, err
	}
	return s.ID, p, nil
}

// profileErrorResponse answers a failed resolveProfile.
func profileErrorResponse(c echo.Context, err error) error {
	var bindErr *echo.HTTPError
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return sessionErrorResponse(c, err)
	case errors.As(err, &bindErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
}
