package session

import (
	"net/http"

	"NextShape_V0.1/internal/utility"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	cookieName = "nextshape_session"
	idKey      = "session_id"
	// ContextKey is where the middleware stores the session ID on the echo context.
	ContextKey = "session_id"
	// HeaderName lets non-browser clients pass the session ID explicitly.
	HeaderName = "X-Session-ID"
	// cookieMaxAge matches the lifetime of an in-memory session in practice: one day.
	cookieMaxAge = 24 * 60 * 60
)

// NewCookieStore builds the signed cookie store carrying the session ID.
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(cookieMaxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// Middleware resolves the visitor's session from the X-Session-ID header or
// the session cookie, creating one when needed, and exposes its ID as
// c.Get(ContextKey).
func Middleware(cookies sessions.Store, store *Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			cookieSession, err := cookies.Get(req, cookieName)
			if err != nil {
				// A cookie signed with an old secret: start over with a fresh one.
				log.Debug().Err(err).Msg("Discarding unreadable session cookie")
			}

			requested := req.Header.Get(HeaderName)
			if requested == "" {
				requested, _ = cookieSession.Values[idKey].(string)
			}

			s := store.GetOrCreate(requested)
			if s.ID != requested {
				log.Info().Str("session_id", s.ID).Str("ip", utility.GetRealIP(c)).Msg("Session created")
				cookieSession.Values[idKey] = s.ID
				if err := cookieSession.Save(req, c.Response()); err != nil {
					log.Error().Err(err).Msg("Failed to save session cookie")
				}
			}

			c.Set(ContextKey, s.ID)
			c.Response().Header().Set(HeaderName, s.ID)
			return next(c)
		}
	}
}
