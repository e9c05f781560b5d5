/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the
generation pipeline and session store into the router.
*/
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"NextShape_V0.1/internal/aiservice"
	"NextShape_V0.1/internal/planner"
	"NextShape_V0.1/internal/prompts"
	"NextShape_V0.1/internal/session"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// production enables secure cookies.
	production bool

	// ai is the generation service client; planner wraps it.
	ai      *aiservice.Client
	planner *planner.Planner

	// sessions holds the in-memory visitor state; cookies carries the session ID.
	sessions *session.Store
	cookies  sessions.Store

	startTime time.Time
}

// NewServer initializes a new Server instance and returns a configured *http.Server.
// It reads configuration from environment variables and sets production-ready
// network timeouts.
func NewServer() (*http.Server, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port == 0 {
		port = 8080
	}

	production := os.Getenv("APP_ENV") == "production"

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		// Cookies will not survive a restart, which is fine for in-memory sessions.
		secret = uuid.New().String() + uuid.New().String()
		log.Warn().Msg("SESSION_SECRET not set, using a random secret")
	}

	store, err := session.NewStore(envInt("SESSION_MAX_SESSIONS", session.DefaultMaxSessions))
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	aiCfg := aiservice.ConfigFromEnv()
	if aiCfg.APIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY not set, generation requests will fail until it is configured")
	}
	client := aiservice.NewClient(aiCfg, nil)

	newApp := &Server{
		port:       port,
		production: production,
		ai:         client,
		planner:    planner.New(client, prompts.NewComposer(os.Getenv("OUTPUT_LANGUAGE")), ""),
		sessions:   store,
		cookies:    session.NewCookieStore(secret, production),
		startTime:  time.Now(),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", newApp.port),
		Handler:      newApp.RegisterRoutes(), // Injected from routes.go
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute, // plan generation waits on the upstream model
	}

	log.Info().
		Int("port", port).
		Str("model", client.Model()).
		Bool("production", production).
		Msg("Server configured")

	return server, nil
}

// envInt reads a positive integer from the environment, falling back to def.
func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("Invalid integer in environment, using default")
		return def
	}
	return v
}
