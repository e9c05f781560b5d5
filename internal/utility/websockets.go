package utility

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Notification types pushed to a session's socket.
const (
	PlansReady  = "PLANS_READY"
	PlansFailed = "PLANS_FAILED"
)

// Simple Hub to hold active connections: Map[SessionID] -> Connection
var (
	Clients   = make(map[string]*websocket.Conn)
	ClientsMu sync.Mutex
	Upgrader  = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Allow CORS for development
		CheckOrigin: func(r *http.Request) bool { return true },
	}
)

// Notification is the JSON message written to the socket.
type Notification struct {
	Type          string `json:"type"`
	WorkoutPlanID string `json:"workout_plan_id,omitempty"`
	MealPlanID    string `json:"meal_plan_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Register a new client connection. A second tab replaces the first.
func RegisterClient(sessionID string, conn *websocket.Conn) {
	ClientsMu.Lock()
	defer ClientsMu.Unlock()
	if old, ok := Clients[sessionID]; ok && old != conn {
		old.Close()
	}
	Clients[sessionID] = conn
	log.Info().Str("session_id", sessionID).Msg("WebSocket Client Connected")
}

// Unregister a client (when they close the tab)
func UnregisterClient(sessionID string, conn *websocket.Conn) {
	ClientsMu.Lock()
	defer ClientsMu.Unlock()
	if current, ok := Clients[sessionID]; ok && current == conn {
		delete(Clients, sessionID)
		log.Info().Str("session_id", sessionID).Msg("WebSocket Client Disconnected")
	}
}

// NotifySession pushes n to the session's socket, if one is open.
// It reports whether a message was delivered.
func NotifySession(sessionID string, n Notification) bool {
	msg, err := json.Marshal(n)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode WS notification")
		return false
	}

	ClientsMu.Lock()
	defer ClientsMu.Unlock()

	conn, ok := Clients[sessionID]
	if !ok {
		return false
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to send WS message, removing client")
		conn.Close()
		delete(Clients, sessionID)
		return false
	}
	return true
}

// ActiveClients returns the number of open sockets.
func ActiveClients() int {
	ClientsMu.Lock()
	defer ClientsMu.Unlock()
	return len(Clients)
}
