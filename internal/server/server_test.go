package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"NextShape_V0.1/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fakeWorkout = `{"weeklySchedule":[{"day":"Monday","isRestDay":false,"mainWorkout":[{"name":"Push-up","sets":3,"reps":"12","rest":"60 seconds","instructions":"Full range"}]}],"progressionNotes":"More reps","safetyAlerts":[]}`
	fakeMeal    = `{"name":"Meal","foods":[],"totalCalories":400,"macros":{"protein":30,"carbs":40,"fats":10}}`
)

// fakeCompletions answers chat-completion requests based on what the prompt asks for.
func fakeCompletions(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body := string(raw)

		content := fakeWorkout
		if strings.Contains(body, "morningSnack") {
			content = `{"dailyCalories":1,"macros":{"protein":1,"carbs":1,"fats":1},"meals":{"breakfast":` + fakeMeal +
				`,"morningSnack":` + fakeMeal + `,"lunch":` + fakeMeal + `,"afternoonSnack":` + fakeMeal +
				`,"dinner":` + fakeMeal + `},"substitutions":[]}`
		}

		b, _ := json.Marshal(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T, apiKey string) http.Handler {
	t.Helper()
	upstream := fakeCompletions(t)
	t.Setenv("OPENAI_API_KEY", apiKey)
	t.Setenv("OPENAI_BASE_URL", upstream.URL)
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PORT", "9090")

	srv, err := NewServer()
	require.NoError(t, err)
	assert.Equal(t, ":9090", srv.Addr)
	return srv.Handler
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "online", body["status"])
	gen := body["generation"].(map[string]interface{})
	assert.Equal(t, "gpt-4o-mini", gen["model"])
	assert.Equal(t, false, gen["configured"])
	// Health checks do not open sessions.
	assert.Empty(t, rec.Header().Get(session.HeaderName))
}

func TestVisitorFlow(t *testing.T) {
	h := newTestServer(t, "test-key")

	send := func(method, path, body, sessionID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if sessionID != "" {
			req.Header.Set(session.HeaderName, sessionID)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := send(http.MethodGet, "/quiz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	sessionID := rec.Header().Get(session.HeaderName)
	require.NotEmpty(t, sessionID)

	answers := `{"weight":62,"height":165,"age":28,"sex":"Female","desiredWeight":60,
	  "healthConditions":[],"physicalLimitations":["None"],"experienceLevel":"Intermediate",
	  "trainingLocation":"Gym","focusArea":"Glutes","daysPerWeek":"4 days","goal":"Maintenance",
	  "dietaryRestrictions":["Vegetarian"]}`
	rec = send(http.MethodPost, "/quiz/profile", answers, sessionID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, sessionID, rec.Header().Get(session.HeaderName))

	rec = send(http.MethodPost, "/plans", "", sessionID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var plans struct {
		WorkoutPlan struct {
			ID string `json:"id"`
		} `json:"workout_plan"`
		MealPlan struct {
			ID            string `json:"id"`
			DailyCalories int    `json:"dailyCalories"`
		} `json:"meal_plan"`
		Targets struct {
			TargetCalories int `json:"targetCalories"`
		} `json:"targets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plans))
	assert.True(t, strings.HasPrefix(plans.WorkoutPlan.ID, "workout-"))
	assert.True(t, strings.HasPrefix(plans.MealPlan.ID, "meal-"))
	assert.Equal(t, plans.Targets.TargetCalories, plans.MealPlan.DailyCalories)

	rec = send(http.MethodGet, "/plans", "", sessionID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), plans.WorkoutPlan.ID)
}

func TestPlansWithoutCredential(t *testing.T) {
	h := newTestServer(t, "")

	p := `{"profile":{"weight":70,"height":170,"age":25,"sex":"male","desiredWeight":68,
	  "healthConditions":[],"physicalLimitations":[],"experienceLevel":"beginner",
	  "trainingLocation":"home","focusArea":"abs","daysPerWeek":3,"goal":"weight-loss",
	  "dietaryRestrictions":[]}}`
	req := httptest.NewRequest(http.MethodPost, "/plans/workout", strings.NewReader(p))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "OPENAI_API_KEY")
	assert.Contains(t, rec.Body.String(), `"kind":"configuration"`)
}
