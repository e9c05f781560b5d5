package models

import "time"

// WorkoutPlan is one generated weekly training plan.
type WorkoutPlan struct {
	ID               string       `json:"id"`
	UserID           string       `json:"userId"`
	CreatedAt        time.Time    `json:"createdAt"`
	WeeklySchedule   []DayWorkout `json:"weeklySchedule"`
	ProgressionNotes string       `json:"progressionNotes"`
	SafetyAlerts     []string     `json:"safetyAlerts"`
}

// DayWorkout is a single day of the schedule. Rest days are expected to carry
// no exercises, but that is up to the generator.
type DayWorkout struct {
	Day         string     `json:"day"`
	IsRestDay   bool       `json:"isRestDay"`
	Warmup      []Exercise `json:"warmup,omitempty"`
	MainWorkout []Exercise `json:"mainWorkout,omitempty"`
	Cooldown    []Exercise `json:"cooldown,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// HasExercises reports whether any phase of the day lists an exercise.
func (d DayWorkout) HasExercises() bool {
	return len(d.Warmup) > 0 || len(d.MainWorkout) > 0 || len(d.Cooldown) > 0
}

type Exercise struct {
	Name         string `json:"name"`
	Sets         Count  `json:"sets"`
	Reps         string `json:"reps"` // "12-15" or "30 seconds"
	Rest         string `json:"rest"`
	Load         string `json:"load,omitempty"`
	Instructions string `json:"instructions"`
	SafetyTips   string `json:"safetyTips,omitempty"`
	Adaptations  string `json:"adaptations,omitempty"`
}

// WorkoutPayload is the shape the generator is asked to return.
type WorkoutPayload struct {
	WeeklySchedule   []DayWorkout `json:"weeklySchedule"`
	ProgressionNotes string       `json:"progressionNotes"`
	SafetyAlerts     []string     `json:"safetyAlerts"`
}
