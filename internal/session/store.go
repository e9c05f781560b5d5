/*
Package session keeps the ephemeral per-visitor state: the profile, the
generated plans and the food log. Nothing is persisted; evicted or expired
sessions are simply gone.
*/
package session

import (
	"errors"
	"sync"
	"time"

	"NextShape_V0.1/internal/metabolic"
	"NextShape_V0.1/internal/models"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrFoodIndex       = errors.New("food log index out of range")
)

// DefaultMaxSessions bounds memory when SESSION_MAX_SESSIONS is not set.
const DefaultMaxSessions = 1000

// Session is a snapshot of one visitor's state.
type Session struct {
	ID                    string               `json:"session_id"`
	Profile               *models.Profile      `json:"profile,omitempty"`
	Targets               *metabolic.Targets   `json:"targets,omitempty"`
	WorkoutPlan           *models.WorkoutPlan  `json:"workout_plan,omitempty"`
	MealPlan              *models.MealPlan     `json:"meal_plan,omitempty"`
	FoodLog               []models.ScannedFood `json:"food_log"`
	TotalCaloriesConsumed float64              `json:"total_calories_consumed"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
}

func (s *Session) clone() Session {
	out := *s
	out.FoodLog = append([]models.ScannedFood{}, s.FoodLog...)
	return out
}

// Store is a bounded LRU of sessions. Least recently used sessions are evicted first.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *Session]
	now   func() time.Time
}

func NewStore(maxSessions int) (*Store, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	cache, err := lru.New[string, *Session](maxSessions)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache, now: time.Now}, nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	return st.cache.Len()
}

// GetOrCreate returns the session for id, creating a fresh one (with a new ID)
// when id is empty or unknown.
func (st *Store) GetOrCreate(id string) Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if id != "" {
		if s, ok := st.cache.Get(id); ok {
			return s.clone()
		}
	}

	now := st.now()
	s := &Session{
		ID:        uuid.New().String(),
		FoodLog:   []models.ScannedFood{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	st.cache.Add(s.ID, s)
	return s.clone()
}

func (st *Store) Get(id string) (Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.cache.Get(id)
	if !ok {
		return Session{}, false
	}
	return s.clone(), true
}

// update applies fn to the stored session under the store lock.
func (st *Store) update(id string, fn func(s *Session) error) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.cache.Get(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if err := fn(s); err != nil {
		return Session{}, err
	}
	s.UpdatedAt = st.now()
	return s.clone(), nil
}

// SaveProfile stores the profile and its metabolic targets.
func (st *Store) SaveProfile(id string, p models.Profile, t metabolic.Targets) (Session, error) {
	return st.update(id, func(s *Session) error {
		s.Profile = &p
		s.Targets = &t
		return nil
	})
}

// SavePlans stores whichever plans are non-nil, leaving the others untouched.
func (st *Store) SavePlans(id string, workout *models.WorkoutPlan, meal *models.MealPlan) (Session, error) {
	return st.update(id, func(s *Session) error {
		if workout != nil {
			s.WorkoutPlan = workout
		}
		if meal != nil {
			s.MealPlan = meal
		}
		return nil
	})
}

// AddFood appends a scanned food and adds its calories to the daily total.
func (st *Store) AddFood(id string, food models.ScannedFood) (Session, error) {
	return st.update(id, func(s *Session) error {
		s.FoodLog = append(s.FoodLog, food)
		s.TotalCaloriesConsumed += food.Calories
		return nil
	})
}

// RemoveFood drops the food at index and subtracts its calories.
func (st *Store) RemoveFood(id string, index int) (Session, error) {
	return st.update(id, func(s *Session) error {
		if index < 0 || index >= len(s.FoodLog) {
			return ErrFoodIndex
		}
		removed := s.FoodLog[index]
		s.FoodLog = append(s.FoodLog[:index:index], s.FoodLog[index+1:]...)
		s.TotalCaloriesConsumed -= removed.Calories
		return nil
	})
}
