package prompts

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"NextShape_V0.1/internal/metabolic"
	"NextShape_V0.1/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() models.Profile {
	return models.Profile{
		Weight:              82.5,
		Height:              176,
		Age:                 41,
		Sex:                 models.SexMale,
		DesiredWeight:       76,
		HealthConditions:    []string{"Hypertension"},
		PhysicalLimitations: []string{"Knee problems", "Cannot run"},
		ExperienceLevel:     models.ExperienceBeginner,
		TrainingLocation:    models.LocationHome,
		FocusArea:           models.FocusFullBody,
		DaysPerWeek:         3,
		Goal:                models.GoalWeightLoss,
		DietaryRestrictions: nil,
	}
}

// jsonBlock extracts the response format example that follows the marker.
func jsonBlock(t *testing.T, prompt string) string {
	t.Helper()
	const marker = "RESPONSE FORMAT (JSON):\n"
	idx := strings.Index(prompt, marker)
	require.NotEqual(t, -1, idx, "prompt has no response format")
	rest := prompt[idx+len(marker):]

	depth := 0
	for i, r := range rest {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return rest[:i+1]
			}
		}
	}
	t.Fatal("unterminated response format")
	return ""
}

func TestWorkoutPrompt(t *testing.T) {
	c := NewComposer("")
	p := testProfile()
	prompt := c.WorkoutPrompt(p)

	for _, want := range []string{
		"- Weight: 82.5kg",
		"- Height: 176cm",
		"- Age: 41 years",
		"- Sex: male",
		"- Desired weight: 76kg",
		"- Level: beginner",
		"- Location: home",
		"- Focus: full-body",
		"- Days per week: 3",
		"- Health conditions: Hypertension",
		"- Physical limitations: Knee problems, Cannot run",
		"SAFETY FIRST",
		"with 3 training days",
	} {
		assert.Contains(t, prompt, want)
	}

	var contract models.WorkoutPayload
	require.NoError(t, json.Unmarshal([]byte(jsonBlock(t, prompt)), &contract))
	require.NotEmpty(t, contract.WeeklySchedule)
	assert.NotEmpty(t, contract.WeeklySchedule[0].MainWorkout)
	assert.True(t, contract.WeeklySchedule[1].IsRestDay)
	assert.False(t, contract.WeeklySchedule[1].HasExercises())
	assert.NotEmpty(t, contract.SafetyAlerts)
}

func TestMealPrompt(t *testing.T) {
	c := NewComposer("Portuguese (Brazil)")
	p := testProfile()
	targets := metabolic.Calculate(p)
	prompt := c.MealPrompt(p, targets)

	assert.Contains(t, prompt, "- Goal: weight-loss")
	assert.Contains(t, prompt, "- Restrictions: None")
	assert.Contains(t, prompt, "Protein: 35% | Carbs: 35% | Fats: 30%")
	assert.Contains(t, prompt, "- Daily calories: "+strconv.Itoa(targets.TargetCalories)+" kcal")

	var contract models.MealPayload
	require.NoError(t, json.Unmarshal([]byte(jsonBlock(t, prompt)), &contract))
	assert.Equal(t, models.Count(targets.TargetCalories), contract.DailyCalories)
	assert.Empty(t, contract.Meals.Missing())

	assert.Contains(t, c.MealSystemPrompt(), "Portuguese (Brazil)")
}

func TestFoodImagePrompt(t *testing.T) {
	prompt := NewComposer("").FoodImagePrompt()

	assert.Contains(t, prompt, "low: <200kcal, medium: 200-400kcal, high: >400kcal")
	assert.Contains(t, prompt, `"excellent", "good", "moderate", "poor"`)
	assert.Contains(t, prompt, `"weight-loss", "maintenance", "muscle-gain", "all"`)
	assert.NotContains(t, prompt, "USER DATA")

	var contract models.ScannedFood
	require.NoError(t, json.Unmarshal([]byte(jsonBlock(t, prompt)), &contract))
	assert.Equal(t, 150.0, contract.Portion)
	require.NotNil(t, contract.Fiber)
	assert.Equal(t, models.CalorieLevelMedium, contract.CalorieLevel)
}

func TestComposerDoesNotMutateProfile(t *testing.T) {
	p := testProfile()
	p.HealthConditions = []string{" ", "Diabetes"}
	before := append([]string(nil), p.HealthConditions...)

	c := NewComposer("")
	_ = c.WorkoutPrompt(p)
	_ = c.MealPrompt(p, metabolic.Calculate(p))

	assert.Equal(t, before, p.HealthConditions)
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "None", joinTags(nil))
	assert.Equal(t, "None", joinTags([]string{"", "  "}))
	assert.Equal(t, "Vegan, Gluten allergy", joinTags([]string{"Vegan", " Gluten allergy "}))
}

func TestSystemPromptsDefaultLanguage(t *testing.T) {
	c := NewComposer("  ")
	assert.Equal(t, DefaultLanguage, c.Language())
	for _, sp := range []string{c.WorkoutSystemPrompt(), c.MealSystemPrompt(), c.FoodSystemPrompt()} {
		assert.Contains(t, sp, "valid JSON")
		assert.Contains(t, sp, "in English")
	}
}
