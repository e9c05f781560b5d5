/*
Package prompts builds the instruction blocks sent to the generation service.
Every builder is a pure function of its inputs; profiles are never modified.
*/
package prompts

import (
	"fmt"
	"strings"

	"NextShape_V0.1/internal/metabolic"
	"NextShape_V0.1/internal/models"
)

const noneLabel = "None"

// DefaultLanguage is used when no output language is configured.
const DefaultLanguage = "English"

// Composer renders prompts for one output language.
type Composer struct {
	language string
}

func NewComposer(language string) *Composer {
	if strings.TrimSpace(language) == "" {
		language = DefaultLanguage
	}
	return &Composer{language: language}
}

func (c *Composer) Language() string {
	return c.language
}

func (c *Composer) WorkoutSystemPrompt() string {
	return workoutSystemPrompt + fmt.Sprintf(languageInstruction, c.language)
}

func (c *Composer) MealSystemPrompt() string {
	return mealSystemPrompt + fmt.Sprintf(languageInstruction, c.language)
}

func (c *Composer) FoodSystemPrompt() string {
	return foodSystemPrompt + fmt.Sprintf(languageInstruction, c.language)
}

// WorkoutPrompt embeds every training-relevant profile field and the workout contract.
func (c *Composer) WorkoutPrompt(p models.Profile) string {
	return fmt.Sprintf(
		workoutPromptTemplate,
		p.Weight,
		p.Height,
		p.Age,
		p.Sex,
		p.DesiredWeight,
		p.ExperienceLevel,
		p.TrainingLocation,
		p.FocusArea,
		p.DaysPerWeek,
		joinTags(p.HealthConditions),
		joinTags(p.PhysicalLimitations),
		exampleJSON(workoutExample),
		p.DaysPerWeek,
	)
}

// MealPrompt embeds the profile, the calculated calorie target and macro split.
func (c *Composer) MealPrompt(p models.Profile, t metabolic.Targets) string {
	return fmt.Sprintf(
		mealPromptTemplate,
		p.Weight,
		p.DesiredWeight,
		p.Height,
		p.Age,
		p.Sex,
		p.Goal,
		t.TargetCalories,
		joinTags(p.DietaryRestrictions),
		p.DaysPerWeek,
		t.MacroSplit.String(),
		exampleJSON(mealExample(t.TargetCalories)),
	)
}

// FoodImagePrompt carries no profile data.
func (c *Composer) FoodImagePrompt() string {
	return fmt.Sprintf(foodImagePromptTemplate, exampleJSON(foodExample))
}

// joinTags renders a tag set, "None" when empty.
func joinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	if len(cleaned) == 0 {
		return noneLabel
	}
	return strings.Join(cleaned, ", ")
}
