package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// QuizStep describes one question of the onboarding questionnaire.
type QuizStep struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Type        string   `json:"type"` // number, select, multi-select
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Min         int      `json:"min,omitempty"`
	Max         int      `json:"max,omitempty"`
}

// noneOption is dropped from multi-select answers.
const noneOption = "None"

var QuizSteps = []QuizStep{
	{ID: "weight", Question: "What is your current weight?", Type: "number", Unit: "kg", Min: MinWeight, Max: MaxWeight, Placeholder: "e.g. 70"},
	{ID: "height", Question: "How tall are you?", Type: "number", Unit: "cm", Min: MinHeight, Max: MaxHeight, Placeholder: "e.g. 170"},
	{ID: "age", Question: "How old are you?", Type: "number", Unit: "years", Min: MinAge, Max: MaxAge, Placeholder: "e.g. 25"},
	{ID: "sex", Question: "What is your sex?", Type: "select", Options: []string{"Male", "Female", "Other"}},
	{ID: "healthConditions", Question: "Do you have any health conditions?", Type: "multi-select", Options: []string{
		noneOption, "Hypertension", "Diabetes", "Heart problems", "Respiratory problems", "Hernia", "Recent injury", "Other",
	}},
	{ID: "physicalLimitations", Question: "Do you have any physical limitations?", Type: "multi-select", Options: []string{
		noneOption, "Cannot run", "Cannot squat", "Knee problems", "Back problems", "Reduced mobility", "Shoulder problems", "Other",
	}},
	{ID: "desiredWeight", Question: "What is your desired weight?", Type: "number", Unit: "kg", Min: MinWeight, Max: MaxWeight, Placeholder: "e.g. 65"},
	{ID: "experienceLevel", Question: "What is your training experience?", Type: "select", Options: []string{"Beginner", "Intermediate", "Advanced"}},
	{ID: "trainingLocation", Question: "Where do you want to train?", Type: "select", Options: []string{"Home", "Gym", "Outdoors"}},
	{ID: "focusArea", Question: "Which body area do you want to develop?", Type: "select", Options: []string{
		"Full body", "Abs", "Legs", "Glutes", "Chest", "Back", "Arms",
	}},
	{ID: "daysPerWeek", Question: "How many days per week do you want to train?", Type: "select", Options: []string{
		"2 days", "3 days", "4 days", "5 days", "6 days",
	}},
	{ID: "goal", Question: "What is your main goal?", Type: "select", Options: []string{"Weight loss", "Maintenance", "Muscle gain"}},
	{ID: "dietaryRestrictions", Question: "Do you have any dietary restrictions?", Type: "multi-select", Options: []string{
		noneOption, "Lactose intolerance", "Gluten allergy", "Vegetarian", "Vegan", "Other",
	}},
}

var (
	sexLabels = map[string]Sex{"Male": SexMale, "Female": SexFemale, "Other": SexOther}

	experienceLabels = map[string]ExperienceLevel{
		"Beginner":     ExperienceBeginner,
		"Intermediate": ExperienceIntermediate,
		"Advanced":     ExperienceAdvanced,
	}

	locationLabels = map[string]TrainingLocation{"Home": LocationHome, "Gym": LocationGym, "Outdoors": LocationOutdoor}

	focusLabels = map[string]FocusArea{
		"Full body": FocusFullBody,
		"Abs":       FocusAbs,
		"Legs":      FocusLegs,
		"Glutes":    FocusGlutes,
		"Chest":     FocusChest,
		"Back":      FocusBack,
		"Arms":      FocusArms,
	}

	goalLabels = map[string]Goal{"Weight loss": GoalWeightLoss, "Maintenance": GoalMaintenance, "Muscle gain": GoalMuscleGain}
)

// QuizAnswers maps a step ID to the raw answer decoded from JSON:
// float64 for number steps, string for select and []interface{} for multi-select.
type QuizAnswers map[string]interface{}

// ToProfile converts questionnaire answers into a validated Profile.
func (a QuizAnswers) ToProfile() (Profile, error) {
	var (
		p   Profile
		err error
	)

	if p.Weight, err = a.number("weight"); err != nil {
		return Profile{}, err
	}
	if p.Height, err = a.number("height"); err != nil {
		return Profile{}, err
	}
	age, err := a.number("age")
	if err != nil {
		return Profile{}, err
	}
	if age != math.Trunc(age) {
		return Profile{}, fmt.Errorf("invalid answer for age: %v", age)
	}
	p.Age = int(age)
	if p.DesiredWeight, err = a.number("desiredWeight"); err != nil {
		return Profile{}, err
	}

	label, err := a.text("sex")
	if err != nil {
		return Profile{}, err
	}
	p.Sex = sexLabels[label]

	if label, err = a.text("experienceLevel"); err != nil {
		return Profile{}, err
	}
	p.ExperienceLevel = experienceLabels[label]

	if label, err = a.text("trainingLocation"); err != nil {
		return Profile{}, err
	}
	p.TrainingLocation = locationLabels[label]

	if label, err = a.text("focusArea"); err != nil {
		return Profile{}, err
	}
	p.FocusArea = focusLabels[label]

	if label, err = a.text("goal"); err != nil {
		return Profile{}, err
	}
	p.Goal = goalLabels[label]

	if label, err = a.text("daysPerWeek"); err != nil {
		return Profile{}, err
	}
	// "4 days" -> 4
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return Profile{}, fmt.Errorf("invalid answer for daysPerWeek: %q", label)
	}
	if p.DaysPerWeek, err = strconv.Atoi(fields[0]); err != nil {
		return Profile{}, fmt.Errorf("invalid answer for daysPerWeek: %q", label)
	}

	p.HealthConditions = a.tags("healthConditions")
	p.PhysicalLimitations = a.tags("physicalLimitations")
	p.DietaryRestrictions = a.tags("dietaryRestrictions")

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (a QuizAnswers) number(id string) (float64, error) {
	switch v := a[id].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid answer for %s: %q", id, v)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("missing answer for %s", id)
	default:
		return 0, fmt.Errorf("invalid answer for %s", id)
	}
}

func (a QuizAnswers) text(id string) (string, error) {
	v, ok := a[id].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("missing answer for %s", id)
	}
	return v, nil
}

// tags returns the selected options, without the "None" choice.
// A missing answer yields an empty, non-nil slice.
func (a QuizAnswers) tags(id string) []string {
	out := []string{}
	raw, _ := a[id].([]interface{})
	for _, item := range raw {
		s, ok := item.(string)
		if !ok || s == "" || s == noneOption {
			continue
		}
		out = append(out, s)
	}
	return out
}
