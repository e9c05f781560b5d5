/*
Package models holds the domain records exchanged between the questionnaire,
the plan generator and the HTTP layer.
*/
package models

import (
	"fmt"
	"strings"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

type TrainingLocation string

const (
	LocationHome    TrainingLocation = "home"
	LocationGym     TrainingLocation = "gym"
	LocationOutdoor TrainingLocation = "outdoor"
)

type FocusArea string

const (
	FocusFullBody FocusArea = "full-body"
	FocusAbs      FocusArea = "abs"
	FocusLegs     FocusArea = "legs"
	FocusGlutes   FocusArea = "glutes"
	FocusChest    FocusArea = "chest"
	FocusBack     FocusArea = "back"
	FocusArms     FocusArea = "arms"
)

// Goal drives both the calorie adjustment and the macro split.
type Goal string

const (
	GoalWeightLoss  Goal = "weight-loss"
	GoalMaintenance Goal = "maintenance"
	GoalMuscleGain  Goal = "muscle-gain"
)

// Profile is the physical profile collected by the questionnaire.
// It is treated as immutable once built.
type Profile struct {
	// Physical data
	Weight        float64 `json:"weight"` // kg
	Height        float64 `json:"height"` // cm
	Age           int     `json:"age"`
	Sex           Sex     `json:"sex"`
	DesiredWeight float64 `json:"desiredWeight"` // kg

	// Health
	HealthConditions    []string `json:"healthConditions"`
	PhysicalLimitations []string `json:"physicalLimitations"`

	// Training
	ExperienceLevel  ExperienceLevel  `json:"experienceLevel"`
	TrainingLocation TrainingLocation `json:"trainingLocation"`
	FocusArea        FocusArea        `json:"focusArea"`
	DaysPerWeek      int              `json:"daysPerWeek"`

	// Nutrition
	Goal                Goal     `json:"goal"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

// Accepted ranges, shared with the questionnaire steps.
const (
	MinWeight      = 30
	MaxWeight      = 300
	MinHeight      = 100
	MaxHeight      = 250
	MinAge         = 13
	MaxAge         = 100
	MinDaysPerWeek = 2
	MaxDaysPerWeek = 6
)

var (
	validSexes      = map[Sex]bool{SexMale: true, SexFemale: true, SexOther: true}
	validLevels     = map[ExperienceLevel]bool{ExperienceBeginner: true, ExperienceIntermediate: true, ExperienceAdvanced: true}
	validLocations  = map[TrainingLocation]bool{LocationHome: true, LocationGym: true, LocationOutdoor: true}
	validFocusAreas = map[FocusArea]bool{
		FocusFullBody: true, FocusAbs: true, FocusLegs: true, FocusGlutes: true,
		FocusChest: true, FocusBack: true, FocusArms: true,
	}
	validGoals = map[Goal]bool{GoalWeightLoss: true, GoalMaintenance: true, GoalMuscleGain: true}
)

// Validate checks the profile against the questionnaire limits.
// The metabolic formulas never reject input, so this is the only range check.
func (p *Profile) Validate() error {
	var problems []string

	if p.Weight < MinWeight || p.Weight > MaxWeight {
		problems = append(problems, fmt.Sprintf("weight must be between %d and %d kg", MinWeight, MaxWeight))
	}
	if p.DesiredWeight < MinWeight || p.DesiredWeight > MaxWeight {
		problems = append(problems, fmt.Sprintf("desiredWeight must be between %d and %d kg", MinWeight, MaxWeight))
	}
	if p.Height < MinHeight || p.Height > MaxHeight {
		problems = append(problems, fmt.Sprintf("height must be between %d and %d cm", MinHeight, MaxHeight))
	}
	if p.Age < MinAge || p.Age > MaxAge {
		problems = append(problems, fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge))
	}
	if p.DaysPerWeek < MinDaysPerWeek || p.DaysPerWeek > MaxDaysPerWeek {
		problems = append(problems, fmt.Sprintf("daysPerWeek must be between %d and %d", MinDaysPerWeek, MaxDaysPerWeek))
	}
	if !validSexes[p.Sex] {
		problems = append(problems, fmt.Sprintf("invalid sex '%s'", p.Sex))
	}
	if !validLevels[p.ExperienceLevel] {
		problems = append(problems, fmt.Sprintf("invalid experienceLevel '%s'", p.ExperienceLevel))
	}
	if !validLocations[p.TrainingLocation] {
		problems = append(problems, fmt.Sprintf("invalid trainingLocation '%s'", p.TrainingLocation))
	}
	if !validFocusAreas[p.FocusArea] {
		problems = append(problems, fmt.Sprintf("invalid focusArea '%s'", p.FocusArea))
	}
	if !validGoals[p.Goal] {
		problems = append(problems, fmt.Sprintf("invalid goal '%s'", p.Goal))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid profile: %s", strings.Join(problems, "; "))
	}
	return nil
}
