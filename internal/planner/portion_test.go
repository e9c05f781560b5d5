package planner

import (
	"math"
	"testing"

	"NextShape_V0.1/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func scannedRice() models.ScannedFood {
	return models.ScannedFood{
		Name:               "White rice",
		Portion:            150,
		Calories:           195,
		Protein:            4,
		Carbs:              42,
		Fats:               1,
		Fiber:              ptr(1),
		Sodium:             ptr(3),
		CalorieLevel:       models.CalorieLevelLow,
		NutritionalQuality: models.QualityModerate,
		Recommendation:     models.RecommendMaintenance,
	}
}

func TestRescalePortion_Proportional(t *testing.T) {
	food := scannedRice()

	scaled, err := RescalePortion(food, 300)
	require.NoError(t, err)

	assert.Equal(t, 300.0, scaled.Portion)
	assert.Equal(t, 390.0, scaled.Calories)
	assert.Equal(t, 8.0, scaled.Protein)
	assert.Equal(t, 84.0, scaled.Carbs)
	assert.Equal(t, 2.0, scaled.Fats)
	require.NotNil(t, scaled.Fiber)
	assert.Equal(t, 2.0, *scaled.Fiber)
	require.NotNil(t, scaled.Sodium)
	assert.Equal(t, 6.0, *scaled.Sodium)

	// Classification fields are carried over, not recomputed.
	assert.Equal(t, models.CalorieLevelLow, scaled.CalorieLevel)
	assert.Equal(t, food.Name, scaled.Name)

	// The input is untouched.
	assert.Equal(t, 150.0, food.Portion)
	assert.Equal(t, 1.0, *food.Fiber)
}

func TestRescalePortion_Rounds(t *testing.T) {
	food := scannedRice()

	scaled, err := RescalePortion(food, 100)
	require.NoError(t, err)

	assert.Equal(t, math.Round(195*100.0/150), scaled.Calories)
	assert.Equal(t, 130.0, scaled.Calories)
	assert.Equal(t, 3.0, scaled.Protein) // 2.67
	assert.Equal(t, 28.0, scaled.Carbs)
	assert.Equal(t, 1.0, scaled.Fats) // 0.67
}

func TestRescalePortion_AbsentOptionalFieldsStayAbsent(t *testing.T) {
	food := scannedRice()
	food.Fiber = nil
	food.Sodium = nil

	scaled, err := RescalePortion(food, 75)
	require.NoError(t, err)
	assert.Nil(t, scaled.Fiber)
	assert.Nil(t, scaled.Sugar)
	assert.Nil(t, scaled.Sodium)
}

func TestRescalePortion_SamePortionIsNoOp(t *testing.T) {
	food := scannedRice()
	food.Protein = 4.4

	scaled, err := RescalePortion(food, food.Portion)
	require.NoError(t, err)
	assert.Equal(t, food, scaled)

	// No aliasing of optional fields.
	*scaled.Fiber = 99
	assert.Equal(t, 1.0, *food.Fiber)
}

func TestRescalePortion_RoundTrip(t *testing.T) {
	food := scannedRice()

	for _, r := range []float64{0.5, 1.5, 2, 3} {
		there, err := RescalePortion(food, food.Portion*r)
		require.NoError(t, err)
		back, err := RescalePortion(there, food.Portion)
		require.NoError(t, err)

		assert.InDelta(t, food.Calories, back.Calories, 1, "r=%v", r)
		assert.InDelta(t, food.Protein, back.Protein, 1, "r=%v", r)
		assert.InDelta(t, food.Carbs, back.Carbs, 1, "r=%v", r)
		assert.InDelta(t, food.Fats, back.Fats, 1, "r=%v", r)
		assert.InDelta(t, *food.Fiber, *back.Fiber, 1, "r=%v", r)
		assert.InDelta(t, *food.Sodium, *back.Sodium, 1, "r=%v", r)
	}
}

func TestRescalePortion_InvalidPortion(t *testing.T) {
	food := scannedRice()

	_, err := RescalePortion(food, 0)
	assert.ErrorIs(t, err, ErrInvalidPortion)

	_, err = RescalePortion(food, -20)
	assert.ErrorIs(t, err, ErrInvalidPortion)

	food.Portion = 0
	_, err = RescalePortion(food, 100)
	assert.ErrorIs(t, err, ErrInvalidPortion)
}
