package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		raw  string
		want Count
	}{
		{`3`, 3},
		{`412.5`, 413},
		{`412.4`, 412},
		{`"3"`, 3},
		{`"3 sets"`, 3},
		{`" 2.6 "`, 3},
		{`"as many as possible"`, 0},
		{`""`, 0},
		{`null`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			var c Count
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &c))
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestCount_RejectsNonNumbers(t *testing.T) {
	var ex Exercise
	err := json.Unmarshal([]byte(`{"name":"Squat","sets":true}`), &ex)
	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestCount_LenientPayloads(t *testing.T) {
	var ex Exercise
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Squat","sets":"4","reps":"10"}`), &ex))
	assert.Equal(t, Count(4), ex.Sets)

	var meal Meal
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Lunch","totalCalories":412.5}`), &meal))
	assert.Equal(t, Count(413), meal.TotalCalories)

	out, err := json.Marshal(meal)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"totalCalories":413`)
}
