package models

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Count is a whole-number field filled in by the generator (sets, meal
// calories). It accepts decimals, rounded to the nearest integer, and numeric
// strings such as "3" or "3 sets". A string with no leading number decodes to 0.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = 0
		if fields := strings.Fields(s); len(fields) > 0 {
			if f, err := strconv.ParseFloat(fields[0], 64); err == nil {
				*c = Count(math.Round(f))
			}
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(Count(0))}
	}
	*c = Count(math.Round(f))
	return nil
}
