// ABOUTME: Calorie estimation from a session's entry list.
// ABOUTME: Shared by the live session display and the save-time stamp.
package metrics

import (
	"math"

	"github.com/hsouza/gymlog/internal/models"
)

const (
	kcalPerSet          = 6
	kcalPerCardioMinute = 6
)

// EstimateCalories estimates the calories burned by a list of entries:
// 6 kcal per present weight set, 6 kcal per cardio minute. Stretches
// contribute nothing.
func EstimateCalories(entries models.Entries) int {
	total := 0.0
	for _, e := range entries {
		switch v := e.(type) {
		case models.WeightEntry:
			total += float64(v.Sets.Count() * kcalPerSet)
		case models.CardioEntry:
			if v.Minutes != nil {
				total += *v.Minutes * kcalPerCardioMinute
			}
		case models.StretchEntry:
			// no contribution
		}
	}
	return int(math.Round(total))
}
