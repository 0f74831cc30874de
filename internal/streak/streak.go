// Package streak computes consecutive-day check-in streaks over a
// habit's progress records.
package streak

import (
	"time"

	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/models"
)

// Compute returns the number of consecutive calendar days ending at
// today that have at least one progress record. Uniqueness is per
// calendar date, not per record: two records on the same day count
// once, and adjacent days satisfied by different records still chain.
//
// The walk is O(streak length): record timestamps are collapsed into a
// day set once, then each step back is a single membership check.
func Compute(records []models.Progress, today time.Time) int {
	days := DaySet(records, today.Location())

	streak := 0
	for check := today; ; check = check.AddDate(0, 0, -1) {
		if _, ok := days[check.Format(constants.DateFormat)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// DaySet collapses progress records into the set of distinct calendar
// dates (YYYY-MM-DD in the given location) they fall on. A record with
// no usable timestamp at all is treated as invalid and skipped rather
// than aborting the computation.
func DaySet(records []models.Progress, loc *time.Location) map[string]struct{} {
	days := make(map[string]struct{}, len(records))
	for _, r := range records {
		t := r.EffectiveTime()
		if t.IsZero() {
			continue
		}
		days[t.In(loc).Format(constants.DateFormat)] = struct{}{}
	}
	return days
}
