package tripdata

import (
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-stats/utils"
)

// Filter returns a new table holding the trips that match month and day.
// Either may be All. The month is a selectable month name (january..june);
// the day is a weekday name in any case. The input table is not modified,
// and filtering a filtered table again by the same values is a no-op.
func Filter(t *Table, month, day string) (*Table, error) {
	monthIdx := 0
	if !isAll(month) {
		idx, ok := utils.MonthIndex(month)
		if !ok {
			return nil, &InvalidMonthError{Month: month, Valid: utils.Months()}
		}
		monthIdx = idx
	}
	dayName := ""
	if !isAll(day) {
		name, ok := utils.NormalizeDay(day)
		if !ok {
			return nil, &InvalidDayError{Day: name, Valid: utils.Days()}
		}
		dayName = name
	}

	out := &Table{City: t.City, Columns: t.Columns, Skipped: t.Skipped}
	if monthIdx == 0 && dayName == "" {
		out.Trips = append([]Trip(nil), t.Trips...)
		return out, nil
	}
	for _, trip := range t.Trips {
		if monthIdx != 0 && trip.Month != monthIdx {
			continue
		}
		if dayName != "" && trip.DayOfWeek != dayName {
			continue
		}
		out.Trips = append(out.Trips, trip)
	}
	return out, nil
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, All)
}
