package stats

import (
	"math"

	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
	"github.com/theoremus-urban-solutions/bikeshare-stats/utils"
)

// TimeStats finds the most frequent month, weekday and start hour.
func TimeStats(t *tripdata.Table) (*TimeSummary, error) {
	if t.Empty() {
		return nil, &EmptyDatasetError{Routine: RoutineTime}
	}
	months, days, hours := newCounter[int](), newCounter[string](), newCounter[int]()
	for _, trip := range t.Trips {
		months.add(trip.Month)
		days.add(trip.DayOfWeek)
		hours.add(trip.Hour)
	}
	m, _ := months.mode()
	d, _ := days.mode()
	h, _ := hours.mode()
	return &TimeSummary{
		Month:      utils.MonthLabel(m.Value),
		MonthCount: m.Count,
		Day:        d.Value,
		DayCount:   d.Count,
		Hour:       h.Value,
		HourCount:  h.Count,
	}, nil
}

// TripKey joins start and end station into the composite trip name.
func TripKey(start, end string) string {
	return start + " - " + end
}

// StationStats finds the most used start station, end station and
// start-end combination.
func StationStats(t *tripdata.Table) (*StationSummary, error) {
	if t.Empty() {
		return nil, &EmptyDatasetError{Routine: RoutineStation}
	}
	starts, ends, pairs := newCounter[string](), newCounter[string](), newCounter[string]()
	for _, trip := range t.Trips {
		starts.add(trip.StartStation)
		ends.add(trip.EndStation)
		pairs.add(TripKey(trip.StartStation, trip.EndStation))
	}
	s, _ := starts.mode()
	e, _ := ends.mode()
	p, _ := pairs.mode()
	return &StationSummary{
		Start: NamedCount{Name: s.Value, Count: s.Count},
		End:   NamedCount{Name: e.Value, Count: e.Count},
		Trip:  NamedCount{Name: p.Value, Count: p.Count},
	}, nil
}

// DurationStats sums and averages trip durations.
func DurationStats(t *tripdata.Table) (*DurationSummary, error) {
	if t.Empty() {
		return nil, &EmptyDatasetError{Routine: RoutineDuration}
	}
	var sum float64
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, trip := range t.Trips {
		d := trip.DurationSeconds
		sum += d
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	n := len(t.Trips)
	total := int64(sum)
	mean := int64(sum / float64(n))
	return &DurationSummary{
		Trips:        n,
		TotalSeconds: total,
		MeanSeconds:  mean,
		MinSeconds:   int64(lo),
		MaxSeconds:   int64(hi),
		Total:        utils.FormatDuration(total),
		Mean:         utils.FormatDuration(mean),
	}, nil
}

// UserStats counts user types and, where the city records them, genders
// and birth years.
func UserStats(t *tripdata.Table) (*UserSummary, error) {
	if t.Empty() {
		return nil, &EmptyDatasetError{Routine: RoutineUser}
	}
	types, genders, years := newCounter[string](), newCounter[string](), newCounter[int]()
	earliest, latest, seenYear := 0, 0, false
	for _, trip := range t.Trips {
		types.add(trip.UserType)
		demo := trip.Demographics
		if t.Columns.Gender && demo.HasGender {
			genders.add(demo.Gender)
		}
		if t.Columns.BirthYear && demo.HasBirthYear {
			y := demo.BirthYear
			if !seenYear || y < earliest {
				earliest = y
			}
			if !seenYear || y > latest {
				latest = y
			}
			seenYear = true
			years.add(y)
		}
	}

	out := &UserSummary{UserTypes: toNamed(types.distribution())}
	if t.Columns.Gender {
		out.Gender = &GenderSummary{Counts: toNamed(genders.distribution())}
	}
	if y, ok := years.mode(); t.Columns.BirthYear && ok {
		out.BirthYear = &BirthYearSummary{
			Earliest:        earliest,
			Latest:          latest,
			MostCommon:      y.Value,
			MostCommonCount: y.Count,
		}
	}
	return out, nil
}
