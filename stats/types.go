package stats

// Routine names, used for errors, timings and metrics labels.
const (
	RoutineTime     = "time"
	RoutineStation  = "station"
	RoutineDuration = "duration"
	RoutineUser     = "user"
)

// NamedCount is a categorical value with its number of occurrences
type NamedCount struct {
	Name  string `json:"name" xml:"name,attr"`
	Count int    `json:"count" xml:"count,attr"`
}

// TimeSummary holds the most frequent times of travel
type TimeSummary struct {
	Month      string `json:"month" xml:"Month"`
	MonthCount int    `json:"monthCount" xml:"MonthCount"`
	Day        string `json:"day" xml:"Day"`
	DayCount   int    `json:"dayCount" xml:"DayCount"`
	Hour       int    `json:"hour" xml:"Hour"`
	HourCount  int    `json:"hourCount" xml:"HourCount"`
}

// StationSummary holds the most popular stations and trip
type StationSummary struct {
	Start NamedCount `json:"start" xml:"Start"`
	End   NamedCount `json:"end" xml:"End"`
	Trip  NamedCount `json:"trip" xml:"Trip"`
}

// DurationSummary holds trip duration aggregates in whole seconds.
// Fractional seconds are truncated, not rounded.
type DurationSummary struct {
	Trips        int    `json:"trips" xml:"Trips"`
	TotalSeconds int64  `json:"totalSeconds" xml:"TotalSeconds"`
	MeanSeconds  int64  `json:"meanSeconds" xml:"MeanSeconds"`
	MinSeconds   int64  `json:"minSeconds" xml:"MinSeconds"`
	MaxSeconds   int64  `json:"maxSeconds" xml:"MaxSeconds"`
	Total        string `json:"total" xml:"Total"`
	Mean         string `json:"mean" xml:"Mean"`
}

// GenderSummary is the gender distribution of a table with a Gender column
type GenderSummary struct {
	Counts []NamedCount `json:"counts" xml:"Count"`
}

// BirthYearSummary holds birth year extremes and mode
type BirthYearSummary struct {
	Earliest        int `json:"earliest" xml:"Earliest"`
	Latest          int `json:"latest" xml:"Latest"`
	MostCommon      int `json:"mostCommon" xml:"MostCommon"`
	MostCommonCount int `json:"mostCommonCount" xml:"MostCommonCount"`
}

// UserSummary holds rider statistics. Gender and BirthYear are nil when
// the city does not provide those columns.
type UserSummary struct {
	UserTypes []NamedCount      `json:"userTypes" xml:"UserTypes>Count"`
	Gender    *GenderSummary    `json:"gender,omitempty" xml:"Gender,omitempty"`
	BirthYear *BirthYearSummary `json:"birthYear,omitempty" xml:"BirthYear,omitempty"`
}

func toNamed(dist []Count[string]) []NamedCount {
	out := make([]NamedCount, len(dist))
	for i, c := range dist {
		out[i] = NamedCount{Name: c.Value, Count: c.Count}
	}
	return out
}
