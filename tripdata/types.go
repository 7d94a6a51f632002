package tripdata

import (
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-stats/utils"
)

// All disables the month or day filter
const All = utils.All

// UnknownUserType replaces an empty User Type cell
const UnknownUserType = "Unknown"

// Demographics holds the city-dependent rider attributes. Each field has
// its own presence flag; an empty cell leaves it unset.
type Demographics struct {
	Gender       string
	HasGender    bool
	BirthYear    int
	HasBirthYear bool
}

// Trip is one rental record plus the temporal fields derived from its
// start time.
type Trip struct {
	StartTime       time.Time
	EndTime         time.Time
	StartStation    string
	EndStation      string
	DurationSeconds float64
	UserType        string
	Demographics    Demographics

	Month     int    // 1-12
	DayOfWeek string // "Monday" ... "Sunday"
	Hour      int    // 0-23
}

// Columns records which optional columns the source provided
type Columns struct {
	Gender    bool
	BirthYear bool
}

// Table is the in-memory trip set for one city. Once returned by the
// loader it is not modified; Filter builds new tables.
type Table struct {
	City    string
	Trips   []Trip
	Columns Columns
	// Skipped counts rows dropped for malformed start time or duration.
	Skipped int
}

// Len is the number of trips in the table
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Trips)
}

// Empty reports whether the table holds no trips
func (t *Table) Empty() bool { return t.Len() == 0 }

func newTrip(start time.Time) Trip {
	return Trip{
		StartTime: start,
		Month:     int(start.Month()),
		DayOfWeek: start.Weekday().String(),
		Hour:      start.Hour(),
	}
}
