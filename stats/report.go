package stats

import (
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

// Observer receives the elapsed time of each routine.
type Observer interface {
	ObserveStat(routine string, elapsed time.Duration)
}

// Timing is how long one routine took
type Timing struct {
	Routine        string        `json:"routine" xml:"routine,attr"`
	Elapsed        time.Duration `json:"-" xml:"-"`
	ElapsedSeconds float64       `json:"elapsedSeconds" xml:"seconds,attr"`
}

// Filters echoes the selection a report was computed for
type Filters struct {
	City  string `json:"city" xml:"city,attr"`
	Month string `json:"month" xml:"month,attr"`
	Day   string `json:"day" xml:"day,attr"`
}

// Report bundles the four summaries of one analysis run
type Report struct {
	RunID       string           `json:"runId" xml:"runId,attr"`
	GeneratedAt time.Time        `json:"generatedAt" xml:"generatedAt,attr"`
	Filters     Filters          `json:"filters" xml:"Filters"`
	Rows        int              `json:"rows" xml:"Rows"`
	Skipped     int              `json:"skippedRows" xml:"SkippedRows"`
	Time        *TimeSummary     `json:"time" xml:"Time"`
	Stations    *StationSummary  `json:"stations" xml:"Stations"`
	Durations   *DurationSummary `json:"durations" xml:"Durations"`
	Users       *UserSummary     `json:"users" xml:"Users"`
	Timings     []Timing         `json:"timings" xml:"Timings>Timing"`
}

// Timing returns the recorded timing of a routine.
func (r *Report) Timing(routine string) (Timing, bool) {
	for _, t := range r.Timings {
		if t.Routine == routine {
			return t, true
		}
	}
	return Timing{}, false
}

type computeConfig struct {
	observer Observer
	now      func() time.Time
}

// Option configures Compute
type Option func(*computeConfig)

// WithObserver reports routine timings to o
func WithObserver(o Observer) Option {
	return func(c *computeConfig) { c.observer = o }
}

// WithClock replaces time.Now, for deterministic reports
func WithClock(now func() time.Time) Option {
	return func(c *computeConfig) { c.now = now }
}

// Compute runs all four routines against the table. The first routine
// error, an *EmptyDatasetError for an empty table, is returned as is.
func Compute(t *tripdata.Table, filters Filters, opts ...Option) (*Report, error) {
	cfg := computeConfig{now: time.Now}
	for _, o := range opts {
		o(&cfg)
	}
	r := &Report{
		GeneratedAt: cfg.now().UTC(),
		Filters:     filters,
		Rows:        t.Len(),
		Skipped:     t.Skipped,
	}
	if r.Filters.City == "" {
		r.Filters.City = t.City
	}

	run := func(routine string, fn func() error) error {
		began := cfg.now()
		if err := fn(); err != nil {
			return err
		}
		elapsed := cfg.now().Sub(began)
		r.Timings = append(r.Timings, Timing{Routine: routine, Elapsed: elapsed, ElapsedSeconds: elapsed.Seconds()})
		if cfg.observer != nil {
			cfg.observer.ObserveStat(routine, elapsed)
		}
		return nil
	}

	steps := []struct {
		routine string
		fn      func() error
	}{
		{RoutineTime, func() (err error) { r.Time, err = TimeStats(t); return }},
		{RoutineStation, func() (err error) { r.Stations, err = StationStats(t); return }},
		{RoutineDuration, func() (err error) { r.Durations, err = DurationStats(t); return }},
		{RoutineUser, func() (err error) { r.Users, err = UserStats(t); return }},
	}
	for _, step := range steps {
		if err := run(step.routine, step.fn); err != nil {
			return nil, err
		}
	}
	return r, nil
}
