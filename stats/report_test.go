package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

type statObserver map[string]int

func (o statObserver) ObserveStat(routine string, _ time.Duration) { o[routine]++ }

func fixedClock() func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
}

func TestCompute(t *testing.T) {
	tbl := table(
		tripRow{start: "A", end: "B", dur: 100},
		tripRow{start: "A", end: "B", dur: 100},
		tripRow{start: "C", end: "D", dur: 50},
	)
	tbl.Skipped = 4
	obs := statObserver{}

	r, err := Compute(tbl, Filters{Month: "march", Day: "all"}, WithObserver(obs), WithClock(fixedClock()))
	require.NoError(t, err)

	assert.Equal(t, "chicago", r.Filters.City)
	assert.Equal(t, 3, r.Rows)
	assert.Equal(t, 4, r.Skipped)
	require.NotNil(t, r.Time)
	require.NotNil(t, r.Stations)
	require.NotNil(t, r.Durations)
	require.NotNil(t, r.Users)
	assert.Equal(t, int64(250), r.Durations.TotalSeconds)

	require.Len(t, r.Timings, 4)
	timing, ok := r.Timing(RoutineDuration)
	require.True(t, ok)
	assert.Equal(t, time.Millisecond, timing.Elapsed)
	assert.InDelta(t, 0.001, timing.ElapsedSeconds, 1e-9)
	assert.Equal(t, statObserver{RoutineTime: 1, RoutineStation: 1, RoutineDuration: 1, RoutineUser: 1}, obs)
}

func TestCompute_EmptyTable(t *testing.T) {
	_, err := Compute(&tripdata.Table{}, Filters{City: "washington"})
	var emptyErr *EmptyDatasetError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, RoutineTime, emptyErr.Routine)
}
