package tripdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
)

const (
	colStartTime    = "Start Time"
	colEndTime      = "End Time"
	colDuration     = "Trip Duration"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colUserType     = "User Type"
	colGender       = "Gender"
	colBirthYear    = "Birth Year"
)

var requiredColumns = []string{colStartTime, colStartStation, colEndStation, colDuration, colUserType}

// ReadOptions control CSV parsing
type ReadOptions struct {
	// TimeLayouts are tried in order for Start Time and End Time.
	TimeLayouts []string
	// Strict turns a malformed row into an error instead of skipping it.
	Strict bool
	// Location is used for timestamps without zone; UTC when nil.
	Location *time.Location
}

// DefaultReadOptions returns lenient parsing with the stock time layouts.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{TimeLayouts: append([]string(nil), config.DefaultTimeLayouts...)}
}

// ReadOptionsFromConfig derives parse options from the data section.
func ReadOptionsFromConfig(cfg config.DataConfig) ReadOptions {
	opts := DefaultReadOptions()
	if len(cfg.TimeLayouts) > 0 {
		opts.TimeLayouts = append([]string(nil), cfg.TimeLayouts...)
	}
	opts.Strict = cfg.Strict
	return opts
}

type columnIndex struct {
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	user         int
	gender       int
	birthYear    int
}

func indexHeader(head []string) (columnIndex, error) {
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	ci := columnIndex{
		startTime:    idx(colStartTime),
		endTime:      idx(colEndTime),
		duration:     idx(colDuration),
		startStation: idx(colStartStation),
		endStation:   idx(colEndStation),
		user:         idx(colUserType),
		gender:       idx(colGender),
		birthYear:    idx(colBirthYear),
	}
	var missing []string
	for _, col := range requiredColumns {
		if idx(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return ci, &MissingColumnError{Columns: missing}
	}
	return ci, nil
}

// ReadTable parses a trip CSV stream. The returned table is unfiltered.
func ReadTable(r io.Reader, opts ReadOptions) (*Table, error) {
	if len(opts.TimeLayouts) == 0 {
		opts.TimeLayouts = DefaultReadOptions().TimeLayouts
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	head, err := csvr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &MissingColumnError{Columns: append([]string(nil), requiredColumns...)}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	ci, err := indexHeader(head)
	if err != nil {
		return nil, err
	}

	t := &Table{Columns: Columns{Gender: ci.gender >= 0, BirthYear: ci.birthYear >= 0}}
	for {
		row, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("read trips: %w", err)
			}
			if opts.Strict {
				return nil, &MalformedRecordError{Line: perr.Line, Err: perr.Err}
			}
			t.Skipped++
			continue
		}
		trip, merr := parseRow(row, ci, opts)
		if merr != nil {
			if opts.Strict {
				merr.Line, _ = csvr.FieldPos(0)
				return nil, merr
			}
			t.Skipped++
			continue
		}
		t.Trips = append(t.Trips, trip)
	}
	return t, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseRow(row []string, ci columnIndex, opts ReadOptions) (Trip, *MalformedRecordError) {
	raw := field(row, ci.startTime)
	start, err := parseTime(raw, opts)
	if err != nil {
		return Trip{}, &MalformedRecordError{Column: colStartTime, Value: raw, Err: err}
	}
	trip := newTrip(start)

	raw = field(row, ci.duration)
	dur, err := strconv.ParseFloat(raw, 64)
	if err == nil && (dur < 0 || math.IsNaN(dur) || math.IsInf(dur, 0)) {
		err = errors.New("duration must be a non-negative number")
	}
	if err != nil {
		return Trip{}, &MalformedRecordError{Column: colDuration, Value: raw, Err: err}
	}
	trip.DurationSeconds = dur

	if raw := field(row, ci.endTime); raw != "" {
		if end, err := parseTime(raw, opts); err == nil {
			trip.EndTime = end
		}
	}
	trip.StartStation = field(row, ci.startStation)
	trip.EndStation = field(row, ci.endStation)
	trip.UserType = field(row, ci.user)
	if trip.UserType == "" {
		trip.UserType = UnknownUserType
	}
	if g := field(row, ci.gender); g != "" {
		trip.Demographics.Gender = g
		trip.Demographics.HasGender = true
	}
	if raw := field(row, ci.birthYear); raw != "" {
		if y, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(y) && !math.IsInf(y, 0) {
			trip.Demographics.BirthYear = int(y)
			trip.Demographics.HasBirthYear = true
		}
	}
	return trip, nil
}

func parseTime(raw string, opts ReadOptions) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	var lastErr error
	for _, layout := range opts.TimeLayouts {
		t, err := time.ParseInLocation(layout, raw, opts.Location)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
