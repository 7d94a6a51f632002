package tripdata

import (
	"fmt"
	"strings"
)

// DataSourceNotFoundError is returned when a city's file is missing or cannot be read
type DataSourceNotFoundError struct {
	City string
	Path string
	Err  error
}

func (e *DataSourceNotFoundError) Error() string {
	return fmt.Sprintf("data source for %s (%s) not available: %v", e.City, e.Path, e.Err)
}

func (e *DataSourceNotFoundError) Unwrap() error { return e.Err }

// MalformedRecordError reports a row whose field could not be parsed
type MalformedRecordError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("malformed record at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("malformed record at line %d: column %q value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// MissingColumnError is returned when the header lacks required columns
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// InvalidDayError is returned for a day filter that is not a weekday name
type InvalidDayError struct {
	Day   string
	Valid []string
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("day %q is not available, use one of: %s", e.Day, strings.Join(e.Valid, ", "))
}

// InvalidMonthError is returned for a month filter outside the selectable months
type InvalidMonthError struct {
	Month string
	Valid []string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("month %q is not available, use one of: %s", e.Month, strings.Join(e.Valid, ", "))
}
