package stats

import "fmt"

// EmptyDatasetError is returned when a routine is given a table without trips
type EmptyDatasetError struct {
	Routine string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("%s: no trips match the selected filters", e.Routine)
}
