package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
)

var rule = strings.Repeat("-", 40)

// WriteText prints a report in the console layout
func WriteText(w io.Writer, r *stats.Report) error {
	tw := &textWriter{w: w}
	tw.printf("Filters: city=%s month=%s day=%s (%d trips", r.Filters.City, r.Filters.Month, r.Filters.Day, r.Rows)
	if r.Skipped > 0 {
		tw.printf(", %d malformed rows skipped", r.Skipped)
	}
	tw.printf(")\n%s\n", rule)

	if t := r.Time; t != nil {
		tw.printf("\nThe Most Frequent Times of Travel\n\n")
		tw.printf("Most common month: %s (%d trips)\n", t.Month, t.MonthCount)
		tw.printf("Most common day of week: %s (%d trips)\n", t.Day, t.DayCount)
		tw.printf("Most common start hour: %d (%d trips)\n", t.Hour, t.HourCount)
		tw.timing(r, stats.RoutineTime)
	}
	if s := r.Stations; s != nil {
		tw.printf("\nThe Most Popular Stations and Trip\n\n")
		tw.printf("Most common start station: %s, Count: %d\n", s.Start.Name, s.Start.Count)
		tw.printf("Most common end station: %s, Count: %d\n", s.End.Name, s.End.Count)
		tw.printf("Most common trip: %s, Count: %d\n", s.Trip.Name, s.Trip.Count)
		tw.timing(r, stats.RoutineStation)
	}
	if d := r.Durations; d != nil {
		tw.printf("\nTrip Duration\n\n")
		tw.printf("Total travel time: %s\n", d.Total)
		tw.printf("Mean travel time: %s\n", d.Mean)
		tw.timing(r, stats.RoutineDuration)
	}
	if u := r.Users; u != nil {
		tw.printf("\nUser Stats\n\n")
		tw.printf("Counts of user types:\n")
		tw.counts(u.UserTypes)
		if u.Gender != nil {
			tw.printf("Counts of gender:\n")
			tw.counts(u.Gender.Counts)
		}
		if b := u.BirthYear; b != nil {
			tw.printf("Earliest year of birth: %d\n", b.Earliest)
			tw.printf("Most recent year of birth: %d\n", b.Latest)
			tw.printf("Most common year of birth: %d\n", b.MostCommon)
		}
		tw.timing(r, stats.RoutineUser)
	}
	return tw.err
}

type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *textWriter) counts(cs []stats.NamedCount) {
	width := 0
	for _, c := range cs {
		width = max(width, len(c.Name))
	}
	for _, c := range cs {
		tw.printf("  %-*s %d\n", width, c.Name, c.Count)
	}
}

func (tw *textWriter) timing(r *stats.Report, routine string) {
	if t, ok := r.Timing(routine); ok {
		tw.printf("\nThis took %.6f seconds.\n", t.ElapsedSeconds)
	}
	tw.printf("%s\n", rule)
}
