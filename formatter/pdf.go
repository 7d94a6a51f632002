package formatter

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
)

// BuildPDF renders a one-page A4 summary of a report
func BuildPDF(r *stats.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bikeshare report", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Bikeshare trip statistics")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	line := func(s string) {
		pdf.Cell(0, 6, s)
		pdf.Ln(6)
	}
	heading := func(s string) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, s)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}

	line(fmt.Sprintf("City: %s   Month: %s   Day: %s", r.Filters.City, r.Filters.Month, r.Filters.Day))
	line(fmt.Sprintf("Trips: %d   Skipped rows: %d", r.Rows, r.Skipped))
	line("Generated: " + r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	if t := r.Time; t != nil {
		heading("Most frequent times of travel")
		line(fmt.Sprintf("Month: %s (%d)", t.Month, t.MonthCount))
		line(fmt.Sprintf("Day of week: %s (%d)", t.Day, t.DayCount))
		line(fmt.Sprintf("Start hour: %d (%d)", t.Hour, t.HourCount))
	}
	if s := r.Stations; s != nil {
		heading("Most popular stations and trip")
		line(fmt.Sprintf("Start station: %s (%d)", s.Start.Name, s.Start.Count))
		line(fmt.Sprintf("End station: %s (%d)", s.End.Name, s.End.Count))
		line(fmt.Sprintf("Trip: %s (%d)", s.Trip.Name, s.Trip.Count))
	}
	if d := r.Durations; d != nil {
		heading("Trip duration")
		line("Total travel time: " + d.Total)
		line("Mean travel time: " + d.Mean)
	}
	if u := r.Users; u != nil {
		heading("Users")
		for _, c := range u.UserTypes {
			line(fmt.Sprintf("%s: %d", c.Name, c.Count))
		}
		if u.Gender != nil {
			for _, c := range u.Gender.Counts {
				line(fmt.Sprintf("%s: %d", c.Name, c.Count))
			}
		}
		if b := u.BirthYear; b != nil {
			line(fmt.Sprintf("Birth year: earliest %d, most recent %d, most common %d", b.Earliest, b.Latest, b.MostCommon))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
