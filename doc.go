// Package bikeshare explores bikeshare trip records.
//
// A user picks a city and optional month and weekday filters; the
// Explorer loads the city's CSV file, filters it and reports popular
// travel times, popular stations, trip duration totals and rider
// demographics.
//
// Usage:
//
//	import bikeshare "github.com/theoremus-urban-solutions/bikeshare-stats"
//
//	exp := bikeshare.NewExplorer(registry.Default("data"))
//	report, err := exp.Analyze(selector.Selection{City: "chicago", Month: "march", Day: "all"})
//
// Interactive use goes through Explorer.Session, which wraps the
// selector's prompt loop and offers a restart after every report.
package bikeshare
