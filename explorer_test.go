package bikeshare

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
	"github.com/theoremus-urban-solutions/bikeshare-stats/observability"
	"github.com/theoremus-urban-solutions/bikeshare-stats/registry"
	"github.com/theoremus-urban-solutions/bikeshare-stats/selector"
	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

func testExplorer(opts ...Option) *Explorer {
	return NewExplorer(registry.Default("testdata"), opts...)
}

func TestAnalyze_ChicagoMarch(t *testing.T) {
	m := observability.NewMetrics()
	report, err := testExplorer(WithMetrics(m)).Analyze(selector.Selection{City: "chicago", Month: "march", Day: selector.All})
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 4, report.Rows)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "march", report.Time.Month)
	assert.Equal(t, 4, report.Time.MonthCount)
	assert.Equal(t, "Monday", report.Time.Day)
	assert.Equal(t, 8, report.Time.Hour)
	assert.Equal(t, stats.NamedCount{Name: "Canal St", Count: 2}, report.Stations.Start)
	assert.Equal(t, stats.NamedCount{Name: "Canal St - Clark St", Count: 1}, report.Stations.Trip)
	assert.Equal(t, int64(3420), report.Durations.TotalSeconds)
	assert.Equal(t, int64(855), report.Durations.MeanSeconds)

	require.NotNil(t, report.Users.Gender)
	assert.Equal(t, stats.NamedCount{Name: "Female", Count: 2}, report.Users.Gender.Counts[0])
	require.NotNil(t, report.Users.BirthYear)
	assert.Equal(t, 1985, report.Users.BirthYear.Earliest)
	assert.Equal(t, 2000, report.Users.BirthYear.Latest)

	count, err := testutil.GatherAndCount(m.Registry(), "bikeshare_runs_total", "bikeshare_loader_rows_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAnalyze_WashingtonOmitsDemographics(t *testing.T) {
	report, err := testExplorer().Analyze(selector.Selection{City: "washington", Month: selector.All, Day: selector.All})
	require.NoError(t, err)

	assert.Nil(t, report.Users.Gender)
	assert.Nil(t, report.Users.BirthYear)

	total := 0
	for _, c := range report.Users.UserTypes {
		total += c.Count
	}
	assert.Equal(t, report.Rows, total)
	// 1103.234 + 480.5 + 233.0 truncates to 1816
	assert.Equal(t, int64(1816), report.Durations.TotalSeconds)
	assert.Equal(t, int64(605), report.Durations.MeanSeconds)
}

func TestAnalyze_NewYorkMissingUserType(t *testing.T) {
	report, err := testExplorer().Analyze(selector.Selection{City: "new york city", Month: selector.All, Day: selector.All})
	require.NoError(t, err)
	assert.Contains(t, report.Users.UserTypes, stats.NamedCount{Name: tripdata.UnknownUserType, Count: 1})
	assert.Equal(t, "february", report.Time.Month)
	assert.Equal(t, "Wednesday", report.Time.Day)
}

func TestAnalyze_EmptySelection(t *testing.T) {
	m := observability.NewMetrics()
	_, err := testExplorer(WithMetrics(m)).Analyze(selector.Selection{City: "washington", Month: "january", Day: selector.All})
	var empty *stats.EmptyDatasetError
	require.True(t, errors.As(err, &empty))
}

func TestAnalyze_MissingDataSource(t *testing.T) {
	_, err := NewExplorer(registry.Default(t.TempDir())).Analyze(selector.Selection{City: "chicago", Month: selector.All, Day: selector.All})
	var notFound *tripdata.DataSourceNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestNewExplorerFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Dir = "testdata"
	cfg.Data.Strict = true

	_, err := NewExplorerFromConfig(cfg).Analyze(selector.Selection{City: "chicago", Month: selector.All, Day: selector.All})
	var malformed *tripdata.MalformedRecordError
	require.True(t, errors.As(err, &malformed))

	report, err := NewExplorerFromConfig(cfg).Analyze(selector.Selection{City: "washington", Month: selector.All, Day: selector.All})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Rows)
}

func TestSession_RestartAndDecline(t *testing.T) {
	var hooked []string
	exp := testExplorer(WithReportHook(func(r *stats.Report) error {
		hooked = append(hooked, r.Filters.City)
		return nil
	}))
	// washington/all/all, restart, invalid month, chicago/march/monday, decline
	input := strings.Join([]string{"3", "0", "0", "yes", "1", "9", "1", "3", "1", "no"}, "\n") + "\n"
	var out bytes.Buffer

	require.NoError(t, exp.Session(strings.NewReader(input), &out))

	text := out.String()
	assert.Equal(t, []string{"washington", "chicago"}, hooked)
	assert.Contains(t, text, `invalid month "9"`)
	assert.Contains(t, text, "Most common trip: Lincoln Memorial - Jefferson Dr, Count: 2")
	parts := strings.SplitN(text, "Calculating for: chicago", 2)
	require.Len(t, parts, 2)
	assert.NotContains(t, parts[0], "Counts of gender:")
	assert.Contains(t, parts[1], "Counts of gender:")
	assert.Equal(t, 2, strings.Count(text, "Would you like to restart?"))
}

func TestSession_ReportsErrorsAndContinues(t *testing.T) {
	exp := testExplorer()
	// washington in january has no trips; then restart and end of input
	input := "3\n1\n0\nyes\n"
	var out bytes.Buffer

	require.NoError(t, exp.Session(strings.NewReader(input), &out))
	assert.Contains(t, out.String(), "Error occurred: time: no trips match the selected filters")
}

func TestSession_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, testExplorer().Session(strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "Hello!")
}

func TestExport(t *testing.T) {
	report, err := testExplorer().Analyze(selector.Selection{City: "chicago", Month: selector.All, Day: "friday"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, report, "json", ""))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(2), decoded["rows"])

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, Export(nil, report, "pdf", path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	require.Error(t, Export(&buf, report, "yaml", ""))
}
