package bikeshare

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
	"github.com/theoremus-urban-solutions/bikeshare-stats/formatter"
	"github.com/theoremus-urban-solutions/bikeshare-stats/observability"
	"github.com/theoremus-urban-solutions/bikeshare-stats/registry"
	"github.com/theoremus-urban-solutions/bikeshare-stats/selector"
	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

// Explorer runs analyses: load a filtered table, compute the report.
// It keeps no state between runs.
type Explorer struct {
	registry   *registry.Registry
	loader     *tripdata.Loader
	readOpts   tripdata.ReadOptions
	metrics    *observability.Metrics
	logger     *zap.Logger
	reportHook func(*stats.Report) error
}

// Option configures an Explorer
type Option func(*Explorer)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Explorer) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics records loads, routines and runs on m
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Explorer) { e.metrics = m }
}

// WithReadOptions overrides CSV parsing options
func WithReadOptions(opts tripdata.ReadOptions) Option {
	return func(e *Explorer) { e.readOpts = opts }
}

// WithReportHook is called with every report produced by Session, after
// it has been printed.
func WithReportHook(fn func(*stats.Report) error) Option {
	return func(e *Explorer) { e.reportHook = fn }
}

// NewExplorer creates an Explorer over the cities in reg.
func NewExplorer(reg *registry.Registry, opts ...Option) *Explorer {
	e := &Explorer{registry: reg, readOpts: tripdata.DefaultReadOptions(), logger: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	loaderOpts := []tripdata.LoaderOption{
		tripdata.WithReadOptions(e.readOpts),
		tripdata.WithLogger(e.logger),
	}
	if e.metrics != nil {
		loaderOpts = append(loaderOpts, tripdata.WithObserver(e.metrics))
	}
	e.loader = tripdata.NewLoader(reg, loaderOpts...)
	return e
}

// NewExplorerFromConfig wires registry and parse options from cfg.
func NewExplorerFromConfig(cfg config.AppConfig, opts ...Option) *Explorer {
	base := []Option{WithReadOptions(tripdata.ReadOptionsFromConfig(cfg.Data))}
	return NewExplorer(registry.FromConfig(cfg), append(base, opts...)...)
}

// Registry returns the dataset registry
func (e *Explorer) Registry() *registry.Registry { return e.registry }

// Analyze loads the selected trips and computes all four summaries.
func (e *Explorer) Analyze(sel selector.Selection) (*stats.Report, error) {
	runID := uuid.NewString()
	log := e.logger.With(zap.String("run_id", runID), zap.String("city", sel.City))

	table, err := e.loader.Load(sel.City, sel.Month, sel.Day)
	if err != nil {
		e.observeRun(observability.OutcomeError)
		log.Error("load failed", zap.Error(err))
		return nil, err
	}

	var computeOpts []stats.Option
	if e.metrics != nil {
		computeOpts = append(computeOpts, stats.WithObserver(e.metrics))
	}
	report, err := stats.Compute(table, stats.Filters{City: sel.City, Month: sel.Month, Day: sel.Day}, computeOpts...)
	if err != nil {
		var empty *stats.EmptyDatasetError
		if errors.As(err, &empty) {
			e.observeRun(observability.OutcomeEmpty)
			log.Info("no trips match filters", zap.String("month", sel.Month), zap.String("day", sel.Day))
		} else {
			e.observeRun(observability.OutcomeError)
			log.Error("compute failed", zap.Error(err))
		}
		return nil, err
	}
	report.RunID = runID
	e.observeRun(observability.OutcomeOK)
	log.Info("analysis complete", zap.Int("rows", report.Rows), zap.Int("skipped", report.Skipped))
	return report, nil
}

func (e *Explorer) observeRun(outcome string) {
	if e.metrics != nil {
		e.metrics.ObserveRun(outcome)
	}
}

// Session runs the interactive loop: select filters, print the report,
// offer a restart. Load and compute failures are reported and the user
// may restart. The session ends when the user declines or input ends.
func (e *Explorer) Session(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Hello! Let's explore some US bikeshare data!")
	sel := selector.New(e.registry, in, out, e.logger)
	for {
		s, err := sel.Select()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		report, err := e.Analyze(s)
		if err != nil {
			fmt.Fprintf(out, "Error occurred: %v. Try again!\n", err)
		} else {
			if err := formatter.WriteText(out, report); err != nil {
				return err
			}
			if e.reportHook != nil {
				if err := e.reportHook(report); err != nil {
					fmt.Fprintf(out, "Export failed: %v\n", err)
				}
			}
		}

		if !askRestart(sel.Reader(), out) {
			return nil
		}
	}
}

func askRestart(in *bufio.Reader, out io.Writer) bool {
	fmt.Fprint(out, "\nWould you like to restart? Enter yes or no.\n")
	answer, err := in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// Export renders a report and writes it to path, or to w when path is empty.
func Export(w io.Writer, r *stats.Report, format, path string) error {
	data, err := formatter.Render(format, r)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = w.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
