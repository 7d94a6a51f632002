package tripdata

import (
	"errors"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/bikeshare-stats/registry"
)

// LoadObserver receives the outcome of every successful file read.
type LoadObserver interface {
	ObserveLoad(city string, rows, skipped int, elapsed time.Duration)
}

// Loader reads and filters a city's trips
type Loader struct {
	registry *registry.Registry
	opts     ReadOptions
	logger   *zap.Logger
	observer LoadObserver
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithReadOptions overrides CSV parsing options
func WithReadOptions(opts ReadOptions) LoaderOption {
	return func(l *Loader) { l.opts = opts }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithObserver reports row counts and timings to o
func WithObserver(o LoadObserver) LoaderOption {
	return func(l *Loader) { l.observer = o }
}

// NewLoader creates a loader resolving cities through r.
func NewLoader(r *registry.Registry, opts ...LoaderOption) *Loader {
	l := &Loader{registry: r, opts: DefaultReadOptions(), logger: zap.NewNop()}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load reads the city's file and applies the month and day filters.
// The day is checked here as well as in the selector because Load is
// also used directly by the one-shot CLI.
func (l *Loader) Load(city, month, day string) (*Table, error) {
	full, err := l.LoadCity(city)
	if err != nil {
		return nil, err
	}
	filtered, err := Filter(full, month, day)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("filtered trips",
		zap.String("city", full.City),
		zap.String("month", month),
		zap.String("day", day),
		zap.Int("rows", filtered.Len()))
	return filtered, nil
}

// LoadCity reads the full, unfiltered table for a city.
func (l *Loader) LoadCity(city string) (*Table, error) {
	src, err := l.registry.Lookup(city)
	if err != nil {
		return nil, err
	}
	began := time.Now()
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, &DataSourceNotFoundError{City: src.City, Path: src.Path, Err: err}
	}
	defer f.Close()

	t, err := ReadTable(f, l.opts)
	if err != nil {
		var malformed *MalformedRecordError
		var missing *MissingColumnError
		if errors.As(err, &malformed) || errors.As(err, &missing) {
			return nil, err
		}
		return nil, &DataSourceNotFoundError{City: src.City, Path: src.Path, Err: err}
	}
	t.City = src.City
	elapsed := time.Since(began)

	if t.Skipped > 0 {
		l.logger.Warn("skipped malformed rows",
			zap.String("city", src.City),
			zap.Int("skipped", t.Skipped))
	}
	l.logger.Info("loaded trips",
		zap.String("city", src.City),
		zap.String("path", src.Path),
		zap.Int("rows", t.Len()),
		zap.Duration("elapsed", elapsed))
	if l.observer != nil {
		l.observer.ObserveLoad(src.City, t.Len(), t.Skipped, elapsed)
	}
	return t, nil
}
