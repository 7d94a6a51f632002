package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	lib "github.com/theoremus-urban-solutions/bikeshare-stats"
	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
	"github.com/theoremus-urban-solutions/bikeshare-stats/internal"
	"github.com/theoremus-urban-solutions/bikeshare-stats/observability"
	"github.com/theoremus-urban-solutions/bikeshare-stats/selector"
	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to config.yml (default: search config.yml, ./bikeshare/config.yml)")
	mode := flag.String("mode", "interactive", "interactive|oneshot")
	city := flag.String("city", "", "city name (oneshot)")
	month := flag.String("month", selector.All, "month name january..june or all (oneshot)")
	day := flag.String("day", selector.All, "weekday name or all (oneshot)")
	format := flag.String("format", "", "text|json|xml|pdf (overrides config)")
	out := flag.String("out", "", "write the report to this file instead of stdout")
	metricsFile := flag.String("metrics", "", "write Prometheus metrics to this file on exit (overrides config)")
	flag.Parse()

	if err := config.LoadAppConfig(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	cfg := config.Config
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *out != "" {
		cfg.Output.Path = *out
	}
	if *metricsFile != "" {
		cfg.Output.MetricsFile = *metricsFile
	}

	logger, err := internal.InitLogging(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return 2
	}
	defer logger.Sync()

	metrics := observability.NewMetrics()
	defer func() {
		if cfg.Output.MetricsFile == "" {
			return
		}
		if err := metrics.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			logger.Error("write metrics", zap.String("path", cfg.Output.MetricsFile), zap.Error(err))
		}
	}()

	opts := []lib.Option{lib.WithLogger(logger), lib.WithMetrics(metrics)}

	switch *mode {
	case "interactive":
		if cfg.Output.Path != "" {
			opts = append(opts, lib.WithReportHook(func(r *stats.Report) error {
				return lib.Export(os.Stdout, r, cfg.Output.Format, cfg.Output.Path)
			}))
		}
		exp := lib.NewExplorerFromConfig(cfg, opts...)
		if err := exp.Session(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error occurred: %v\n", err)
			return 1
		}
		return 0
	case "oneshot":
		if *city == "" {
			fmt.Fprintln(os.Stderr, "oneshot mode requires -city")
			return 2
		}
		exp := lib.NewExplorerFromConfig(cfg, opts...)
		report, err := exp.Analyze(selector.Selection{City: *city, Month: *month, Day: *day})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error occurred: %v\n", err)
			return 1
		}
		if err := lib.Export(os.Stdout, report, cfg.Output.Format, cfg.Output.Path); err != nil {
			fmt.Fprintf(os.Stderr, "export: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		return 2
	}
}
