// Command upl prints the league standings and predicts the next round.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/krimeano/upl/internal/config"
	"github.com/krimeano/upl/internal/logging"
	"github.com/krimeano/upl/internal/report"
	"github.com/krimeano/upl/internal/source"
	"github.com/krimeano/upl/internal/store"
)

var (
	configPath   = flag.String("config", "", "path to the YAML config file")
	resultsPath  = flag.String("results", "", "results file, overrides source.results")
	fixturesPath = flag.String("fixtures", "", "fixtures file, overrides source.fixtures")
	outputFormat = flag.String("format", "", "report format (text or json), overrides output.format")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.Setup(cfg.Log, "upl")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := execute(context.Background(), cfg, log, openSource); err != nil {
		log.WithError(err).Fatal("upl failed")
	}
}

// opener returns a source and the function that releases it.
type opener func(ctx context.Context, cfg config.SourceConfig, log *logrus.Entry) (source.Source, func(), error)

// execute owns the source for the whole run so that it is closed before
// main decides how to exit.
func execute(ctx context.Context, cfg *config.Config, log *logrus.Entry, open opener) error {
	src, closeSrc, err := open(ctx, cfg.Source, log)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer closeSrc()

	rep, err := run(ctx, src, cfg.Model.MatchesPerRound, log)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	if err := writeReport(cfg.Output, rep); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}
	if *resultsPath != "" {
		cfg.Source.Kind = config.SourceFile
		cfg.Source.Results = *resultsPath
	}
	if *fixturesPath != "" {
		cfg.Source.Fixtures = *fixturesPath
	}
	if *outputFormat != "" {
		cfg.Output.Format = *outputFormat
	}
	return cfg, cfg.Validate()
}

func openSource(ctx context.Context, cfg config.SourceConfig, log *logrus.Entry) (source.Source, func(), error) {
	switch cfg.Kind {
	case config.SourcePostgres:
		s, err := store.NewStore(ctx, cfg.DSN, log.WithField("source", config.SourcePostgres))
		if err != nil {
			return nil, nil, err
		}
		if cfg.Migrate {
			if err := s.Migrate(ctx); err != nil {
				s.Close()
				return nil, nil, err
			}
		}
		return s, func() { s.Close() }, nil
	default:
		return source.NewFiles(cfg.Results, cfg.Fixtures, log.WithField("source", config.SourceFile)), func() {}, nil
	}
}

func writeReport(cfg config.OutputConfig, rep *report.Report) error {
	if cfg.Path == "" {
		return report.Write(os.Stdout, cfg.Format, rep)
	}
	f, err := os.Create(cfg.Path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	return writeAndClose(f, cfg.Format, rep)
}

// writeAndClose reports a failed close, which is where a buffered write
// error surfaces, unless the write itself already failed.
func writeAndClose(w io.WriteCloser, format string, rep *report.Report) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report file: %w", cerr)
		}
	}()
	return report.Write(w, format, rep)
}
