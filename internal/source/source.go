// Package source reads match results and upcoming fixtures from
// tab-separated text files:
//
//	2023-08-05	Dynamo - Shakhtar	2:1
//	2023-08-06	Kolos - Veres	+:-
//
// Leading columns such as the date are ignored. A fixtures file uses the
// same layout without the score column.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/krimeano/upl/internal/league"
)

var (
	ErrColumns = errors.New("not enough columns")
	ErrTeams   = errors.New("expected \"Home - Away\"")
	ErrScore   = errors.New("expected \"home:away\"")
)

// Source supplies raw records to the league.
type Source interface {
	Matches(ctx context.Context) ([]league.MatchRecord, error)
	Fixtures(ctx context.Context) ([]league.FixtureRecord, error)
}

// Files reads records from a results file and an optional fixtures file.
type Files struct {
	ResultsPath  string
	FixturesPath string
	Log          *logrus.Entry
}

func NewFiles(results, fixtures string, log *logrus.Entry) *Files {
	return &Files{ResultsPath: results, FixturesPath: fixtures, Log: log}
}

func (f *Files) Matches(ctx context.Context) ([]league.MatchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.ResultsPath)
	if err != nil {
		return nil, fmt.Errorf("opening results: %w", err)
	}
	defer file.Close()

	records, err := ReadMatches(file)
	if err != nil {
		return nil, fmt.Errorf("reading results %s: %w", f.ResultsPath, err)
	}
	f.Log.WithFields(logrus.Fields{"file": f.ResultsPath, "records": len(records)}).Debug("read results")
	return records, nil
}

// Fixtures returns no records when no fixtures file is configured.
func (f *Files) Fixtures(ctx context.Context) ([]league.FixtureRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.FixturesPath == "" {
		return nil, nil
	}
	file, err := os.Open(f.FixturesPath)
	if err != nil {
		return nil, fmt.Errorf("opening fixtures: %w", err)
	}
	defer file.Close()

	records, err := ReadFixtures(file)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures %s: %w", f.FixturesPath, err)
	}
	f.Log.WithFields(logrus.Fields{"file": f.FixturesPath, "records": len(records)}).Debug("read fixtures")
	return records, nil
}

// ReadMatches parses every line of r. All malformed lines are reported
// together and no records are returned if there is any.
func ReadMatches(r io.Reader) ([]league.MatchRecord, error) {
	var (
		records []league.MatchRecord
		errs    *multierror.Error
	)
	err := eachLine(r, func(n int, cols []string) {
		if len(cols) < 2 {
			errs = multierror.Append(errs, &league.ParseError{Line: n, Token: strings.Join(cols, "\t"), Err: ErrColumns})
			return
		}
		home, away, err := splitTeams(cols[len(cols)-2])
		if err != nil {
			errs = multierror.Append(errs, &league.ParseError{Line: n, Token: cols[len(cols)-2], Err: err})
			return
		}
		goals, err := splitScore(cols[len(cols)-1])
		if err != nil {
			errs = multierror.Append(errs, &league.ParseError{Line: n, Token: cols[len(cols)-1], Err: err})
			return
		}
		records = append(records, league.MatchRecord{Line: n, Home: home, Away: away, Goals: goals})
	})
	if err != nil {
		return nil, err
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadFixtures parses every line of r, taking the teams from the last column.
func ReadFixtures(r io.Reader) ([]league.FixtureRecord, error) {
	var (
		records []league.FixtureRecord
		errs    *multierror.Error
	)
	err := eachLine(r, func(n int, cols []string) {
		home, away, err := splitTeams(cols[len(cols)-1])
		if err != nil {
			errs = multierror.Append(errs, &league.ParseError{Line: n, Token: cols[len(cols)-1], Err: err})
			return
		}
		records = append(records, league.FixtureRecord{Line: n, Home: home, Away: away})
	})
	if err != nil {
		return nil, err
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return records, nil
}

// eachLine calls fn with the 1-based line number and trimmed tab-separated
// columns of every line that is neither blank nor a # comment.
func eachLine(r io.Reader, fn func(n int, cols []string)) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		fn(n, cols)
	}
	return sc.Err()
}

// splitTeams prefers " - " so that hyphenated names survive.
func splitTeams(s string) (string, string, error) {
	home, away, ok := strings.Cut(s, " - ")
	if !ok {
		home, away, ok = strings.Cut(s, "-")
	}
	home, away = strings.TrimSpace(home), strings.TrimSpace(away)
	if !ok || home == "" || away == "" {
		return "", "", ErrTeams
	}
	return home, away, nil
}

func splitScore(s string) ([2]string, error) {
	h, a, ok := strings.Cut(s, ":")
	if !ok {
		return [2]string{}, ErrScore
	}
	return [2]string{strings.TrimSpace(h), strings.TrimSpace(a)}, nil
}
