package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/krimeano/upl/internal/league"
	"github.com/krimeano/upl/internal/report"
	"github.com/krimeano/upl/internal/source"
)

// run ingests every result before ranking and before the league means are
// taken, then predicts the fixtures, if any, in a separate pass.
func run(ctx context.Context, src source.Source, perRound int, log *logrus.Entry) (*report.Report, error) {
	records, err := src.Matches(ctx)
	if err != nil {
		return nil, err
	}
	l := league.New()
	if err := l.Ingest(records); err != nil {
		return nil, fmt.Errorf("ingesting results: %w", err)
	}
	l.Rank()
	means := l.Means()
	log.WithFields(logrus.Fields{
		"matches": len(l.Matches()),
		"teams":   len(l.Teams()),
		"overall": means.Overall.String(),
		"home":    means.Home.String(),
		"away":    means.Away.String(),
	}).Info("ranked league")

	rep := &report.Report{Standings: l.Table(), Stats: l.Stats(), Means: means}

	fixtureRecords, err := src.Fixtures(ctx)
	if err != nil {
		return nil, err
	}
	if len(fixtureRecords) == 0 {
		log.Info("no fixtures to predict")
		return rep, nil
	}
	fixtures, err := l.Fixtures(fixtureRecords)
	if err != nil {
		return nil, fmt.Errorf("resolving fixtures: %w", err)
	}
	if rep.Predictions, err = league.Predict(fixtures, perRound, means); err != nil {
		return nil, err
	}
	log.WithField("fixtures", len(fixtures)).Info("predicted round")
	return rep, nil
}
