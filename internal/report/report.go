// Package report renders standings and predictions for display.
package report

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/krimeano/upl/internal/config"
	"github.com/krimeano/upl/internal/league"
)

// Report is everything a run produces.
type Report struct {
	Standings   []*league.TableEntry
	Stats       []league.TeamStats
	Means       league.Means
	Predictions []league.Prediction
}

// StandingsRow represents one team's row in the league table.
type StandingsRow struct {
	Pos    int    `json:"pos"`
	Team   string `json:"team"`
	Played int    `json:"played"`
	Won    int    `json:"won"`
	Drawn  int    `json:"drawn"`
	Lost   int    `json:"lost"`
	GF     int    `json:"gf"`
	GA     int    `json:"ga"`
	GD     int    `json:"gd"`
	Points int    `json:"points"`
}

// Rate is a per-match goal rate and the number of matches behind it.
type Rate struct {
	Mean    float64 `json:"mean"`
	Matches int     `json:"matches"`
}

type StatsRow struct {
	Team               string `json:"team"`
	Scored             Rate   `json:"scored"`
	ScoredHome         Rate   `json:"scored_home"`
	ScoredAway         Rate   `json:"scored_away"`
	Conceded           Rate   `json:"conceded"`
	ConcededHome       Rate   `json:"conceded_home"`
	ConcededAway       Rate   `json:"conceded_away"`
	MinutesPerScored   int    `json:"minutes_per_scored"`
	MinutesPerConceded int    `json:"minutes_per_conceded"`
}

type PredictionRow struct {
	Home         string  `json:"home"`
	Away         string  `json:"away"`
	HomeGoals    int     `json:"home_goals"`
	AwayGoals    int     `json:"away_goals"`
	ExpectedHome float64 `json:"expected_home"`
	ExpectedAway float64 `json:"expected_away"`
}

type document struct {
	Standings   []StandingsRow  `json:"standings"`
	Stats       []StatsRow      `json:"stats"`
	Totals      map[string]Rate `json:"totals"`
	Predictions []PredictionRow `json:"predictions"`
}

// Write renders r to w in the given format.
func Write(w io.Writer, format string, r *Report) error {
	switch format {
	case config.FormatJSON:
		return WriteJSON(w, r)
	case config.FormatText:
		return WriteText(w, r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func WriteJSON(w io.Writer, r *Report) error {
	doc := document{
		Standings: Standings(r.Standings),
		Stats:     Stats(r.Stats),
		Totals: map[string]Rate{
			"overall": rate(r.Means.Overall),
			"home":    rate(r.Means.Home),
			"away":    rate(r.Means.Away),
		},
		Predictions: Predictions(r.Predictions),
	}
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// Standings numbers the table rows in order.
func Standings(table []*league.TableEntry) []StandingsRow {
	rows := make([]StandingsRow, 0, len(table))
	for i, e := range table {
		rows = append(rows, StandingsRow{
			Pos:    i + 1,
			Team:   e.Team.Name,
			Played: e.Played,
			Won:    e.Wins,
			Drawn:  e.Draws,
			Lost:   e.Losses,
			GF:     e.GoalsFor,
			GA:     e.GoalsAgainst,
			GD:     e.GoalDiff,
			Points: e.Points,
		})
	}
	return rows
}

func Stats(stats []league.TeamStats) []StatsRow {
	rows := make([]StatsRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, StatsRow{
			Team:               s.Team.Name,
			Scored:             rate(s.Scored),
			ScoredHome:         rate(s.ScoredHome),
			ScoredAway:         rate(s.ScoredAway),
			Conceded:           rate(s.Conceded),
			ConcededHome:       rate(s.ConcededHome),
			ConcededAway:       rate(s.ConcededAway),
			MinutesPerScored:   league.MinutesPerGoal(s.Scored),
			MinutesPerConceded: league.MinutesPerGoal(s.Conceded),
		})
	}
	return rows
}

func Predictions(preds []league.Prediction) []PredictionRow {
	rows := make([]PredictionRow, 0, len(preds))
	for _, p := range preds {
		rows = append(rows, PredictionRow{
			Home:         p.Home.Name,
			Away:         p.Away.Name,
			HomeGoals:    p.HomeGoals,
			AwayGoals:    p.AwayGoals,
			ExpectedHome: p.RawHome.Value,
			ExpectedAway: p.RawAway.Value,
		})
	}
	return rows
}

func rate(w league.Weighted) Rate {
	return Rate{Mean: w.Value, Matches: w.Weight}
}
