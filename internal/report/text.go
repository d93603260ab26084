package report

import (
	"fmt"
	"io"

	"github.com/krimeano/upl/internal/league"
)

// WriteText prints the table, the goal rates and the predictions one after another.
func WriteText(w io.Writer, r *Report) error {
	ew := &errWriter{w: w}
	PrintTable(ew, "Standings", r.Standings)
	ew.printf("\n\n")
	PrintStats(ew, "Goals per match", r.Stats, r.Means)
	if len(r.Predictions) > 0 {
		ew.printf("\n\n")
		PrintPredictions(ew, "Predictions", r.Predictions)
	}
	ew.printf("\n")
	return ew.err
}

func PrintTable(w io.Writer, label string, table []*league.TableEntry) {
	fmt.Fprintln(w, label)
	fmt.Fprintf(w, "%3s %-20s %2s %2s %2s %2s %3s %3s %4s %3s",
		"#", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts")
	for i, entry := range table {
		fmt.Fprintf(w, "\n%3d %-20s %2d %2d %2d %2d %3d %3d %+4d %3d",
			i+1,
			entry.Team.Name,
			entry.Played,
			entry.Wins,
			entry.Draws,
			entry.Losses,
			entry.GoalsFor,
			entry.GoalsAgainst,
			entry.GoalDiff,
			entry.Points,
		)
	}
}

// PrintStats shows scored and conceded rates as total (home + away), each
// as mean(matches), followed by minutes per goal.
func PrintStats(w io.Writer, label string, stats []league.TeamStats, m league.Means) {
	fmt.Fprintln(w, label)
	fmt.Fprintf(w, "%-20s %-30s %-30s %s", "Team", "Scored (home + away)", "Conceded (home + away)", "Min/goal")
	for _, s := range stats {
		fmt.Fprintf(w, "\n%-20s %-30s %-30s %d' : %d'",
			s.Team.Name,
			fmt.Sprintf("%v (%v + %v)", s.Scored, s.ScoredHome, s.ScoredAway),
			fmt.Sprintf("%v (%v + %v)", s.Conceded, s.ConcededHome, s.ConcededAway),
			league.MinutesPerGoal(s.Scored),
			league.MinutesPerGoal(s.Conceded),
		)
	}
	fmt.Fprintf(w, "\nTotal scored: %v Home: %v Away: %v", m.Overall, m.Home, m.Away)
}

func PrintPredictions(w io.Writer, label string, preds []league.Prediction) {
	fmt.Fprintln(w, label)
	for i, p := range preds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%-40s (%.2f : %.2f)", p.ScoreLine(), p.RawHome.Value, p.RawAway.Value)
	}
}

// errWriter keeps the first write error so the printers can ignore it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	fmt.Fprintf(e, format, args...)
}
