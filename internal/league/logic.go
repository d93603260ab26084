// internal/league/logic.go
package league

import (
	"fmt"
	"sort"
)

// League owns every team seen in the results, keyed by exact name.
type League struct {
	teams   []*Team
	byName  map[string]int
	matches []*Match
}

func New() *League {
	return &League{byName: make(map[string]int)}
}

// Teams returns the teams in their current order: first-seen until Rank is called.
func (l *League) Teams() []*Team {
	return l.teams
}

func (l *League) Matches() []*Match {
	return l.matches
}

// Lookup returns the team registered under name.
func (l *League) Lookup(name string) (*Team, bool) {
	i, ok := l.byName[name]
	if !ok {
		return nil, false
	}
	return l.teams[i], true
}

// Team returns the team registered under name, creating it on first use.
func (l *League) Team(name string) *Team {
	if t, ok := l.Lookup(name); ok {
		return t
	}
	t := &Team{Name: name}
	l.byName[name] = len(l.teams)
	l.teams = append(l.teams, t)
	return t
}

// AddResult records a played match and updates both teams.
// Nothing is registered when the goal tokens do not parse.
func (l *League) AddResult(home, away string, goals [2]string) (*Match, error) {
	if home == away {
		return nil, &ParseError{Token: home, Err: ErrSameTeam}
	}
	score, err := ParseGoals(goals)
	if err != nil {
		return nil, err
	}

	m := &Match{
		Home:      l.Team(home),
		Away:      l.Team(away),
		HomeGoals: score.Home,
		AwayGoals: score.Away,
		Forfeit:   score.Forfeit,
	}
	m.Home.AddMatch(m)
	m.Away.AddMatch(m)
	l.matches = append(l.matches, m)
	return m, nil
}

// Ingest adds every record in order and stops at the first bad one.
func (l *League) Ingest(records []MatchRecord) error {
	for _, r := range records {
		if _, err := l.AddResult(r.Home, r.Away, r.Goals); err != nil {
			return withLine(err, r.Line)
		}
	}
	return nil
}

// Rank sorts the teams by Comparison, best first. Equal keys keep their order.
func (l *League) Rank() {
	sort.SliceStable(l.teams, func(i, j int) bool {
		return l.teams[i].Comparison() > l.teams[j].Comparison()
	})
	for i, t := range l.teams {
		l.byName[t.Name] = i
	}
}

// Table returns one standings row per team in the current team order.
func (l *League) Table() []*TableEntry {
	entries := make([]*TableEntry, 0, len(l.teams))
	for _, t := range l.teams {
		entries = append(entries, &TableEntry{
			Team:         t,
			Played:       t.Played(),
			Wins:         t.Wins(),
			Draws:        t.Draws(),
			Losses:       t.Losses(),
			GoalsFor:     t.GoalsScored(),
			GoalsAgainst: t.GoalsConceded(),
			GoalDiff:     t.GoalDiff(),
			Points:       t.Points(),
		})
	}
	return entries
}

// Stats returns the goal rates of every team in the current team order.
func (l *League) Stats() []TeamStats {
	stats := make([]TeamStats, 0, len(l.teams))
	for _, t := range l.teams {
		stats = append(stats, t.Stats())
	}
	return stats
}

// Means accumulates the league-wide goal rates across all teams.
// Call it only once every result has been added.
func (l *League) Means() Means {
	var m Means
	for _, t := range l.teams {
		m.Overall = m.Overall.Add(t.Scored())
		m.Home = m.Home.Add(t.ScoredHome())
		m.Away = m.Away.Add(t.ScoredAway())
	}
	return m
}

// Fixture resolves an upcoming match between two known teams.
func (l *League) Fixture(home, away string) (Fixture, error) {
	if home == away {
		return Fixture{}, &ParseError{Token: home, Err: ErrSameTeam}
	}
	h, ok := l.Lookup(home)
	if !ok {
		return Fixture{}, &ParseError{Token: home, Err: ErrUnknownTeam}
	}
	a, ok := l.Lookup(away)
	if !ok {
		return Fixture{}, &ParseError{Token: away, Err: ErrUnknownTeam}
	}
	return Fixture{Home: h, Away: a}, nil
}

// Fixtures resolves every record in order and stops at the first bad one.
func (l *League) Fixtures(records []FixtureRecord) ([]Fixture, error) {
	fixtures := make([]Fixture, 0, len(records))
	for _, r := range records {
		f, err := l.Fixture(r.Home, r.Away)
		if err != nil {
			return nil, withLine(err, r.Line)
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

func withLine(err error, line int) error {
	if pe, ok := err.(*ParseError); ok && pe.Line == 0 {
		pe.Line = line
		return pe
	}
	return fmt.Errorf("line %d: %w", line, err)
}
