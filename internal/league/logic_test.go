package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goals(h, a string) [2]string { return [2]string{h, a} }

func mustAdd(t *testing.T, l *League, home, away string, g [2]string) *Match {
	t.Helper()
	m, err := l.AddResult(home, away, g)
	require.NoError(t, err)
	return m
}

func names(teams []*Team) []string {
	out := make([]string, len(teams))
	for i, t := range teams {
		out[i] = t.Name
	}
	return out
}

func TestAddResult_SingleMatch(t *testing.T) {
	l := New()
	mustAdd(t, l, "A", "B", goals("2", "1"))

	a, ok := l.Lookup("A")
	require.True(t, ok)
	b, ok := l.Lookup("B")
	require.True(t, ok)

	assert.Equal(t, 1, a.Played())
	assert.Equal(t, 1, a.Wins())
	assert.Equal(t, 3, a.Points())
	assert.Equal(t, 2, a.GoalsScored())
	assert.Equal(t, 1, a.GoalsConceded())
	assert.Equal(t, 1, a.GoalDiff())

	assert.Equal(t, 1, b.Played())
	assert.Equal(t, 1, b.Losses())
	assert.Equal(t, 0, b.Points())
	assert.Equal(t, 1, b.GoalsScored())
	assert.Equal(t, 2, b.GoalsConceded())
	assert.Equal(t, -1, b.GoalDiff())
}

func TestAddResult_Forfeit(t *testing.T) {
	l := New()
	mustAdd(t, l, "A", "B", goals("+", "-"))
	a, _ := l.Lookup("A")
	b, _ := l.Lookup("B")

	assert.Equal(t, 1, a.WonHome)
	assert.Equal(t, 1, b.LostAway)
	for _, team := range []*Team{a, b} {
		assert.Empty(t, team.ScoredHomeGoals)
		assert.Empty(t, team.ScoredAwayGoals)
		assert.Empty(t, team.ConcededHomeGoals)
		assert.Empty(t, team.ConcededAwayGoals)
		assert.Equal(t, 1, team.Played())
		assert.Equal(t, 1, team.Wins()+team.Losses())
		assert.Equal(t, 0, team.Draws())
	}
}

func TestAddResult_AwayForfeit(t *testing.T) {
	l := New()
	mustAdd(t, l, "A", "B", goals("-", "+"))
	a, _ := l.Lookup("A")
	b, _ := l.Lookup("B")

	assert.Equal(t, 1, a.LostHome)
	assert.Equal(t, 1, b.WonAway)
	assert.Equal(t, 3, b.Points())
	assert.Equal(t, 0, b.GoalsScored())
}

func TestAddResult_BadRecordRegistersNothing(t *testing.T) {
	l := New()
	_, err := l.AddResult("A", "B", goals("x", "1"))
	require.ErrorIs(t, err, ErrBadScore)
	assert.Empty(t, l.Teams())
	assert.Empty(t, l.Matches())

	_, err = l.AddResult("A", "A", goals("1", "1"))
	assert.ErrorIs(t, err, ErrSameTeam)
}

func TestTeam_UniqueByName(t *testing.T) {
	l := New()
	mustAdd(t, l, "A", "B", goals("1", "0"))
	mustAdd(t, l, "B", "A", goals("1", "1"))
	mustAdd(t, l, "a", "B", goals("0", "0"))

	assert.Equal(t, []string{"A", "B", "a"}, names(l.Teams()))
	a, _ := l.Lookup("A")
	assert.Same(t, a, l.Team("A"))
	assert.Len(t, a.Matches, 2)
}

func TestAddMatch_ForeignTeamPanics(t *testing.T) {
	l := New()
	m := mustAdd(t, l, "A", "B", goals("1", "0"))
	assert.Panics(t, func() { (&Team{Name: "C"}).AddMatch(m) })
}

func TestAddMatch_UnclassifiedIsIgnored(t *testing.T) {
	a, b := &Team{Name: "A"}, &Team{Name: "B"}
	m := &Match{Home: a, Away: b, HomeGoals: 1, Forfeit: Forfeit(9)}
	a.AddMatch(m)
	b.AddMatch(m)
	assert.Empty(t, a.Matches)
	assert.Empty(t, a.ScoredHomeGoals)
	assert.Equal(t, 0, b.Losses())
}

func TestComparison(t *testing.T) {
	team := &Team{
		WonHome: 2, DrawnAway: 1,
		ScoredHomeGoals: []int{3, 1}, ConcededHomeGoals: []int{0, 0},
		ScoredAwayGoals: []int{1}, ConcededAwayGoals: []int{1},
	}
	// 7 points, 2 wins, +4, 5 scored
	assert.Equal(t, 7_020_405, team.Comparison())
}

func TestRank_WinsBreakPointsTie(t *testing.T) {
	l := New()
	// Y draws three times, X wins once and loses once: 3 points each
	mustAdd(t, l, "Y", "Z", goals("1", "1"))
	mustAdd(t, l, "Z", "Y", goals("2", "2"))
	mustAdd(t, l, "Y", "W", goals("1", "1"))
	mustAdd(t, l, "X", "W", goals("1", "0"))
	mustAdd(t, l, "W", "X", goals("1", "0"))

	x, _ := l.Lookup("X")
	y, _ := l.Lookup("Y")
	require.Equal(t, x.Points(), y.Points())
	require.Equal(t, 1, x.Wins())
	require.Equal(t, 0, y.Wins())

	l.Rank()
	ranked := names(l.Teams())
	assert.Less(t, indexOf(ranked, "X"), indexOf(ranked, "Y"))
}

func TestRank_TieBreakOrder(t *testing.T) {
	mk := func(name string, w, d int, scored, conceded []int) *Team {
		return &Team{Name: name, WonHome: w, DrawnHome: d, ScoredHomeGoals: scored, ConcededHomeGoals: conceded}
	}
	l := New()
	for _, team := range []*Team{
		mk("fewer goals", 1, 0, []int{1}, []int{0}),
		mk("worse diff", 1, 0, []int{3}, []int{3}),
		mk("more goals", 1, 0, []int{2}, []int{1}),
		mk("draws", 0, 3, []int{9, 0, 0}, []int{0, 0, 0}),
		mk("same", 1, 0, []int{1}, []int{0}),
	} {
		l.byName[team.Name] = len(l.teams)
		l.teams = append(l.teams, team)
	}

	l.Rank()
	assert.Equal(t, []string{"more goals", "fewer goals", "same", "worse diff", "draws"}, names(l.Teams()))
	for i, team := range l.Teams() {
		got, _ := l.Lookup(team.Name)
		assert.Same(t, l.Teams()[i], got)
	}
}

func TestTable(t *testing.T) {
	l := New()
	mustAdd(t, l, "A", "B", goals("2", "1"))
	mustAdd(t, l, "B", "C", goals("0", "0"))
	mustAdd(t, l, "C", "A", goals("+", "-"))
	l.Rank()

	table := l.Table()
	require.Len(t, table, 3)
	assert.Equal(t, "C", table[0].Team.Name)
	assert.Equal(t, TableEntry{Team: table[0].Team, Played: 2, Wins: 1, Draws: 1, Points: 4}, *table[0])
	assert.Equal(t, "A", table[1].Team.Name)
	assert.Equal(t, TableEntry{Team: table[1].Team, Played: 2, Wins: 1, Losses: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDiff: 1, Points: 3}, *table[1])
	assert.Equal(t, "B", table[2].Team.Name)
	assert.Equal(t, 1, table[2].Points)
}

func TestMeans(t *testing.T) {
	l := New()
	mustAdd(t, l, "A", "B", goals("2", "1"))
	mustAdd(t, l, "B", "A", goals("3", "0"))
	mustAdd(t, l, "A", "C", goals("+", "-"))

	m := l.Means()
	// home goals 2, 3; away goals 1, 0
	assert.Equal(t, 2, m.Home.Weight)
	assert.InDelta(t, 2.5, m.Home.Value, 1e-12)
	assert.Equal(t, 2, m.Away.Weight)
	assert.InDelta(t, 0.5, m.Away.Value, 1e-12)
	assert.Equal(t, 4, m.Overall.Weight)
	assert.InDelta(t, 1.5, m.Overall.Value, 1e-12)
}

func TestMeans_Empty(t *testing.T) {
	assert.Equal(t, Means{}, New().Means())
}

func TestIngest_ReportsLine(t *testing.T) {
	l := New()
	err := l.Ingest([]MatchRecord{
		{Line: 1, Home: "A", Away: "B", Goals: goals("1", "0")},
		{Line: 2, Home: "B", Away: "A", Goals: goals("?", "0")},
		{Line: 3, Home: "C", Away: "A", Goals: goals("1", "0")},
	})
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Len(t, l.Matches(), 1)
}

func TestFixtures(t *testing.T) {
	l := New()
	mustAdd(t, l, "A", "B", goals("1", "0"))

	fs, err := l.Fixtures([]FixtureRecord{{Line: 1, Home: "B", Away: "A"}})
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, "B", fs[0].Home.Name)

	_, err = l.Fixtures([]FixtureRecord{{Line: 4, Home: "B", Away: "Q"}})
	assert.ErrorIs(t, err, ErrUnknownTeam)
	assert.Contains(t, err.Error(), "line 4")

	_, err = l.Fixture("A", "A")
	assert.ErrorIs(t, err, ErrSameTeam)
}

func TestStats(t *testing.T) {
	l := New()
	mustAdd(t, l, "A", "B", goals("3", "1"))
	mustAdd(t, l, "B", "A", goals("1", "1"))

	s := l.Stats()[0]
	assert.Equal(t, "A", s.Team.Name)
	assert.Equal(t, Weighted{Value: 3, Weight: 1}, s.ScoredHome)
	assert.Equal(t, Weighted{Value: 1, Weight: 1}, s.ScoredAway)
	assert.Equal(t, Weighted{Value: 2, Weight: 2}, s.Scored)
	assert.Equal(t, Weighted{Value: 1, Weight: 2}, s.Conceded)
	assert.Equal(t, 45, MinutesPerGoal(s.Scored))
	assert.Equal(t, 0, MinutesPerGoal(Weighted{}))
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
