package league

import "fmt"

// AddMatch folds a match into the team's record. Matches that cannot be
// classified are ignored. It panics if the match does not involve t.
func (t *Team) AddMatch(m *Match) {
	r := m.Result()
	if r == ResultNone {
		return
	}

	switch t {
	case m.Home:
		if m.Forfeit == NoForfeit {
			t.ScoredHomeGoals = append(t.ScoredHomeGoals, m.HomeGoals)
			t.ConcededHomeGoals = append(t.ConcededHomeGoals, m.AwayGoals)
		}
		switch r {
		case ResultHome:
			t.WonHome++
		case ResultAway:
			t.LostHome++
		case ResultDraw:
			t.DrawnHome++
		}
	case m.Away:
		if m.Forfeit == NoForfeit {
			t.ScoredAwayGoals = append(t.ScoredAwayGoals, m.AwayGoals)
			t.ConcededAwayGoals = append(t.ConcededAwayGoals, m.HomeGoals)
		}
		switch r {
		case ResultHome:
			t.LostAway++
		case ResultAway:
			t.WonAway++
		case ResultDraw:
			t.DrawnAway++
		}
	default:
		panic(fmt.Sprintf("league: adding match %q to team %q which did not play it", m, t.Name))
	}

	t.Matches = append(t.Matches, m)
}

func (t *Team) Wins() int { return t.WonHome + t.WonAway }
func (t *Team) Draws() int { return t.DrawnHome + t.DrawnAway }
func (t *Team) Losses() int { return t.LostHome + t.LostAway }
func (t *Team) Played() int { return len(t.Matches) }

func (t *Team) Points() int {
	return t.Wins()*3 + t.Draws()
}

func (t *Team) GoalsScored() int {
	return sum(t.ScoredHomeGoals) + sum(t.ScoredAwayGoals)
}

func (t *Team) GoalsConceded() int {
	return sum(t.ConcededHomeGoals) + sum(t.ConcededAwayGoals)
}

func (t *Team) GoalDiff() int {
	return t.GoalsScored() - t.GoalsConceded()
}

// Comparison is the ranking key: points, then wins, then goal difference,
// then goals scored.
func (t *Team) Comparison() int {
	return t.Points()*1_000_000 + t.Wins()*10_000 + t.GoalDiff()*100 + t.GoalsScored()
}

func (t *Team) ScoredHome() Weighted { return FromSamples(t.ScoredHomeGoals) }
func (t *Team) ScoredAway() Weighted { return FromSamples(t.ScoredAwayGoals) }
func (t *Team) ConcededHome() Weighted { return FromSamples(t.ConcededHomeGoals) }
func (t *Team) ConcededAway() Weighted { return FromSamples(t.ConcededAwayGoals) }

func (t *Team) Scored() Weighted {
	return t.ScoredHome().Add(t.ScoredAway())
}

func (t *Team) Conceded() Weighted {
	return t.ConcededHome().Add(t.ConcededAway())
}

// Stats collects the team's goal rates.
func (t *Team) Stats() TeamStats {
	return TeamStats{
		Team:         t,
		Scored:       t.Scored(),
		ScoredHome:   t.ScoredHome(),
		ScoredAway:   t.ScoredAway(),
		Conceded:     t.Conceded(),
		ConcededHome: t.ConcededHome(),
		ConcededAway: t.ConcededAway(),
	}
}

// MinutesPerGoal converts a per-match goal rate into minutes between goals.
// A zero rate gives zero.
func MinutesPerGoal(rate Weighted) int {
	if rate.Value == 0 {
		return 0
	}
	return int(90 / rate.Value)
}

func (t *Team) String() string {
	return fmt.Sprintf("%q", t.Name)
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}
