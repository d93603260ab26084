package league

import (
	"fmt"
	"strconv"
)

const (
	markWon  = "+"
	markLost = "-"
)

// Score is a parsed pair of goal tokens.
type Score struct {
	Home, Away int
	Forfeit    Forfeit
}

// ParseGoals turns a pair of raw goal tokens into a Score.
// A forfeit is written as "+" for the side awarded the match and "-" for the other.
func ParseGoals(tokens [2]string) (Score, error) {
	h, a := tokens[0], tokens[1]
	switch {
	case h == markWon && a == markLost:
		return Score{Forfeit: HomeForfeit}, nil
	case h == markLost && a == markWon:
		return Score{Forfeit: AwayForfeit}, nil
	}

	home, err := parseGoalCount(h)
	if err != nil {
		return Score{}, err
	}
	away, err := parseGoalCount(a)
	if err != nil {
		return Score{}, err
	}
	return Score{Home: home, Away: away}, nil
}

// parseGoalCount accepts plain decimal digits only, so "+1" and "-0" are rejected.
func parseGoalCount(token string) (int, error) {
	bad := &ParseError{Token: token, Err: ErrBadScore}
	if token == "" {
		return 0, bad
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, bad
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, bad
	}
	return n, nil
}

// Result classifies the match. Forfeits map directly to the awarded side.
func (m *Match) Result() Result {
	switch m.Forfeit {
	case HomeForfeit:
		return ResultHome
	case AwayForfeit:
		return ResultAway
	case NoForfeit:
	default:
		return ResultNone
	}
	switch {
	case m.HomeGoals > m.AwayGoals:
		return ResultHome
	case m.HomeGoals < m.AwayGoals:
		return ResultAway
	default:
		return ResultDraw
	}
}

// ScoreLine renders the match as "Home h:a Away".
func (m *Match) ScoreLine() string {
	h, a := strconv.Itoa(m.HomeGoals), strconv.Itoa(m.AwayGoals)
	switch m.Forfeit {
	case HomeForfeit:
		h, a = markWon, markLost
	case AwayForfeit:
		h, a = markLost, markWon
	}
	return fmt.Sprintf("%s %s:%s %s", m.Home.Name, h, a, m.Away.Name)
}

func (m *Match) String() string {
	return m.ScoreLine()
}
