package league

// Result is the categorical outcome of a match as seen from the home side.
type Result byte

const (
	ResultHome Result = '1'
	ResultAway Result = '2'
	ResultDraw Result = 'x'
	ResultNone Result = 'n'
)

func (r Result) String() string { return string(rune(r)) }

// Forfeit tells which side, if any, was awarded the match without play.
type Forfeit int

const (
	NoForfeit Forfeit = iota
	HomeForfeit
	AwayForfeit
)

// Team represents a club in the league together with everything it has played.
type Team struct {
	Name string

	// one entry per completed, non-forfeited match in that role
	ScoredHomeGoals   []int
	ScoredAwayGoals   []int
	ConcededHomeGoals []int
	ConcededAwayGoals []int

	WonHome, WonAway     int
	DrawnHome, DrawnAway int
	LostHome, LostAway   int

	Matches []*Match
}

// Match represents a recorded result between two teams.
type Match struct {
	Home, Away *Team
	HomeGoals  int
	AwayGoals  int
	Forfeit    Forfeit
}

// MatchRecord is a raw result as supplied by a record source.
type MatchRecord struct {
	Line       int
	Home, Away string
	Goals      [2]string
}

// FixtureRecord is an upcoming match as supplied by a record source.
type FixtureRecord struct {
	Line       int
	Home, Away string
}

// TableEntry holds the standings info for one team.
type TableEntry struct {
	Team                        *Team
	Played, Wins, Draws, Losses int
	GoalsFor, GoalsAgainst      int
	GoalDiff, Points            int
}

// TeamStats holds a team's goal rates as weighted means.
type TeamStats struct {
	Team                                 *Team
	Scored, ScoredHome, ScoredAway       Weighted
	Conceded, ConcededHome, ConcededAway Weighted
}

// Means holds the league-wide goal rates used as the prediction prior.
type Means struct {
	Overall Weighted
	Home    Weighted
	Away    Weighted
}

// Prediction is the expected and displayed scoreline of one fixture.
type Prediction struct {
	Home, Away       *Team
	RawHome, RawAway Weighted
	HomeGoals        int
	AwayGoals        int
}
