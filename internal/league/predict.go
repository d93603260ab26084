package league

import (
	"fmt"
	"math"
)

// Anchor is the display value the smallest expected-goals figure maps to.
// It sits just above -0.5 so that figure always rounds to 0.
const Anchor = -0.499

// Fixture is an upcoming match between two teams with a record.
type Fixture struct {
	Home, Away *Team
}

// Estimate blends the league prior, weighted as one round of matches, with the
// pooled observed rates of both sides.
func Estimate(f Fixture, perRound int, m Means) Prediction {
	priorHome := NewWeighted(m.Home.Value, perRound)
	priorAway := NewWeighted(m.Away.Value, perRound)
	return Prediction{
		Home:    f.Home,
		Away:    f.Away,
		RawHome: priorHome.Add(f.Home.ScoredHome().Add(f.Away.ConcededAway())),
		RawAway: priorAway.Add(f.Away.ScoredAway().Add(f.Home.ConcededHome())),
	}
}

// Spread tracks the range and total of expected goals over a set of predictions.
type Spread struct {
	Min, Max float64
	Sum      float64
	N        int
}

// Observe returns s extended with both sides of p.
func (s Spread) Observe(p Prediction) Spread {
	for _, v := range [2]float64{p.RawHome.Value, p.RawAway.Value} {
		if s.N == 0 || v < s.Min {
			s.Min = v
		}
		if s.N == 0 || v > s.Max {
			s.Max = v
		}
		s.Sum += v
		s.N++
	}
	return s
}

func (s Spread) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Calibration maps expected goals linearly onto whole goals so that the
// minimum lands on Anchor and the mean lands on the league's overall rate.
type Calibration struct {
	Min   float64
	Scale float64
}

func NewCalibration(s Spread, m Means) (Calibration, error) {
	if s.N == 0 || s.Mean() == s.Min {
		return Calibration{}, ErrDegenerateCalibration
	}
	return Calibration{
		Min:   s.Min,
		Scale: (m.Overall.Value - Anchor) / (s.Mean() - s.Min),
	}, nil
}

// Goals rounds half away from zero.
func (c Calibration) Goals(raw float64) int {
	return int(math.Round((raw-c.Min)*c.Scale + Anchor))
}

// Predict estimates every fixture, then calibrates them against the spread of
// the whole set. Predictions come back in fixture order.
func Predict(fixtures []Fixture, perRound int, m Means) ([]Prediction, error) {
	preds := make([]Prediction, len(fixtures))
	var s Spread
	for i, f := range fixtures {
		preds[i] = Estimate(f, perRound, m)
		s = s.Observe(preds[i])
	}

	c, err := NewCalibration(s, m)
	if err != nil {
		return nil, fmt.Errorf("calibrating %d fixtures: %w", len(fixtures), err)
	}
	for i := range preds {
		preds[i].HomeGoals = c.Goals(preds[i].RawHome.Value)
		preds[i].AwayGoals = c.Goals(preds[i].RawAway.Value)
	}
	return preds, nil
}

// ScoreLine renders the prediction as "Home h - a Away".
func (p *Prediction) ScoreLine() string {
	return fmt.Sprintf("%s %d - %d %s",
		p.Home.Name, p.HomeGoals,
		p.AwayGoals, p.Away.Name,
	)
}
