package league

import "fmt"

// Weighted is a mean together with the number of samples behind it.
// A zero weight always carries a zero value.
type Weighted struct {
	Value  float64
	Weight int
}

// NewWeighted returns a Weighted, dropping the value when weight is zero.
func NewWeighted(value float64, weight int) Weighted {
	if weight == 0 {
		value = 0
	}
	return Weighted{Value: value, Weight: weight}
}

// FromSamples returns the mean of samples weighted by their count.
func FromSamples(samples []int) Weighted {
	if len(samples) == 0 {
		return Weighted{}
	}
	sum := 0
	for _, s := range samples {
		sum += s
	}
	return Weighted{Value: float64(sum) / float64(len(samples)), Weight: len(samples)}
}

// Add merges o into w. A zero-weight o leaves w untouched.
func (w Weighted) Add(o Weighted) Weighted {
	if o.Weight == 0 {
		return w
	}
	weight := w.Weight + o.Weight
	value := (w.Value*float64(w.Weight) + o.Value*float64(o.Weight)) / float64(weight)
	return Weighted{Value: value, Weight: weight}
}

func (w Weighted) String() string {
	return fmt.Sprintf("%.3f(%d)", w.Value, w.Weight)
}
