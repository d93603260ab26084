package league

import (
	"errors"
	"fmt"
)

var (
	ErrBadScore              = errors.New("bad score")
	ErrSameTeam              = errors.New("team cannot play itself")
	ErrUnknownTeam           = errors.New("unknown team")
	ErrDegenerateCalibration = errors.New("degenerate calibration: no spread between mean and minimum expected goals")
)

// ParseError is a record that could not be turned into a match or fixture.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
	}
	return fmt.Sprintf("%q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
