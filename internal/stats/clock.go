package stats

import "time"

// DateLayout is the ISO calendar date used for lastActiveDate
const DateLayout = "2006-01-02"

// Clock is the single source of "now" for streak and timestamp logic
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the local time zone
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns T. Used by tests and imports that replay history.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Today returns the current local calendar date
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// Yesterday returns the local calendar date before Today
func Yesterday(c Clock) string {
	return c.Now().AddDate(0, 0, -1).Format(DateLayout)
}
