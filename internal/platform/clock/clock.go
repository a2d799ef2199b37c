package clock

import "time"

// Clock abstracts time to keep date/time defaults deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall time; measurements are logged in local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
