// Package clock provides the wall clock used to resolve date tokens.
package clock

import "time"

// SystemClock reads time from the operating system
type SystemClock struct{}

// NewSystemClock creates system clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// NowUTC returns current time in UTC
func (*SystemClock) NowUTC() time.Time {
	return time.Now().UTC()
}

// NowUnix returns current time as seconds since the Unix epoch
func (*SystemClock) NowUnix() int64 {
	return time.Now().Unix()
}
