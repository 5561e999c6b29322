package metrics

import "time"

// Registry creates metrics of a single backend
type Registry interface {
	NewTimer(path ...string) Timer
	NewMeter(path ...string) Meter
	NewCounter(path ...string) Counter
}

// Meter counts events
type Meter interface {
	Count() int64
	Mark(int64)
}

// Timer captures duration of events
type Timer interface {
	Count() int64
	UpdateSince(time.Time)
}

// Counter is a monotonically increasing counter
type Counter interface {
	Count() int64
	Inc()
}
