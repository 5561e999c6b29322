package metrics

import (
	"time"
)

type CompositeRegistry struct {
	registries []Registry
}

// NewCompositeRegistry creates registry writing to every given registry. Without registries metrics only count.
func NewCompositeRegistry(registries ...Registry) *CompositeRegistry {
	return &CompositeRegistry{registries}
}

func (source *CompositeRegistry) NewMeter(path ...string) Meter {
	meters := make([]Meter, 0, len(source.registries))
	for _, registry := range source.registries {
		meters = append(meters, registry.NewMeter(path...))
	}

	return &compositeMeter{meters: meters}
}

func (source *CompositeRegistry) NewTimer(path ...string) Timer {
	timers := make([]Timer, 0, len(source.registries))
	for _, registry := range source.registries {
		timers = append(timers, registry.NewTimer(path...))
	}

	return &compositeTimer{timers: timers}
}

func (source *CompositeRegistry) NewCounter(path ...string) Counter {
	counters := make([]Counter, 0, len(source.registries))
	for _, registry := range source.registries {
		counters = append(counters, registry.NewCounter(path...))
	}

	return &compositeCounter{counters: counters}
}

type compositeMeter struct {
	meters []Meter
	count  int64
}

func (source *compositeMeter) Count() int64 {
	if len(source.meters) == 0 {
		return source.count
	}

	return source.meters[0].Count()
}

func (source *compositeMeter) Mark(value int64) {
	source.count += value
	for _, meter := range source.meters {
		meter.Mark(value)
	}
}

type compositeTimer struct {
	timers []Timer
	count  int64
}

func (source *compositeTimer) Count() int64 {
	if len(source.timers) == 0 {
		return source.count
	}

	return source.timers[0].Count()
}

func (source *compositeTimer) UpdateSince(ts time.Time) {
	source.count++
	for _, timer := range source.timers {
		timer.UpdateSince(ts)
	}
}

type compositeCounter struct {
	counters []Counter
	count    int64
}

func (source *compositeCounter) Count() int64 {
	if len(source.counters) == 0 {
		return source.count
	}

	return source.counters[0].Count()
}

func (source *compositeCounter) Inc() {
	source.count++
	for _, counter := range source.counters {
		counter.Inc()
	}
}
