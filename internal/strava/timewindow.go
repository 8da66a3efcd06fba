package strava

import "time"

// TimeWindow is a half-open activity search range: activities starting at or
// after After and strictly before Before.
type TimeWindow struct {
	After  time.Time
	Before time.Time
}

// NewTimeWindow validates the range. Before must be strictly later than
// After; anything else fails with a *TimeRangeError naming both bounds.
func NewTimeWindow(after, before time.Time) (TimeWindow, error) {
	if !before.After(after) {
		return TimeWindow{}, &TimeRangeError{After: after, Before: before}
	}
	return TimeWindow{After: after, Before: before}, nil
}

// AfterEpoch returns the lower bound as Unix seconds.
func (w TimeWindow) AfterEpoch() int64 { return w.After.Unix() }

// BeforeEpoch returns the upper bound as Unix seconds.
func (w TimeWindow) BeforeEpoch() int64 { return w.Before.Unix() }
