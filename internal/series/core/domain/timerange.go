package domain

import "time"

const day = 24 * time.Hour

type TimeRange string

const (
	Range12h TimeRange = "12h"
	Range1d  TimeRange = "1d"
	Range2d  TimeRange = "2d"
	Range7d  TimeRange = "7d"
	Range1w  TimeRange = "1w"
	Range30d TimeRange = "30d"
	Range1m  TimeRange = "1m"
	Range3m  TimeRange = "3m"
	Range6m  TimeRange = "6m"
)

// RangeSpec is the lookback window and granularity behind a TimeRange.
type RangeSpec struct {
	Lookback    time.Duration
	Interval    time.Duration
	LabelLayout string
}

// Every lookback is a whole number of intervals, so the bucket count of a range
// does not depend on where now falls within an interval.
var rangeSpecs = map[TimeRange]RangeSpec{
	Range12h: {Lookback: 12 * time.Hour, Interval: time.Hour, LabelLayout: "15:04"},
	Range1d:  {Lookback: day, Interval: time.Hour, LabelLayout: "15:04"},
	Range2d:  {Lookback: 2 * day, Interval: 2 * time.Hour, LabelLayout: "Jan 2 15:04"},
	Range7d:  {Lookback: 7 * day, Interval: day, LabelLayout: "Jan 2"},
	Range1w:  {Lookback: 7 * day, Interval: day, LabelLayout: "Jan 2"},
	Range30d: {Lookback: 30 * day, Interval: day, LabelLayout: "Jan 2"},
	Range1m:  {Lookback: 30 * day, Interval: day, LabelLayout: "Jan 2"},
	Range3m:  {Lookback: 91 * day, Interval: 7 * day, LabelLayout: "Jan 2"},
	Range6m:  {Lookback: 182 * day, Interval: 7 * day, LabelLayout: "Jan 2"},
}

// Spec returns the window for r; ok is false for ranges outside the enumerated set.
func (r TimeRange) Spec() (RangeSpec, bool) {
	s, ok := rangeSpecs[r]
	return s, ok
}

// Ranges lists every supported range, shortest lookback first.
func Ranges() []TimeRange {
	return []TimeRange{Range12h, Range1d, Range2d, Range7d, Range1w, Range30d, Range1m, Range3m, Range6m}
}
