package usecase

import (
	"errors"
	"fmt"
	"time"

	"stats-dashboard-service/internal/series/core/domain"
)

var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrUnsupportedRange = errors.New("unsupported time range")
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp accepts RFC3339 and zone-less ISO-8601 values; the latter are read as UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// Bucketize counts events per interval of r over [now-lookback, now], labels in UTC.
func Bucketize(events []domain.Event, r domain.TimeRange, now time.Time) (domain.Series, error) {
	return BucketizeIn(events, r, now, time.UTC)
}

// BucketizeIn is Bucketize with labels rendered in loc. Bucket keys stay
// aligned on the Unix epoch whatever loc is, so polling yields stable buckets.
func BucketizeIn(events []domain.Event, r domain.TimeRange, now time.Time, loc *time.Location) (domain.Series, error) {
	spec, ok := r.Spec()
	if !ok {
		return domain.Series{}, fmt.Errorf("%w: %q", ErrUnsupportedRange, r)
	}
	if loc == nil {
		loc = time.UTC
	}

	// parse everything first: one bad timestamp fails the whole series
	times := make([]time.Time, len(events))
	for i, e := range events {
		t, err := ParseTimestamp(e.Timestamp)
		if err != nil {
			return domain.Series{}, fmt.Errorf("%w: event %d (id=%q) has timestamp %q", ErrInvalidTimestamp, i, e.ID, e.Timestamp)
		}
		times[i] = t
	}

	now = now.UTC()
	start := now.Add(-spec.Lookback)
	step := int64(spec.Interval)

	first := alignedKey(start, step)
	last := alignedKey(now, step)
	n := (last-first)/step + 1

	buckets := make([]domain.Bucket, n)
	for i := range buckets {
		key := time.Unix(0, first+int64(i)*step).UTC()
		buckets[i] = domain.Bucket{
			Key:   key,
			Label: key.In(loc).Format(spec.LabelLayout),
		}
	}

	for _, t := range times {
		if t.Before(start) || t.After(now) {
			continue
		}
		idx := (alignedKey(t, step) - first) / step
		if idx < 0 || idx >= n {
			continue
		}
		buckets[idx].Count++
	}

	return domain.Series{
		Range:    r,
		Start:    start,
		End:      now,
		Interval: spec.Interval,
		Buckets:  buckets,
	}, nil
}

// alignedKey floors t to a multiple of step nanoseconds since the Unix epoch.
func alignedKey(t time.Time, step int64) int64 {
	ns := t.UnixNano()
	q := ns / step
	if ns%step < 0 {
		q--
	}
	return q * step
}
