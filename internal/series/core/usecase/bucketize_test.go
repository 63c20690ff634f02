package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stats-dashboard-service/internal/series/core/domain"
	"stats-dashboard-service/internal/series/core/usecase"
)

var fixedNow = time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

func events(ts ...string) []domain.Event {
	out := make([]domain.Event, len(ts))
	for i, t := range ts {
		out[i] = domain.Event{ID: t, Timestamp: t}
	}
	return out
}

func expectedLen(t *testing.T, r domain.TimeRange, now time.Time) int {
	t.Helper()
	spec, ok := r.Spec()
	require.True(t, ok)
	step := int64(spec.Interval)
	first := now.Add(-spec.Lookback).UnixNano() / step
	last := now.UnixNano() / step
	return int(last-first) + 1
}

func TestBucketize_EmptyEventsYieldZeroBuckets(t *testing.T) {
	for _, r := range domain.Ranges() {
		t.Run(string(r), func(t *testing.T) {
			s, err := usecase.Bucketize(nil, r, fixedNow)
			require.NoError(t, err)
			assert.Len(t, s.Buckets, expectedLen(t, r, fixedNow))
			for _, b := range s.Buckets {
				assert.Zero(t, b.Count)
			}
		})
	}
}

func TestBucketize_LengthIsLookbackOverIntervalPlusOne(t *testing.T) {
	cases := map[domain.TimeRange]int{
		domain.Range12h: 13,
		domain.Range1d:  25,
		domain.Range2d:  25,
		domain.Range7d:  8,
		domain.Range1w:  8,
		domain.Range30d: 31,
		domain.Range1m:  31,
		domain.Range3m:  14,
		domain.Range6m:  27,
	}
	// a week of consecutive days, so weekly ranges see every weekday
	for d := 0; d < 7; d++ {
		now := fixedNow.Add(time.Duration(d) * 24 * time.Hour)
		for r, want := range cases {
			s, err := usecase.Bucketize(nil, r, now)
			require.NoError(t, err)
			assert.Len(t, s.Buckets, want, "range %s at %s", r, now.Weekday())
		}
	}
}

func TestBucketize_StartBoundaryIsInclusive(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	s, err := usecase.Bucketize(events("2024-01-02T00:00:00Z"), domain.Range12h, now)
	require.NoError(t, err)

	require.Len(t, s.Buckets, 13)
	assert.Equal(t, int64(1), s.Buckets[0].Count)
	assert.Equal(t, "00:00", s.Buckets[0].Label)
	assert.Equal(t, int64(1), s.Total())
}

func TestBucketize_NowBoundaryIsInclusive(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	s, err := usecase.Bucketize(events("2024-01-02T12:00:00Z", "2024-01-02T12:00:00.000000001Z"), domain.Range12h, now)
	require.NoError(t, err)

	last := s.Buckets[len(s.Buckets)-1]
	assert.Equal(t, "12:00", last.Label)
	assert.Equal(t, int64(1), last.Count)
}

func TestBucketize_SameDayEventsLandInOneBucket(t *testing.T) {
	s, err := usecase.Bucketize(events(
		"2024-03-05T08:00:00Z",
		"2024-03-05T12:15:00Z",
		"2024-03-05T23:59:59Z",
	), domain.Range7d, fixedNow)
	require.NoError(t, err)

	require.Len(t, s.Buckets, 8)
	assert.Equal(t, "Mar 3", s.Buckets[0].Label)
	assert.Equal(t, "Mar 10", s.Buckets[7].Label)

	nonZero := 0
	for _, b := range s.Buckets {
		if b.Count > 0 {
			nonZero++
			assert.Equal(t, int64(3), b.Count)
			assert.Equal(t, "Mar 5", b.Label)
		}
	}
	assert.Equal(t, 1, nonZero)
}

func TestBucketize_PartialFirstBucketExcludesEventsBeforeStart(t *testing.T) {
	// start is Mar 3 15:30; the first bucket key is Mar 3 00:00
	s, err := usecase.Bucketize(events("2024-03-03T10:00:00Z", "2024-03-03T16:00:00Z"), domain.Range7d, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), s.Buckets[0].Key)
	assert.Equal(t, int64(1), s.Buckets[0].Count)
}

func TestBucketize_SumNeverExceedsEventCount(t *testing.T) {
	in := events(
		"2024-03-10T15:00:00Z",
		"2024-03-10T02:00:00Z",
		"2024-03-09T15:29:59Z", // before 1d start
		"2024-03-11T00:00:00Z", // after now
	)

	s, err := usecase.Bucketize(in, domain.Range1d, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.Total())

	s, err = usecase.Bucketize(in[:2], domain.Range1d, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(len(in[:2])), s.Total())
}

func TestBucketize_KeysStrictlyAscending(t *testing.T) {
	for _, r := range domain.Ranges() {
		s, err := usecase.Bucketize(events("2024-03-01T00:00:00Z"), r, fixedNow)
		require.NoError(t, err)
		for i := 1; i < len(s.Buckets); i++ {
			assert.True(t, s.Buckets[i-1].Key.Before(s.Buckets[i].Key), "range %s index %d", r, i)
		}
	}
}

func TestBucketize_Idempotent(t *testing.T) {
	in := events("2024-03-08T01:00:00Z", "2024-03-09T01:00:00Z", "2024-03-09T07:00:00Z")

	a, err := usecase.Bucketize(in, domain.Range30d, fixedNow)
	require.NoError(t, err)
	b, err := usecase.Bucketize(in, domain.Range30d, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBucketize_KeysAreStableAcrossPolls(t *testing.T) {
	a, err := usecase.Bucketize(nil, domain.Range12h, fixedNow)
	require.NoError(t, err)
	b, err := usecase.Bucketize(nil, domain.Range12h, fixedNow.Add(3*time.Hour+17*time.Minute))
	require.NoError(t, err)

	// b is a shifted three intervals ahead; the overlap must share keys
	for i := 3; i < len(a.Buckets); i++ {
		assert.Equal(t, a.Buckets[i].Key, b.Buckets[i-3].Key)
	}
}

func TestBucketize_WeeklyKeysAlignToEpoch(t *testing.T) {
	s, err := usecase.Bucketize(nil, domain.Range3m, fixedNow)
	require.NoError(t, err)

	week := int64(7 * 24 * time.Hour)
	for _, b := range s.Buckets {
		assert.Zero(t, b.Key.UnixNano()%week)
	}
}

func TestBucketize_ZoneLessTimestampsAreUTC(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	s, err := usecase.Bucketize(events("2024-01-02T05:30:00", "2024-01-02 05:45:10.250"), domain.Range12h, now)
	require.NoError(t, err)

	assert.Equal(t, "05:00", s.Buckets[5].Label)
	assert.Equal(t, int64(2), s.Buckets[5].Count)
}

func TestBucketize_InvalidTimestampFailsWholeSeries(t *testing.T) {
	_, err := usecase.Bucketize(events("2024-03-09T00:00:00Z", "yesterday"), domain.Range7d, fixedNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrInvalidTimestamp)
	assert.Contains(t, err.Error(), "yesterday")
}

func TestBucketize_UnsupportedRange(t *testing.T) {
	_, err := usecase.Bucketize(nil, domain.TimeRange("5y"), fixedNow)
	assert.ErrorIs(t, err, usecase.ErrUnsupportedRange)
}

func TestBucketizeIn_LabelsFollowLocationKeysDoNot(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	ist := time.FixedZone("IST", 5*3600+1800)

	s, err := usecase.BucketizeIn(nil, domain.Range12h, now, ist)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), s.Buckets[0].Key)
	assert.Equal(t, "05:30", s.Buckets[0].Label)
}

func TestSeries_Points(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	s, err := usecase.Bucketize(events("2024-01-02T11:10:00Z"), domain.Range12h, now)
	require.NoError(t, err)

	points := s.Points()
	require.Len(t, points, len(s.Buckets))
	assert.Equal(t, domain.Point{Label: "11:00", Count: 1}, points[11])
}
