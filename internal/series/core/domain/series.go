package domain

import "time"

type Collection string

const (
	CollectionUsers         Collection = "users"
	CollectionConversations Collection = "conversations"
)

// TimestampField is the JSON field carrying the event time of each record in c.
func (c Collection) TimestampField() (string, bool) {
	switch c {
	case CollectionUsers:
		return "created_at", true
	case CollectionConversations:
		return "generated_at", true
	default:
		return "", false
	}
}

// Event is any record with a single raw ISO-8601 timestamp.
type Event struct {
	ID        string
	Timestamp string
}

type Bucket struct {
	Key   time.Time // interval start, epoch aligned
	Label string
	Count int64
}

type Series struct {
	Range    TimeRange
	Start    time.Time
	End      time.Time
	Interval time.Duration
	Buckets  []Bucket
}

// Point is what the chart widget consumes: x-axis category and y-axis value.
type Point struct {
	Label string
	Count int64
}

func (s Series) Points() []Point {
	points := make([]Point, 0, len(s.Buckets))
	for _, b := range s.Buckets {
		points = append(points, Point{Label: b.Label, Count: b.Count})
	}
	return points
}

func (s Series) Total() int64 {
	var total int64
	for _, b := range s.Buckets {
		total += b.Count
	}
	return total
}
