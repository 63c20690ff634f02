package domain

import (
	seriesdomain "stats-dashboard-service/internal/series/core/domain"
)

type User struct {
	ID             string
	Name           string
	Email          string
	EducationLevel string
	CreatedAt      string // ISO-8601, as returned by the provider
}

type Conversation struct {
	ID           string
	UserID       string
	Title        string
	MessageCount int64
	GeneratedAt  string // ISO-8601
}

type Note struct {
	ID        string
	UserID    string
	Content   string
	CreatedAt string // ISO-8601
}

// EducationStat is one row of the education demographics breakdown.
type EducationStat struct {
	Level string
	Count int64
}

type Summary struct {
	TotalUsers         int64
	ActiveUsers        int64
	TotalConversations int64
	TotalNotes         int64
}

type Overview struct {
	Summary             Summary
	Education           []EducationStat
	LatestNotes         []Note
	UsersSeries         seriesdomain.Series
	ConversationsSeries seriesdomain.Series
}

type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

func UsersAsEvents(users []User) []seriesdomain.Event {
	out := make([]seriesdomain.Event, len(users))
	for i, u := range users {
		out[i] = seriesdomain.Event{ID: u.ID, Timestamp: u.CreatedAt}
	}
	return out
}

func ConversationsAsEvents(convs []Conversation) []seriesdomain.Event {
	out := make([]seriesdomain.Event, len(convs))
	for i, c := range convs {
		out[i] = seriesdomain.Event{ID: c.ID, Timestamp: c.GeneratedAt}
	}
	return out
}
