package fiber

type SummaryResponse struct {
	TotalUsers         int64 `json:"total_users"`
	ActiveUsers        int64 `json:"active_users"`
	TotalConversations int64 `json:"total_conversations"`
	TotalNotes         int64 `json:"total_notes"`
}

type EducationResponse struct {
	Level string `json:"level" example:"master"`
	Count int64  `json:"count" example:"12"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ConversationResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Title        string `json:"title,omitempty"`
	MessageCount int64  `json:"message_count"`
	GeneratedAt  string `json:"generated_at"`
}

type NoteResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type PointResponse struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type OverviewResponse struct {
	Summary       SummaryResponse     `json:"summary"`
	Education     []EducationResponse `json:"education"`
	LatestNotes   []NoteResponse      `json:"latest_notes"`
	Users         []PointResponse     `json:"users_7d"`
	Conversations []PointResponse     `json:"conversations_7d"`
}

type PageResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// swag cannot document generic types; these aliases name the concrete pages.
type (
	UserPageResponse         = PageResponse[UserResponse]
	ConversationPageResponse = PageResponse[ConversationResponse]
	NotePageResponse         = PageResponse[NoteResponse]
)

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message,omitempty" example:"invalid page size: 500 (must be 1..100)"`
}
