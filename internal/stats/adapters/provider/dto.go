package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// flexibleID accepts both `"42"` and `42`; providers disagree on id types.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = flexibleID(n.String())
	return nil
}

type userPayload struct {
	ID             flexibleID `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	EducationLevel string     `json:"education_level"`
	CreatedAt      string     `json:"created_at"`
}

type conversationPayload struct {
	ID           flexibleID `json:"id"`
	UserID       flexibleID `json:"user_id"`
	Title        string     `json:"title"`
	MessageCount int64      `json:"message_count"`
	GeneratedAt  string     `json:"generated_at"`
}

type notePayload struct {
	ID        flexibleID `json:"id"`
	UserID    flexibleID `json:"user_id"`
	Content   string     `json:"content"`
	CreatedAt string     `json:"created_at"`
}

type educationPayload struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

type summaryPayload struct {
	TotalUsers         int64 `json:"total_users"`
	ActiveUsers        int64 `json:"active_users"`
	TotalConversations int64 `json:"total_conversations"`
	TotalNotes         int64 `json:"total_notes"`
}
