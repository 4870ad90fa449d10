package message

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message statuses. The full lifecycle is a two-state toggle driven by
// the admin: unread <-> replied. Deletion is an operation, not a state.
const (
	StatusUnread  = "unread"
	StatusReplied = "replied"
)

// Preferred reply channels.
const (
	ChannelEmail    = "email"
	ChannelPhone    = "phone"
	ChannelLinkedIn = "linkedin"
)

// ContactMessage is one inbound contact-form submission, stored as its
// own object at messages/<id>.json and mirrored locally.
type ContactMessage struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Content          string `json:"content"`
	CreatedAt        string `json:"createdAt"` // ISO timestamp, sort key
	PreferredChannel string `json:"preferredChannel,omitempty"`
	Status           string `json:"status"`
}

// ObjectKey is the blob address of a message.
func ObjectKey(id string) string {
	return "messages/" + id + ".json"
}

// NewMessageID derives an id from the current time, as the shipped
// system did, plus a random suffix so two submissions inside the same
// millisecond cannot collide.
func NewMessageID(now time.Time) string {
	return fmt.Sprintf("m%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}

// NewContactMessage builds a fresh message from validated input.
func NewContactMessage(name, email, content, preferredChannel string, now time.Time) ContactMessage {
	return ContactMessage{
		ID:               NewMessageID(now),
		Name:             name,
		Email:            email,
		Content:          content,
		CreatedAt:        now.UTC().Format(time.RFC3339Nano),
		PreferredChannel: preferredChannel,
		Status:           StatusUnread,
	}
}
