package events

import (
	"time"

	"github.com/spec-kit/blog-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPostCreated  EventType = "post_created"
	EventPostDeleted  EventType = "post_deleted"
	EventCommentAdded EventType = "comment_added"
	EventUserPromoted EventType = "user_promoted"
	EventUserDemoted  EventType = "user_demoted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID   int64       `json:"user_id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PostCreatedPayload payload.
type PostCreatedPayload struct {
	PostID int64  `json:"post_id"`
	Title  string `json:"title"`
}

// PostDeletedPayload payload.
type PostDeletedPayload struct {
	PostID int64 `json:"post_id"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	PostID      int64  `json:"post_id"`
	CommentID   int64  `json:"comment_id"`
	BodyPreview string `json:"body_preview"`
}

// RoleChangedPayload payload for promotion/demotion events.
type RoleChangedPayload struct {
	TargetUserID int64       `json:"target_user_id"`
	NewRole      domain.Role `json:"new_role"`
}
