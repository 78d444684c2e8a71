package dto

import (
	"time"

	"github.com/spec-kit/blog-service/internal/domain"
)

// CommentRequest payload for creating or updating comments.
type CommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse response shape for comments.
type CommentResponse struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	AuthorID  int64     `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCommentResponse maps a domain comment.
func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// ToCommentResponses maps a slice of domain comments.
func ToCommentResponses(comments []*domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, ToCommentResponse(comment))
	}
	return out
}
