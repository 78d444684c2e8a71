package dto

import (
	"time"

	"github.com/spec-kit/blog-service/internal/domain"
)

// PostRequest payload for creating or updating posts.
type PostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID *int64 `json:"category_id,omitempty"`
}

// PostResponse response shape for posts.
type PostResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"author_id"`
	CategoryID *int64    `json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToPostResponse maps a domain post.
func ToPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}

// ToPostResponses maps a slice of domain posts.
func ToPostResponses(posts []*domain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, ToPostResponse(post))
	}
	return out
}
