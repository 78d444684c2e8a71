package dto

import (
	"time"

	"github.com/spec-kit/blog-service/internal/domain"
)

// CategoryRequest payload for category mutations.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse response shape for categories.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCategoryResponse maps a domain category.
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}
}

// ToCategoryResponses maps a slice of domain categories.
func ToCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, ToCategoryResponse(category))
	}
	return out
}
