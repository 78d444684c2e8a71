package dto

import (
	"time"

	"github.com/spec-kit/blog-service/internal/domain"
	"github.com/spec-kit/blog-service/internal/service"
)

// AdminUserView is the admin listing shape for accounts.
type AdminUserView struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// RecentActivityView is one admin overview feed entry.
type RecentActivityView struct {
	Kind      string    `json:"kind"`
	ID        int64     `json:"id"`
	Summary   string    `json:"summary"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// OverviewResponse aggregates the admin dashboard payload.
type OverviewResponse struct {
	TotalPosts     int64                `json:"total_posts"`
	TotalComments  int64                `json:"total_comments"`
	TotalUsers     int64                `json:"total_users"`
	RecentActivity []RecentActivityView `json:"recent_activity"`
}

// ToAdminUserViews maps accounts for the admin listing.
func ToAdminUserViews(users []*domain.User) []AdminUserView {
	out := make([]AdminUserView, 0, len(users))
	for _, user := range users {
		out = append(out, AdminUserView{
			ID:        user.ID,
			Username:  user.Username,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		})
	}
	return out
}

// ToOverviewResponse maps the service overview.
func ToOverviewResponse(overview *service.Overview) OverviewResponse {
	activity := make([]RecentActivityView, 0, len(overview.RecentActivity))
	for _, entry := range overview.RecentActivity {
		activity = append(activity, RecentActivityView{
			Kind:      entry.Kind,
			ID:        entry.ID,
			Summary:   entry.Summary,
			AuthorID:  entry.AuthorID,
			CreatedAt: entry.CreatedAt,
		})
	}
	return OverviewResponse{
		TotalPosts:     overview.TotalPosts,
		TotalComments:  overview.TotalComments,
		TotalUsers:     overview.TotalUsers,
		RecentActivity: activity,
	}
}
