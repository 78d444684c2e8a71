package dto

import (
	"time"

	"github.com/spec-kit/blog-service/internal/domain"
)

// UserProfileRequest payload for profile updates.
type UserProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse response shape for the caller's own profile.
type UserResponse struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// ToUserResponse maps a domain user.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
