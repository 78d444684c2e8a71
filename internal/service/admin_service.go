package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/blog-service/internal/domain"
	"github.com/spec-kit/blog-service/internal/events"
	"github.com/spec-kit/blog-service/internal/repository"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

const recentActivityLimit = 10

// RecentActivity is a single entry in the admin overview feed.
type RecentActivity struct {
	Kind      string
	ID        int64
	Summary   string
	AuthorID  int64
	CreatedAt time.Time
}

// Overview aggregates counts and recent activity for the admin dashboard.
type Overview struct {
	TotalPosts     int64
	TotalComments  int64
	TotalUsers     int64
	RecentActivity []RecentActivity
}

// AdminService handles role management and the admin overview.
type AdminService struct {
	users      repository.UserRepository
	posts      repository.PostRepository
	comments   repository.CommentRepository
	dispatcher events.Dispatcher
}

// NewAdminService builds the service.
func NewAdminService(users repository.UserRepository, posts repository.PostRepository, comments repository.CommentRepository, dispatcher events.Dispatcher) *AdminService {
	return &AdminService{users: users, posts: posts, comments: comments, dispatcher: dispatcher}
}

// GetOverview returns totals plus the latest posts and comments merged into
// one feed, newest first.
func (s *AdminService) GetOverview(ctx context.Context) (*Overview, error) {
	totalPosts, err := s.posts.Count(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	totalComments, err := s.comments.Count(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	posts, err := s.posts.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	comments, err := s.comments.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	activity := make([]RecentActivity, 0, len(posts)+len(comments))
	for _, post := range posts {
		activity = append(activity, RecentActivity{
			Kind:      "POST",
			ID:        post.ID,
			Summary:   post.Title,
			AuthorID:  post.AuthorID,
			CreatedAt: post.CreatedAt,
		})
	}
	for _, comment := range comments {
		activity = append(activity, RecentActivity{
			Kind:      "COMMENT",
			ID:        comment.ID,
			Summary:   comment.Content,
			AuthorID:  comment.AuthorID,
			CreatedAt: comment.CreatedAt,
		})
	}
	sort.Slice(activity, func(i, j int) bool {
		return activity[i].CreatedAt.After(activity[j].CreatedAt)
	})

	return &Overview{
		TotalPosts:     totalPosts,
		TotalComments:  totalComments,
		TotalUsers:     totalUsers,
		RecentActivity: activity,
	}, nil
}

// ListUsers returns every account.
func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// PromoteUser grants the admin role.
func (s *AdminService) PromoteUser(ctx context.Context, actor *domain.User, id int64) error {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return apperrors.NewConflict("User already an admin", nil)
	}

	if err := s.users.UpdateRole(ctx, id, domain.RoleAdmin); err != nil {
		return apperrors.MapError(err)
	}
	s.publishRoleChange(ctx, actor, events.EventUserPromoted, id, domain.RoleAdmin)
	return nil
}

// DemoteUser revokes the admin role.
func (s *AdminService) DemoteUser(ctx context.Context, actor *domain.User, id int64) error {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleUser {
		return apperrors.NewConflict("Already an USER", nil)
	}

	if err := s.users.UpdateRole(ctx, id, domain.RoleUser); err != nil {
		return apperrors.MapError(err)
	}
	s.publishRoleChange(ctx, actor, events.EventUserDemoted, id, domain.RoleUser)
	return nil
}

func (s *AdminService) getUser(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, apperrors.NewBadRequest("Invalid user ID")
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

func (s *AdminService) publishRoleChange(ctx context.Context, actor *domain.User, eventType events.EventType, targetID int64, newRole domain.Role) {
	if s.dispatcher == nil || actor == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     events.Actor{UserID: actor.ID, Username: actor.Username, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   events.RoleChangedPayload{TargetUserID: targetID, NewRole: newRole},
	})
}
