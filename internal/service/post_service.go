package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/blog-service/internal/domain"
	"github.com/spec-kit/blog-service/internal/events"
	"github.com/spec-kit/blog-service/internal/repository"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

// PostService handles post CRUD. Authorization is decided by the permission
// guard at the transport layer before these methods run.
type PostService struct {
	posts      repository.PostRepository
	dispatcher events.Dispatcher
}

// NewPostService builds the service.
func NewPostService(posts repository.PostRepository, dispatcher events.Dispatcher) *PostService {
	return &PostService{posts: posts, dispatcher: dispatcher}
}

// Create stores a new post authored by the given user.
func (s *PostService) Create(ctx context.Context, author *domain.User, title, content string, categoryID *int64) (*domain.Post, error) {
	post := &domain.Post{
		Title:      title,
		Content:    content,
		AuthorID:   author.ID,
		CategoryID: categoryID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, author, events.EventPostCreated, events.PostCreatedPayload{
		PostID: post.ID,
		Title:  post.Title,
	})
	return post, nil
}

// Get fetches a post by id.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("post", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return post, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return posts, nil
}

// Update replaces the post's editable fields.
func (s *PostService) Update(ctx context.Context, id int64, title, content string, categoryID *int64) (*domain.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content
	post.CategoryID = categoryID
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, apperrors.MapError(err)
	}
	return post, nil
}

// Delete removes the post and everything attached to it.
func (s *PostService) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("post", nil)
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventPostDeleted, events.PostDeletedPayload{PostID: id})
	return nil
}

func (s *PostService) publish(ctx context.Context, actor *domain.User, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil || actor == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     events.Actor{UserID: actor.ID, Username: actor.Username, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
