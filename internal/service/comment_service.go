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

// CommentService handles comment CRUD under posts.
type CommentService struct {
	comments   repository.CommentRepository
	posts      repository.PostRepository
	dispatcher events.Dispatcher
}

// NewCommentService builds the service.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, dispatcher events.Dispatcher) *CommentService {
	return &CommentService{comments: comments, posts: posts, dispatcher: dispatcher}
}

// Add attaches a new comment to the post.
func (s *CommentService) Add(ctx context.Context, author *domain.User, postID int64, content string) (*domain.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("post", nil)
		}
		return nil, apperrors.MapError(err)
	}

	comment := &domain.Comment{
		PostID:   postID,
		AuthorID: author.ID,
		Content:  content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCommentAdded,
			Actor:     events.Actor{UserID: author.ID, Username: author.Username, Role: author.Role},
			Timestamp: time.Now(),
			Payload: events.CommentAddedPayload{
				PostID:      postID,
				CommentID:   comment.ID,
				BodyPreview: preview(content),
			},
		})
	}
	return comment, nil
}

// ListByPost returns the post's comments in creation order.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return comments, nil
}

// Get fetches a comment by id.
func (s *CommentService) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("comment", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return comment, nil
}

// Update replaces the comment's content.
func (s *CommentService) Update(ctx context.Context, id int64, content string) (*domain.Comment, error) {
	comment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}
	return comment, nil
}

// Delete removes the comment.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("comment", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

func preview(content string) string {
	const max = 80
	if len(content) <= max {
		return content
	}
	// cut on a rune boundary so the payload stays valid UTF-8
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max])
}
