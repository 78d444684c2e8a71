package auth

import (
	"context"

	"github.com/spec-kit/blog-service/internal/domain"
	"github.com/spec-kit/blog-service/internal/repository"
)

// PermissionGuard decides whether the caller may mutate a specific post or
// comment. Every check resolves to a plain bool: an unauthenticated caller,
// a missing resource and a failed lookup all read as deny, so existence is
// never leaked through authorization results. Ownership facts are fetched
// per check, never cached.
type PermissionGuard struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

// NewPermissionGuard constructs the guard.
func NewPermissionGuard(posts repository.PostRepository, comments repository.CommentRepository) *PermissionGuard {
	return &PermissionGuard{posts: posts, comments: comments}
}

// CanEditPost allows admins and the post's author.
func (g *PermissionGuard) CanEditPost(ctx context.Context, user *domain.User, postID int64) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}

	post, err := g.posts.GetByID(ctx, postID)
	if err != nil || post == nil {
		return false
	}
	return post.AuthorID == user.ID
}

// CanEditComment allows admins and the comment's author.
func (g *PermissionGuard) CanEditComment(ctx context.Context, user *domain.User, commentID int64) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}

	comment, err := g.comments.GetByID(ctx, commentID)
	if err != nil || comment == nil {
		return false
	}
	return comment.AuthorID == user.ID
}

// CanDeletePostComment allows admins, the comment's author and the post's
// author. A post owner may remove any comment on their own post, including
// one written by someone else; this compound rule is intentionally wider
// than the single-resource checks.
func (g *PermissionGuard) CanDeletePostComment(ctx context.Context, user *domain.User, postID, commentID int64) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}

	post, err := g.posts.GetByID(ctx, postID)
	if err != nil || post == nil {
		return false
	}
	comment, err := g.comments.GetByID(ctx, commentID)
	if err != nil || comment == nil {
		return false
	}

	if comment.AuthorID == user.ID {
		return true
	}
	return post.AuthorID == user.ID
}
