package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/blog-service/internal/domain"
)

type fakePostRepo struct {
	posts map[int64]*domain.Post
}

func (r *fakePostRepo) Create(context.Context, *domain.Post) error  { return nil }
func (r *fakePostRepo) Update(context.Context, *domain.Post) error  { return nil }
func (r *fakePostRepo) Delete(context.Context, int64) error         { return nil }
func (r *fakePostRepo) List(context.Context) ([]*domain.Post, error) { return nil, nil }
func (r *fakePostRepo) ListRecent(context.Context, int) ([]*domain.Post, error) {
	return nil, nil
}
func (r *fakePostRepo) Count(context.Context) (int64, error) { return 0, nil }
func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*domain.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return post, nil
}

type fakeCommentRepo struct {
	comments map[int64]*domain.Comment
}

func (r *fakeCommentRepo) Create(context.Context, *domain.Comment) error { return nil }
func (r *fakeCommentRepo) Update(context.Context, *domain.Comment) error { return nil }
func (r *fakeCommentRepo) Delete(context.Context, int64) error           { return nil }
func (r *fakeCommentRepo) ListByPost(context.Context, int64) ([]*domain.Comment, error) {
	return nil, nil
}
func (r *fakeCommentRepo) ListRecent(context.Context, int) ([]*domain.Comment, error) {
	return nil, nil
}
func (r *fakeCommentRepo) Count(context.Context) (int64, error) { return 0, nil }
func (r *fakeCommentRepo) GetByID(_ context.Context, id int64) (*domain.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return comment, nil
}

var (
	jane = &domain.User{ID: 1, Username: "jane", Role: domain.RoleUser}
	bob  = &domain.User{ID: 2, Username: "bob", Role: domain.RoleUser}
	eve  = &domain.User{ID: 3, Username: "eve", Role: domain.RoleUser}
	root = &domain.User{ID: 4, Username: "root", Role: domain.RoleAdmin}
)

// newTestGuard seeds post 7 owned by jane with comment 42 authored by bob.
func newTestGuard() *PermissionGuard {
	posts := &fakePostRepo{posts: map[int64]*domain.Post{
		7: {ID: 7, AuthorID: jane.ID},
	}}
	comments := &fakeCommentRepo{comments: map[int64]*domain.Comment{
		42: {ID: 42, PostID: 7, AuthorID: bob.ID},
	}}
	return NewPermissionGuard(posts, comments)
}

func TestCanEditComment(t *testing.T) {
	guard := newTestGuard()
	ctx := context.Background()

	tests := []struct {
		name      string
		user      *domain.User
		commentID int64
		want      bool
	}{
		{"unauthenticated", nil, 42, false},
		{"admin regardless of ownership", root, 42, true},
		{"comment author", bob, 42, true},
		{"authenticated non-owner", eve, 42, false},
		{"post owner is not comment owner", jane, 42, false},
		{"missing comment", bob, 99, false},
		{"admin with missing comment", root, 99, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guard.CanEditComment(ctx, tt.user, tt.commentID); got != tt.want {
				t.Fatalf("CanEditComment(%v, %d) = %v, want %v", tt.user, tt.commentID, got, tt.want)
			}
		})
	}
}

func TestCanEditPost(t *testing.T) {
	guard := newTestGuard()
	ctx := context.Background()

	tests := []struct {
		name   string
		user   *domain.User
		postID int64
		want   bool
	}{
		{"unauthenticated", nil, 7, false},
		{"admin", root, 7, true},
		{"post author", jane, 7, true},
		{"non-owner", bob, 7, false},
		{"missing post", jane, 99, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guard.CanEditPost(ctx, tt.user, tt.postID); got != tt.want {
				t.Fatalf("CanEditPost(%v, %d) = %v, want %v", tt.user, tt.postID, got, tt.want)
			}
		})
	}
}

func TestCanDeletePostComment(t *testing.T) {
	guard := newTestGuard()
	ctx := context.Background()

	tests := []struct {
		name      string
		user      *domain.User
		postID    int64
		commentID int64
		want      bool
	}{
		{"unauthenticated", nil, 7, 42, false},
		{"admin", root, 7, 42, true},
		// The compound rule: post owner may remove any comment on their
		// post, comment owner may remove their own comment.
		{"post owner removing someone else's comment", jane, 7, 42, true},
		{"comment owner", bob, 7, 42, true},
		{"third party owning neither", eve, 7, 42, false},
		{"missing post", bob, 99, 42, false},
		{"missing comment", jane, 7, 99, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guard.CanDeletePostComment(ctx, tt.user, tt.postID, tt.commentID); got != tt.want {
				t.Fatalf("CanDeletePostComment(%v, %d, %d) = %v, want %v", tt.user, tt.postID, tt.commentID, got, tt.want)
			}
		})
	}
}
