package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blog-service/internal/api/dto"
	"github.com/spec-kit/blog-service/internal/auth"
	"github.com/spec-kit/blog-service/internal/service"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

// PostsHandler exposes post CRUD plus nested comment deletion. Mutations
// run the permission guard before touching the service.
type PostsHandler struct {
	posts    *service.PostService
	comments *service.CommentService
	guard    *auth.PermissionGuard
}

// NewPostsHandler constructs handler.
func NewPostsHandler(posts *service.PostService, comments *service.CommentService, guard *auth.PermissionGuard) *PostsHandler {
	return &PostsHandler{posts: posts, comments: comments, guard: guard}
}

// List handles GET /api/posts.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	posts, err := h.posts.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToPostResponses(posts)})
}

// Get handles GET /api/posts/:id.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.posts.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToPostResponse(post)})
}

// Create handles POST /api/posts.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.Title == "" || req.Content == "" {
		return apperrors.NewBadRequest("title and content required")
	}

	post, err := h.posts.Create(c.Context(), user, req.Title, req.Content, req.CategoryID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ToPostResponse(post)})
}

// Update handles PUT /api/posts/:id.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if !h.guard.CanEditPost(c.Context(), auth.CurrentUser(c), id) {
		return apperrors.NewForbidden("not allowed to edit this post")
	}

	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.Title == "" || req.Content == "" {
		return apperrors.NewBadRequest("title and content required")
	}

	post, err := h.posts.Update(c.Context(), id, req.Title, req.Content, req.CategoryID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToPostResponse(post)})
}

// Delete handles DELETE /api/posts/:id.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user := auth.CurrentUser(c)
	if !h.guard.CanEditPost(c.Context(), user, id) {
		return apperrors.NewForbidden("not allowed to delete this post")
	}

	if err := h.posts.Delete(c.Context(), user, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteComment handles DELETE /api/posts/:id/comments/:commentId. The
// compound rule applies: the comment's author or the post's author may
// remove the comment.
func (h *PostsHandler) DeleteComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return err
	}
	if !h.guard.CanDeletePostComment(c.Context(), auth.CurrentUser(c), postID, commentID) {
		return apperrors.NewForbidden("not allowed to delete this comment")
	}

	if err := h.comments.Delete(c.Context(), commentID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
