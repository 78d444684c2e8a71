package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blog-service/internal/api/dto"
	"github.com/spec-kit/blog-service/internal/auth"
	"github.com/spec-kit/blog-service/internal/service"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

// CommentsHandler exposes comment endpoints, both nested under posts and
// addressed directly by comment id.
type CommentsHandler struct {
	comments *service.CommentService
	guard    *auth.PermissionGuard
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(comments *service.CommentService, guard *auth.PermissionGuard) *CommentsHandler {
	return &CommentsHandler{comments: comments, guard: guard}
}

// ListByPost handles GET /api/posts/:id/comments.
func (h *CommentsHandler) ListByPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	comments, err := h.comments.ListByPost(c.Context(), postID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToCommentResponses(comments)})
}

// Add handles POST /api/posts/:id/comments.
func (h *CommentsHandler) Add(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.Content == "" {
		return apperrors.NewBadRequest("content required")
	}

	comment, err := h.comments.Add(c.Context(), user, postID, req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.ToCommentResponse(comment)})
}

// Update handles PUT /api/comments/:id.
func (h *CommentsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if !h.guard.CanEditComment(c.Context(), auth.CurrentUser(c), id) {
		return apperrors.NewForbidden("not allowed to edit this comment")
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.Content == "" {
		return apperrors.NewBadRequest("content required")
	}

	comment, err := h.comments.Update(c.Context(), id, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToCommentResponse(comment)})
}

// Delete handles DELETE /api/comments/:id.
func (h *CommentsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if !h.guard.CanEditComment(c.Context(), auth.CurrentUser(c), id) {
		return apperrors.NewForbidden("not allowed to delete this comment")
	}

	if err := h.comments.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
