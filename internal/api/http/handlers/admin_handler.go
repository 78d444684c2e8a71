package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blog-service/internal/api/dto"
	"github.com/spec-kit/blog-service/internal/auth"
	"github.com/spec-kit/blog-service/internal/service"
)

// AdminHandler exposes the admin dashboard and role management endpoints.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// Overview handles GET /api/admin/overview.
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.admin.GetOverview(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToOverviewResponse(overview)})
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.admin.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToAdminUserViews(users)})
}

// Promote handles PUT /api/admin/users/:id/promote.
func (h *AdminHandler) Promote(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admin.PromoteUser(c.Context(), auth.CurrentUser(c), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User promoted to admin"})
}

// Demote handles PUT /api/admin/users/:id/demote.
func (h *AdminHandler) Demote(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admin.DemoteUser(c.Context(), auth.CurrentUser(c), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Admin demoted to user"})
}
