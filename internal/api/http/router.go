package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blog-service/internal/api/http/handlers"
	"github.com/spec-kit/blog-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Posts          *handlers.PostsHandler
	Comments       *handlers.CommentsHandler
	Categories     *handlers.CategoriesHandler
	Users          *handlers.UsersHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh", cfg.Auth.Refresh)

	posts := api.Group("/posts")
	posts.Get("/", cfg.Posts.List)
	posts.Get("/:id", cfg.Posts.Get)
	posts.Get("/:id/comments", cfg.Comments.ListByPost)

	postsProtected := posts.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	postsProtected.Post("/", cfg.Posts.Create)
	postsProtected.Put("/:id", cfg.Posts.Update)
	postsProtected.Delete("/:id", cfg.Posts.Delete)
	postsProtected.Post("/:id/comments", cfg.Comments.Add)
	postsProtected.Delete("/:id/comments/:commentId", cfg.Posts.DeleteComment)

	comments := api.Group("/comments", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	comments.Put("/:id", cfg.Comments.Update)
	comments.Delete("/:id", cfg.Comments.Delete)

	users := api.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	users.Get("/me", cfg.Users.Me)
	users.Put("/profile", cfg.Users.UpdateProfile)

	categories := api.Group("/categories")
	categories.Get("/", cfg.Categories.List)
	categories.Get("/:id", cfg.Categories.Get)

	categoriesAdmin := categories.Group("", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	categoriesAdmin.Post("/", cfg.Categories.Create)
	categoriesAdmin.Put("/:id", cfg.Categories.Update)
	categoriesAdmin.Delete("/:id", cfg.Categories.Delete)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/overview", cfg.Admin.Overview)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Put("/users/:id/promote", cfg.Admin.Promote)
	admin.Put("/users/:id/demote", cfg.Admin.Demote)
}
