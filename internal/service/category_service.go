package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/blog-service/internal/domain"
	"github.com/spec-kit/blog-service/internal/persistence"
	"github.com/spec-kit/blog-service/internal/repository"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

const (
	categoryCacheKey = "categories:all"
	categoryCacheTTL = 5 * time.Minute
)

// CategoryService handles category CRUD. The full category list is cached
// in Redis and invalidated on every mutation. Ownership checks never touch
// this cache; it only serves the read listing.
type CategoryService struct {
	categories repository.CategoryRepository
	cache      *persistence.Redis
	logger     *zap.Logger
}

// NewCategoryService builds the service.
func NewCategoryService(categories repository.CategoryRepository, cache *persistence.Redis, logger *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, cache: cache, logger: logger}
}

// Create stores a new category.
func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	category := &domain.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.invalidate(ctx)
	return category, nil
}

// Get fetches a category by id.
func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("category", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// List returns all categories, serving from cache when possible.
func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.toCache(ctx, categories)
	return categories, nil
}

// Update renames the category.
func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.invalidate(ctx)
	return category, nil
}

// Delete removes the category; posts keep existing with a cleared category.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("category", nil)
		}
		return apperrors.MapError(err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *CategoryService) fromCache(ctx context.Context) []*domain.Category {
	if s.cache == nil || s.cache.Client == nil {
		return nil
	}
	raw, err := s.cache.Client.Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var categories []*domain.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil
	}
	return categories
}

func (s *CategoryService) toCache(ctx context.Context, categories []*domain.Category) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, categoryCacheKey, raw, categoryCacheTTL).Err(); err != nil {
		s.logger.Debug("category cache write failed", zap.Error(err))
	}
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, categoryCacheKey).Err(); err != nil {
		s.logger.Debug("category cache invalidation failed", zap.Error(err))
	}
}
