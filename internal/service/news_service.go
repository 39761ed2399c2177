// Package service holds the business rules for articles and comments:
// input validation, ownership authorization, and pagination shaping.
package service

import (
	"context"
	"errors"

	"portalberita/internal/models"
	"portalberita/internal/repository"
	"portalberita/internal/validation"

	"gorm.io/gorm"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// NewsService implements article operations on top of the news repository.
type NewsService struct {
	newsRepo repository.NewsRepository
}

// ListNewsInput carries query parameters for the public article listing.
type ListNewsInput struct {
	Page     int
	PerPage  int
	Category string
}

// CreateNewsInput carries the fields for article creation. Validation rules
// mirror the public API contract: title required and capped at 255 characters,
// content required, category and image free-form optional strings.
type CreateNewsInput struct {
	UserID   uint
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// UpdateNewsInput carries a partial update. Nil fields are left untouched;
// present fields must satisfy the same constraints as creation.
type UpdateNewsInput struct {
	UserID   uint
	NewsID   uint
	Title    *string `json:"title" validate:"omitnil,required,max=255"`
	Content  *string `json:"content" validate:"omitnil,required"`
	Category *string `json:"category"`
	Image    *string `json:"image"`
}

// DeleteNewsInput identifies the article to delete and the acting user.
type DeleteNewsInput struct {
	UserID uint
	NewsID uint
}

// NewNewsService creates a new NewsService.
func NewNewsService(newsRepo repository.NewsRepository) *NewsService {
	return &NewsService{newsRepo: newsRepo}
}

// ListNews returns a page of published articles, newest first, optionally
// filtered by exact category match. Out-of-range paging inputs fall back to
// defaults instead of erroring.
func (s *NewsService) ListNews(ctx context.Context, in ListNewsInput) (*models.NewsPage, error) {
	perPage := in.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	page := in.Page
	if page <= 0 {
		page = 1
	}

	total, err := s.newsRepo.CountPublished(ctx, in.Category)
	if err != nil {
		return nil, err
	}

	items, err := s.newsRepo.ListPublished(ctx, in.Category, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return &models.NewsPage{
		Items:       items,
		Total:       total,
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    lastPage,
	}, nil
}

// GetNews returns one article with author and comments regardless of its
// publish flag.
func (s *NewsService) GetNews(ctx context.Context, id uint) (*models.News, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("News", id)
		}
		return nil, err
	}
	return news, nil
}

// CreateNews validates the input and persists a new article owned by the
// caller. The publish flag is always forced on; there is no draft workflow.
func (s *NewsService) CreateNews(ctx context.Context, in CreateNewsInput) (*models.News, error) {
	if fields := validation.Struct(in); fields != nil {
		return nil, models.NewValidationError(fields)
	}

	news := &models.News{
		UserID:      in.UserID,
		Title:       in.Title,
		Content:     in.Content,
		Category:    in.Category,
		Image:       in.Image,
		IsPublished: true,
	}
	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, err
	}

	return s.GetNews(ctx, news.ID)
}

// UpdateNews applies a partial update to an article. Existence is checked
// first (a missing id is NotFound regardless of caller), then ownership,
// then per-field validation.
func (s *NewsService) UpdateNews(ctx context.Context, in UpdateNewsInput) (*models.News, error) {
	news, err := s.GetNews(ctx, in.NewsID)
	if err != nil {
		return nil, err
	}

	if news.UserID != in.UserID {
		return nil, models.NewForbiddenError()
	}

	if fields := validation.Struct(in); fields != nil {
		return nil, models.NewValidationError(fields)
	}

	if in.Title != nil {
		news.Title = *in.Title
	}
	if in.Content != nil {
		news.Content = *in.Content
	}
	if in.Category != nil {
		news.Category = *in.Category
	}
	if in.Image != nil {
		news.Image = *in.Image
	}

	if err := s.newsRepo.Update(ctx, news); err != nil {
		return nil, err
	}

	return s.GetNews(ctx, news.ID)
}

// DeleteNews permanently removes an article and its comments. Existence beats
// ownership: a missing id yields NotFound even for a non-owner.
func (s *NewsService) DeleteNews(ctx context.Context, in DeleteNewsInput) error {
	news, err := s.GetNews(ctx, in.NewsID)
	if err != nil {
		return err
	}

	if news.UserID != in.UserID {
		return models.NewForbiddenError()
	}

	return s.newsRepo.Delete(ctx, in.NewsID)
}
