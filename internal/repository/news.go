// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"portalberita/internal/models"

	"gorm.io/gorm"
)

// NewsRepository defines the interface for article data operations
type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	GetByID(ctx context.Context, id uint) (*models.News, error)
	ListPublished(ctx context.Context, category string, limit, offset int) ([]*models.News, error)
	CountPublished(ctx context.Context, category string) (int64, error)
	Update(ctx context.Context, news *models.News) error
	Delete(ctx context.Context, id uint) error
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new article repository
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// newestComments orders a preloaded comment collection newest-first.
func newestComments(db *gorm.DB) *gorm.DB {
	return db.Order("comments.created_at DESC")
}

func (r *newsRepository) Create(ctx context.Context, news *models.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

// GetByID loads an article with its author and comments (each comment with its
// own author). It does not filter on is_published.
func (r *newsRepository) GetByID(ctx context.Context, id uint) (*models.News, error) {
	var news models.News
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments", newestComments).
		Preload("Comments.User").
		First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) publishedQuery(ctx context.Context, category string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.News{}).Where("is_published = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return q
}

func (r *newsRepository) ListPublished(ctx context.Context, category string, limit, offset int) ([]*models.News, error) {
	var items []*models.News
	err := r.publishedQuery(ctx, category).
		Preload("User").
		Preload("Comments", newestComments).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *newsRepository) CountPublished(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.publishedQuery(ctx, category).Count(&count).Error
	return count, err
}

func (r *newsRepository) Update(ctx context.Context, news *models.News) error {
	return r.db.WithContext(ctx).Save(news).Error
}

// Delete removes the article and its comments in one transaction. Comments
// would otherwise be orphaned on stores without the FK cascade applied.
func (r *newsRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.News{}, id).Error
	})
}
