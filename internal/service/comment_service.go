package service

import (
	"context"
	"errors"

	"portalberita/internal/models"
	"portalberita/internal/repository"
	"portalberita/internal/validation"

	"gorm.io/gorm"
)

// CommentService implements comment operations on top of the comment and news
// repositories. Comment ownership is independent of the parent article's
// author: any authenticated user may comment on any existing article, and only
// the comment's author may change or remove it.
type CommentService struct {
	commentRepo repository.CommentRepository
	newsRepo    repository.NewsRepository
}

// CreateCommentInput carries the fields for comment creation.
type CreateCommentInput struct {
	UserID  uint
	NewsID  uint
	Content string `json:"content" validate:"required"`
}

// UpdateCommentInput carries a comment update; content is the only mutable field.
type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string `json:"content" validate:"required"`
}

// DeleteCommentInput identifies the comment to delete and the acting user.
type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, newsRepo repository.NewsRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, newsRepo: newsRepo}
}

// ensureNewsExists maps a missing parent article to NotFound.
func (s *CommentService) ensureNewsExists(ctx context.Context, newsID uint) error {
	if _, err := s.newsRepo.GetByID(ctx, newsID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("News", newsID)
		}
		return err
	}
	return nil
}

// ListComments returns all comments for an existing article, newest first,
// each with its author. A missing article yields NotFound.
func (s *CommentService) ListComments(ctx context.Context, newsID uint) ([]*models.Comment, error) {
	if err := s.ensureNewsExists(ctx, newsID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByNews(ctx, newsID)
}

// GetComment returns one comment with its author and parent article.
func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByIDWithNews(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, err
	}
	return comment, nil
}

// CreateComment validates input and persists a comment owned by the caller
// against an existing article.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := s.ensureNewsExists(ctx, in.NewsID); err != nil {
		return nil, err
	}

	if fields := validation.Struct(in); fields != nil {
		return nil, models.NewValidationError(fields)
	}

	comment := &models.Comment{
		UserID:  in.UserID,
		NewsID:  in.NewsID,
		Content: in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// UpdateComment changes a comment's content. Existence is checked before
// ownership; only the comment's author may update it.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", in.CommentID)
		}
		return nil, err
	}

	if comment.UserID != in.UserID {
		return nil, models.NewForbiddenError()
	}

	if fields := validation.Struct(in); fields != nil {
		return nil, models.NewValidationError(fields)
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment permanently removes a comment. Existence beats ownership.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment", in.CommentID)
		}
		return err
	}

	if comment.UserID != in.UserID {
		return models.NewForbiddenError()
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
