package server

import (
	"portalberita/internal/models"
	"portalberita/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /news/:newsId/comments (public)
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	newsID, err := s.parseID(c, "newsId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(ctx, newsID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.RespondWithData(c, fiber.StatusOK, comments, "")
}

// GetComment handles GET /comments/:id (public)
func (s *Server) GetComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(ctx, commentID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.RespondWithData(c, fiber.StatusOK, comment, "")
}

// CreateComment handles POST /news/:newsId/comments (protected). Any
// authenticated user may comment on any existing article.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	newsID, err := s.parseID(c, "newsId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(ctx, service.CreateCommentInput{
		UserID:  userID,
		NewsID:  newsID,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.RespondWithData(c, fiber.StatusCreated, comment, "Comment created successfully")
}

// UpdateComment handles PUT /comments/:id (owner only)
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(ctx, service.UpdateCommentInput{
		UserID:    userID,
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.RespondWithData(c, fiber.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment handles DELETE /comments/:id (owner only)
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(ctx, service.DeleteCommentInput{
		UserID:    userID,
		CommentID: commentID,
	}); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.RespondWithData(c, fiber.StatusOK, nil, "Comment deleted successfully")
}
