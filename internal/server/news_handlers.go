package server

import (
	"portalberita/internal/models"
	"portalberita/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetNewsList handles GET /news (public).
// Query: per_page (default 10), page (default 1), category (exact match).
// Malformed paging values fall back to defaults instead of erroring.
func (s *Server) GetNewsList(c *fiber.Ctx) error {
	ctx := c.UserContext()

	page, err := s.newsService.ListNews(ctx, service.ListNewsInput{
		Page:     c.QueryInt("page", 1),
		PerPage:  c.QueryInt("per_page", 10),
		Category: c.Query("category"),
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.RespondWithData(c, fiber.StatusOK, page, "")
}

// GetNews handles GET /news/:id (public). Unpublished articles are still
// visible by direct id, matching the listing/show asymmetry of the API.
func (s *Server) GetNews(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	news, err := s.newsService.GetNews(ctx, id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.RespondWithData(c, fiber.StatusOK, news, "")
}

// CreateNews handles POST /news (protected)
func (s *Server) CreateNews(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
		Image    string `json:"image"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	news, err := s.newsService.CreateNews(ctx, service.CreateNewsInput{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.RespondWithData(c, fiber.StatusCreated, news, "News created successfully")
}

// UpdateNews handles PUT /news/:id (owner only). Absent fields keep their
// prior values; present fields must satisfy creation constraints.
func (s *Server) UpdateNews(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	newsID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		Category *string `json:"category"`
		Image    *string `json:"image"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	news, err := s.newsService.UpdateNews(ctx, service.UpdateNewsInput{
		UserID:   userID,
		NewsID:   newsID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.RespondWithData(c, fiber.StatusOK, news, "News updated successfully")
}

// DeleteNews handles DELETE /news/:id (owner only)
func (s *Server) DeleteNews(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	newsID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.newsService.DeleteNews(ctx, service.DeleteNewsInput{
		UserID: userID,
		NewsID: newsID,
	}); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return models.RespondWithData(c, fiber.StatusOK, nil, "News deleted successfully")
}
