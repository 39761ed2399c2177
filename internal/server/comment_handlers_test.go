package server

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"portalberita/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	_, app := setupTestServer(t)
	_, authorToken := registerUser(t, app, "Budi Santoso", "budi@example.com")
	commenterID, commenterToken := registerUser(t, app, "Ani Lestari", "ani@example.com")
	article := createArticle(t, app, authorToken, "Pemilu 2026", "Politik")

	t.Run("any authenticated user may comment", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/news/%d/comments", article.ID), fiber.Map{
			"content": "Analisis yang bagus",
		}, commenterToken)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Comment created successfully", env.Message)

		var comment models.Comment
		require.NoError(t, json.Unmarshal(env.Data, &comment))
		assert.Equal(t, commenterID, comment.UserID)
		assert.Equal(t, article.ID, comment.NewsID)
		assert.Equal(t, "Ani Lestari", comment.User.Name)
	})

	t.Run("missing article", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodPost, "/news/9999/comments", fiber.Map{
			"content": "Ke mana-mana",
		}, commenterToken)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "News with ID 9999 not found", env.Message)
	})

	t.Run("empty content", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/news/%d/comments", article.ID), fiber.Map{}, commenterToken)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, env.Errors, "content")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		resp, _ := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/news/%d/comments", article.ID), fiber.Map{
			"content": "Tanpa token",
		}, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetComments(t *testing.T) {
	srv, app := setupTestServer(t)
	_, token := registerUser(t, app, "Budi Santoso", "budi@example.com")
	article := createArticle(t, app, token, "Pemilu 2026", "Politik")

	var firstID uint
	for i, content := range []string{"Komentar pertama", "Komentar kedua"} {
		_, env := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/news/%d/comments", article.ID), fiber.Map{
			"content": content,
		}, token)
		var comment models.Comment
		require.NoError(t, json.Unmarshal(env.Data, &comment))
		if i == 0 {
			firstID = comment.ID
		}
	}
	// push the first comment into the past so ordering is deterministic
	require.NoError(t, srv.db.Model(&models.Comment{}).Where("id = ?", firstID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	t.Run("newest first with author", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/news/%d/comments", article.ID), nil, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var comments []models.Comment
		require.NoError(t, json.Unmarshal(env.Data, &comments))
		require.Len(t, comments, 2)
		assert.Equal(t, "Komentar kedua", comments[0].Content)
		assert.Equal(t, "Komentar pertama", comments[1].Content)
		assert.Equal(t, "Budi Santoso", comments[0].User.Name)
	})

	t.Run("missing article", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodGet, "/news/9999/comments", nil, "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "News with ID 9999 not found", env.Message)
	})

	t.Run("invalid news id", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodGet, "/news/abc/comments", nil, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid news ID", env.Message)
	})
}

func TestGetComment(t *testing.T) {
	_, app := setupTestServer(t)
	_, token := registerUser(t, app, "Budi Santoso", "budi@example.com")
	article := createArticle(t, app, token, "Pemilu 2026", "Politik")

	_, env := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/news/%d/comments", article.ID), fiber.Map{
		"content": "Komentar tunggal",
	}, token)
	var created models.Comment
	require.NoError(t, json.Unmarshal(env.Data, &created))

	t.Run("includes parent article", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/comments/%d", created.ID), nil, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var comment models.Comment
		require.NoError(t, json.Unmarshal(env.Data, &comment))
		assert.Equal(t, "Komentar tunggal", comment.Content)
		require.NotNil(t, comment.News)
		assert.Equal(t, "Pemilu 2026", comment.News.Title)
	})

	t.Run("missing comment", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodGet, "/comments/9999", nil, "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Comment with ID 9999 not found", env.Message)
	})
}

func TestUpdateComment(t *testing.T) {
	_, app := setupTestServer(t)
	_, authorToken := registerUser(t, app, "Budi Santoso", "budi@example.com")
	_, otherToken := registerUser(t, app, "Ani Lestari", "ani@example.com")
	article := createArticle(t, app, authorToken, "Pemilu 2026", "Politik")

	_, env := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/news/%d/comments", article.ID), fiber.Map{
		"content": "Versi awal",
	}, authorToken)
	var comment models.Comment
	require.NoError(t, json.Unmarshal(env.Data, &comment))

	t.Run("owner updates", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodPut, fmt.Sprintf("/comments/%d", comment.ID), fiber.Map{
			"content": "Versi revisi",
		}, authorToken)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Comment updated successfully", env.Message)

		var updated models.Comment
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, "Versi revisi", updated.Content)
	})

	t.Run("non-owner forbidden even on own article's comment", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodPut, fmt.Sprintf("/comments/%d", comment.ID), fiber.Map{
			"content": "Dibajak",
		}, otherToken)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Unauthorized", env.Message)
	})

	t.Run("empty content", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodPut, fmt.Sprintf("/comments/%d", comment.ID), fiber.Map{
			"content": "",
		}, authorToken)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, env.Errors, "content")
	})

	t.Run("missing comment", func(t *testing.T) {
		resp, _ := doRequest(t, app, fiber.MethodPut, "/comments/9999", fiber.Map{
			"content": "Apa saja",
		}, authorToken)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteComment(t *testing.T) {
	_, app := setupTestServer(t)
	_, authorToken := registerUser(t, app, "Budi Santoso", "budi@example.com")
	_, otherToken := registerUser(t, app, "Ani Lestari", "ani@example.com")
	article := createArticle(t, app, authorToken, "Pemilu 2026", "Politik")

	_, env := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/news/%d/comments", article.ID), fiber.Map{
		"content": "Akan dihapus",
	}, otherToken)
	var comment models.Comment
	require.NoError(t, json.Unmarshal(env.Data, &comment))

	t.Run("article author cannot delete another user's comment", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("/comments/%d", comment.ID), nil, authorToken)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Unauthorized", env.Message)
	})

	t.Run("owner deletes", func(t *testing.T) {
		resp, env := doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("/comments/%d", comment.ID), nil, otherToken)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Comment deleted successfully", env.Message)

		resp, _ = doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/comments/%d", comment.ID), nil, "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("second delete is 404", func(t *testing.T) {
		resp, _ := doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("/comments/%d", comment.ID), nil, otherToken)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
