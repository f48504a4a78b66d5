package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"yaopets-backend/config"
	"yaopets-backend/dto"
	"yaopets-backend/internal/middleware"
	"yaopets-backend/internal/repository"
	"yaopets-backend/internal/services"
)

type CommentHandler struct {
	Comments *repository.CommentRepository
	Posts    *repository.PostRepository
	Feed     *services.FeedService
	Notifs   *services.NotificationService
}

// @Summary      Create a comment
// @Description  Comment creation is not optimistic: the client waits for the
// @Description  created record with its real id before updating a list.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path     string               true  "Post ID"
// @Param        body  body     dto.CreateCommentReq true  "Comment payload"
// @Success      201   {object} model.Comment
// @Failure      400   {object} dto.ErrorResponse
// @Failure      404   {object} dto.ErrorResponse
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	content := strings.TrimSpace(body.Content)
	if content == "" {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "content required"})
	}

	com, err := h.Comments.Create(c.Context(), postID, uid, content)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if post, perr := h.Posts.FindByID(c.Context(), postID); perr == nil {
		h.Notifs.Commented(c.Context(), post.UserID, uid, postID)
	}
	return c.Status(http.StatusCreated).JSON(com)
}

// @Summary      List comments of a post
// @Tags         comments
// @Produce      json
// @Param        id      path   string  true   "Post ID"
// @Param        limit   query  int     false  "Max items" default(20)
// @Param        cursor  query  string  false  "Opaque next-page cursor"
// @Success      200     {object} dto.ListCommentsResp
// @Failure      400     {object} dto.ErrorResponse
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	limit := int64(c.QueryInt("limit", config.DefaultLimitComments))
	if limit <= 0 {
		limit = config.DefaultLimitComments
	}
	if limit > config.MaxLimitComments {
		limit = config.MaxLimitComments
	}

	items, next, total, err := h.Comments.ListNewestFirst(c.Context(), postID, c.Query("cursor"), limit)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid cursor") {
			status = http.StatusBadRequest
		}
		return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	viewer, _ := middleware.UIDObjectID(c)
	feed, err := h.Feed.DecorateComments(c.Context(), viewer, items)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.ListCommentsResp{
		Comments:   feed,
		Pagination: dto.Pagination{Total: total, NextCursor: next},
	})
}
