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
	"yaopets-backend/internal/utils"
	"yaopets-backend/model"
)

type PostHandler struct {
	Posts *repository.PostRepository
	Feed  *services.FeedService
}

// @Summary      Feed
// @Description  Public posts, newest first, with viewer-relative flags
// @Tags         posts
// @Produce      json
// @Param        limit   query  int     false  "Max items" default(20)
// @Param        cursor  query  string  false  "Opaque next-page cursor"
// @Param        tag     query  string  false  "Only posts carrying this hashtag"
// @Success      200     {object} dto.ListPostsResp
// @Failure      400     {object} dto.ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) ListFeed(c *fiber.Ctx) error {
	filter := bson.M{"visibility": model.VisibilityPublic}
	if tag := c.Query("tag"); tag != "" {
		filter["hashtags"] = strings.ToLower(strings.TrimPrefix(tag, "#"))
	}
	return h.list(c, filter)
}

// @Summary      Posts by user
// @Tags         posts
// @Produce      json
// @Param        id      path   string  true   "User ID"
// @Param        limit   query  int     false  "Max items" default(20)
// @Param        cursor  query  string  false  "Opaque next-page cursor"
// @Success      200     {object} dto.ListPostsResp
// @Router       /users/{id}/posts [get]
func (h *PostHandler) ListByUser(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}
	return h.list(c, bson.M{"user_id": id})
}

func (h *PostHandler) list(c *fiber.Ctx, filter bson.M) error {
	limit := postLimit(c)

	items, next, total, err := h.Posts.ListNewestFirst(c.Context(), filter, c.Query("cursor"), limit)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid cursor") {
			status = http.StatusBadRequest
		}
		return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	viewer, _ := middleware.UIDObjectID(c)
	feed, err := h.Feed.DecoratePosts(c.Context(), viewer, items)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.ListPostsResp{
		Posts:      feed,
		Pagination: dto.Pagination{Total: total, NextCursor: next},
	})
}

// @Summary      Saved posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Max items" default(20)
// @Success      200    {object} dto.ListPostsResp
// @Router       /users/me/saved [get]
func (h *PostHandler) ListSaved(c *fiber.Ctx) error {
	viewer, _ := middleware.UIDObjectID(c)

	items, total, err := h.Posts.ListSaved(c.Context(), viewer, postLimit(c))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	feed, err := h.Feed.DecoratePosts(c.Context(), viewer, items)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.ListPostsResp{
		Posts:      feed,
		Pagination: dto.Pagination{Total: total},
	})
}

// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body     dto.CreatePostReq  true  "Post payload"
// @Success      201   {object} model.Post
// @Failure      400   {object} dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	var body dto.CreatePostReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	content := strings.TrimSpace(body.Content)
	if content == "" && len(body.MediaURLs) == 0 {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "content or media required"})
	}

	mediaType := model.MediaType(body.MediaType)
	if len(body.MediaURLs) > 0 && !mediaType.Valid() {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "mediaType must be image, gif or video"})
	}

	visibility := model.Visibility(body.Visibility)
	if visibility == "" {
		visibility = model.VisibilityPublic
	}
	if visibility != model.VisibilityPublic && visibility != model.VisibilityFollowers {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid visibility"})
	}

	p := &model.Post{
		UserID:     uid,
		Content:    content,
		MediaURLs:  body.MediaURLs,
		MediaType:  mediaType,
		Visibility: visibility,
		Hashtags:   utils.ExtractHashtags(content),
	}
	if err := h.Posts.Create(c.Context(), p); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(p)
}

// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID"
// @Success      204
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	err = h.Posts.Delete(c.Context(), id, uid)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	case errors.Is(err, repository.ErrNotOwner):
		return c.Status(http.StatusForbidden).JSON(dto.ErrorResponse{Error: "not your post"})
	case err != nil:
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.SendStatus(http.StatusNoContent)
}

func postLimit(c *fiber.Ctx) int64 {
	limit := int64(c.QueryInt("limit", config.DefaultLimitPosts))
	if limit <= 0 {
		limit = config.DefaultLimitPosts
	}
	if limit > config.MaxLimitPosts {
		limit = config.MaxLimitPosts
	}
	return limit
}
