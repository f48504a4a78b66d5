package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"yaopets-backend/dto"
	"yaopets-backend/internal/middleware"
	"yaopets-backend/internal/repository"
	"yaopets-backend/internal/services"
)

type LikeHandler struct {
	Likes    *repository.LikeRepository
	Posts    *repository.PostRepository
	Comments *repository.CommentRepository
	Notifs   *services.NotificationService
}

// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Post ID"
// @Success      201 {object} dto.ToggleResp
// @Success      200 {object} dto.ToggleResp "already liked"
// @Failure      404 {object} dto.ErrorResponse
// @Router       /posts/{id}/like [post]
func (h *LikeHandler) LikePost(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	already, count, err := h.Likes.LikePost(c.Context(), uid, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if already {
		return c.JSON(dto.ToggleResp{Active: true, Count: count, Status: "already-liked"})
	}

	if post, perr := h.Posts.FindByID(c.Context(), postID); perr == nil {
		h.Notifs.PostLiked(c.Context(), post.UserID, uid, postID)
	}
	return c.Status(http.StatusCreated).JSON(dto.ToggleResp{Active: true, Count: count, Status: "liked"})
}

// @Summary      Unlike a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Post ID"
// @Success      200 {object} dto.ToggleResp
// @Router       /posts/{id}/like [delete]
func (h *LikeHandler) UnlikePost(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	existed, count, err := h.Likes.UnlikePost(c.Context(), uid, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	status := "unliked"
	if !existed {
		status = "not-liked"
	}
	return c.JSON(dto.ToggleResp{Active: false, Count: count, Status: status})
}

// @Summary      Like a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Comment ID"
// @Success      201 {object} dto.ToggleResp
// @Failure      404 {object} dto.ErrorResponse
// @Router       /comments/{id}/like [post]
func (h *LikeHandler) LikeComment(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	commentID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid comment id"})
	}

	already, count, err := h.Likes.LikeComment(c.Context(), uid, commentID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "comment not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if already {
		return c.JSON(dto.ToggleResp{Active: true, Count: count, Status: "already-liked"})
	}

	if com, cerr := h.Comments.FindByID(c.Context(), commentID); cerr == nil {
		h.Notifs.CommentLiked(c.Context(), com.UserID, uid, commentID)
	}
	return c.Status(http.StatusCreated).JSON(dto.ToggleResp{Active: true, Count: count, Status: "liked"})
}

// @Summary      Unlike a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Comment ID"
// @Success      200 {object} dto.ToggleResp
// @Router       /comments/{id}/like [delete]
func (h *LikeHandler) UnlikeComment(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	commentID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid comment id"})
	}

	existed, count, err := h.Likes.UnlikeComment(c.Context(), uid, commentID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "comment not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	status := "unliked"
	if !existed {
		status = "not-liked"
	}
	return c.JSON(dto.ToggleResp{Active: false, Count: count, Status: status})
}
