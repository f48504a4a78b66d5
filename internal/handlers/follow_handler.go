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

type FollowHandler struct {
	Follows *repository.FollowRepository
	Users   *repository.UserRepository
	Notifs  *services.NotificationService
}

// @Summary      Follow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Target user ID"
// @Success      200 {object} dto.ToggleResp
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /users/{id}/follow [post]
func (h *FollowHandler) Follow(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	target, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}

	if _, err := h.Users.FindByID(c.Context(), target); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	already, err := h.Follows.Follow(c.Context(), uid, target)
	if errors.Is(err, repository.ErrSelfFollow) {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cannot follow yourself"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if !already {
		h.Notifs.Followed(c.Context(), target, uid)
	}

	count, err := h.Follows.CountFollowers(c.Context(), target)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	status := "following"
	if already {
		status = "already-following"
	}
	return c.JSON(dto.ToggleResp{Active: true, Count: count, Status: status})
}

// @Summary      Unfollow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Target user ID"
// @Success      200 {object} dto.ToggleResp
// @Failure      400 {object} dto.ErrorResponse
// @Router       /users/{id}/follow [delete]
func (h *FollowHandler) Unfollow(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	target, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}

	existed, err := h.Follows.Unfollow(c.Context(), uid, target)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	count, err := h.Follows.CountFollowers(c.Context(), target)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	status := "unfollowed"
	if !existed {
		status = "not-following"
	}
	return c.JSON(dto.ToggleResp{Active: false, Count: count, Status: status})
}
