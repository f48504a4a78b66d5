package handlers

import (
	"context"
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
	"yaopets-backend/model"
)

type UserHandler struct {
	Users   *repository.UserRepository
	Follows *repository.FollowRepository
	Media   *services.MediaService // nil when S3 is not configured
}

// @Summary      Get a profile
// @Tags         users
// @Produce      json
// @Param        id  path     string  true  "User ID"
// @Success      200 {object} model.User
// @Failure      404 {object} dto.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}

	u, err := h.Users.FindByID(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(u)
}

// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body     dto.UpdateProfileReq  true  "Fields to change"
// @Success      200   {object} model.User
// @Failure      400   {object} dto.ErrorResponse
// @Router       /users/me [patch]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	var body dto.UpdateProfileReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	set := bson.M{}
	if body.Name != nil {
		set["name"] = strings.TrimSpace(*body.Name)
	}
	if body.Bio != nil {
		set["bio"] = strings.TrimSpace(*body.Bio)
	}
	if body.City != nil {
		set["city"] = strings.TrimSpace(*body.City)
	}
	if body.UserType != nil {
		t := model.UserType(*body.UserType)
		if !t.Valid() {
			return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid userType"})
		}
		set["user_type"] = t
	}
	if len(set) == 0 {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nothing to update"})
	}

	u, err := h.Users.UpdateProfile(c.Context(), uid, set)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(u)
}

// @Summary      Upload profile image
// @Description  Issue a presigned PUT URL and record the resulting public URL
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body     dto.ProfileImageReq  true  "Image content type"
// @Success      200   {object} dto.ProfileImageResp
// @Failure      400   {object} dto.ErrorResponse
// @Router       /users/me/photo [post]
func (h *UserHandler) ProfileImage(c *fiber.Ctx) error {
	if h.Media == nil {
		return c.Status(http.StatusNotImplemented).JSON(dto.ErrorResponse{Error: "media uploads not configured"})
	}
	uid, _ := middleware.UIDObjectID(c)

	var body dto.ProfileImageReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	ticket, err := h.Media.PresignUpload(c.Context(), "profile", body.ContentType)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if err := h.Users.SetProfileImage(c.Context(), uid, ticket.PublicURL); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.ProfileImageResp{
		UploadURL: ticket.UploadURL,
		PublicURL: ticket.PublicURL,
		ExpiresIn: ticket.ExpiresIn,
	})
}

// @Summary      List followers
// @Tags         users
// @Produce      json
// @Param        id     path   string  true   "User ID"
// @Param        limit  query  int     false  "Max items" default(50)
// @Success      200    {object} dto.ListUsersResp
// @Router       /users/{id}/followers [get]
func (h *UserHandler) ListFollowers(c *fiber.Ctx) error {
	return h.listEdges(c, h.Follows.ListFollowers)
}

// @Summary      List following
// @Tags         users
// @Produce      json
// @Param        id     path   string  true   "User ID"
// @Param        limit  query  int     false  "Max items" default(50)
// @Success      200    {object} dto.ListUsersResp
// @Router       /users/{id}/following [get]
func (h *UserHandler) ListFollowing(c *fiber.Ctx) error {
	return h.listEdges(c, h.Follows.ListFollowing)
}

func (h *UserHandler) listEdges(c *fiber.Ctx, list func(ctx context.Context, id bson.ObjectID, limit int64) ([]model.UserSummary, int64, error)) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid user id"})
	}

	limit := int64(c.QueryInt("limit", config.DefaultLimitUsers))
	if limit <= 0 {
		limit = config.DefaultLimitUsers
	}
	if limit > config.MaxLimitUsers {
		limit = config.MaxLimitUsers
	}

	users, total, err := list(c.Context(), id, limit)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.ListUsersResp{
		Users:      users,
		Pagination: dto.Pagination{Total: total},
	})
}
