package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"yaopets-backend/dto"
	"yaopets-backend/internal/middleware"
	"yaopets-backend/internal/repository"
)

type SaveHandler struct {
	Saves *repository.SaveRepository
}

// @Summary      Save a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Post ID"
// @Success      201 {object} dto.ToggleResp
// @Success      200 {object} dto.ToggleResp "already saved"
// @Failure      404 {object} dto.ErrorResponse
// @Router       /posts/{id}/save [post]
func (h *SaveHandler) Save(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	already, err := h.Saves.Save(c.Context(), uid, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "post not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if already {
		return c.JSON(dto.ToggleResp{Active: true, Status: "already-saved"})
	}
	return c.Status(http.StatusCreated).JSON(dto.ToggleResp{Active: true, Status: "saved"})
}

// @Summary      Unsave a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path     string  true  "Post ID"
// @Success      200 {object} dto.ToggleResp
// @Router       /posts/{id}/save [delete]
func (h *SaveHandler) Unsave(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid post id"})
	}

	existed, err := h.Saves.Unsave(c.Context(), uid, postID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	status := "unsaved"
	if !existed {
		status = "not-saved"
	}
	return c.JSON(dto.ToggleResp{Active: false, Status: status})
}
