package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"yaopets-backend/config"
	"yaopets-backend/dto"
	"yaopets-backend/internal/middleware"
	"yaopets-backend/internal/repository"
	"yaopets-backend/model"
)

type NotificationHandler struct {
	Notifs *repository.NotificationRepository
}

type listNotificationsResp struct {
	Notifications []model.Notification `json:"notifications"`
	Unread        int64                `json:"unread"`
}

// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Max items" default(50)
// @Success      200    {object} listNotificationsResp
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	limit := int64(c.QueryInt("limit", config.DefaultLimitUsers))
	if limit <= 0 || limit > config.MaxLimitUsers {
		limit = config.DefaultLimitUsers
	}

	items, unread, err := h.Notifs.ListForUser(c.Context(), uid, limit)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(listNotificationsResp{Notifications: items, Unread: unread})
}

// @Summary      Mark all notifications read
// @Tags         notifications
// @Security     BearerAuth
// @Success      204
// @Router       /notifications/read [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	if err := h.Notifs.MarkAllRead(c.Context(), uid); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.SendStatus(http.StatusNoContent)
}
