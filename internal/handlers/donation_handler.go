package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"yaopets-backend/config"
	"yaopets-backend/dto"
	"yaopets-backend/internal/middleware"
	"yaopets-backend/internal/payments"
	"yaopets-backend/internal/repository"
	"yaopets-backend/model"
)

type DonationHandler struct {
	Donations *repository.DonationRepository
	Stripe    *payments.StripeClient // nil when payments are not configured
}

// @Summary      List donation items
// @Tags         donations
// @Produce      json
// @Param        category  query  string  false  "food | medicine | accessories | hygiene | toys"
// @Param        city      query  string  false  "City filter"
// @Param        limit     query  int     false  "Max items" default(20)
// @Success      200       {object} dto.ListDonationsResp
// @Failure      400       {object} dto.ErrorResponse
// @Router       /donations [get]
func (h *DonationHandler) List(c *fiber.Ctx) error {
	category := model.DonationCategory(c.Query("category"))
	if category != "" && !category.Valid() {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid category"})
	}

	limit := int64(c.QueryInt("limit", config.DefaultLimitPosts))
	if limit <= 0 || limit > config.MaxLimitPosts {
		limit = config.DefaultLimitPosts
	}

	items, total, err := h.Donations.List(c.Context(), category, c.Query("city"), limit)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.ListDonationsResp{
		Donations:  items,
		Pagination: dto.Pagination{Total: total},
	})
}

// @Summary      Offer a donation item
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body     dto.CreateDonationReq  true  "Item payload"
// @Success      201   {object} model.DonationItem
// @Failure      400   {object} dto.ErrorResponse
// @Router       /donations [post]
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	var body dto.CreateDonationReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	title := strings.TrimSpace(body.Title)
	if title == "" {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "title required"})
	}

	category := model.DonationCategory(body.Category)
	if !category.Valid() {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid category"})
	}
	condition := model.DonationCondition(body.Condition)
	if !condition.Valid() {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid condition"})
	}

	item := &model.DonationItem{
		UserID:      uid,
		Title:       title,
		Description: strings.TrimSpace(body.Description),
		Category:    category,
		Condition:   condition,
		City:        strings.TrimSpace(body.City),
		PhotoURLs:   body.PhotoURLs,
	}
	if err := h.Donations.Create(c.Context(), item); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(item)
}

// @Summary      Create a payment intent
// @Description  Money donations go through Stripe; the client finishes the
// @Description  flow with the returned client secret.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body     dto.PaymentIntentReq  true  "Amount in minor units"
// @Success      201   {object} dto.PaymentIntentResp
// @Failure      400   {object} dto.ErrorResponse
// @Failure      502   {object} dto.ErrorResponse
// @Router       /payments/intent [post]
func (h *DonationHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	if h.Stripe == nil {
		return c.Status(http.StatusNotImplemented).JSON(dto.ErrorResponse{Error: "payments not configured"})
	}

	var body dto.PaymentIntentReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if body.Amount <= 0 {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "amount must be positive"})
	}

	intent, err := h.Stripe.CreateIntent(c.Context(), body.Amount, body.Currency)
	if err != nil {
		log.Error().Err(err).Int64("amount", body.Amount).Msg("payment intent")
		return c.Status(http.StatusBadGateway).JSON(dto.ErrorResponse{Error: "payment provider error"})
	}

	return c.Status(http.StatusCreated).JSON(dto.PaymentIntentResp{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	})
}
