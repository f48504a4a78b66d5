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
	"yaopets-backend/model"
)

type PetHandler struct {
	Pets *repository.PetRepository
}

// @Summary      List pet listings
// @Description  Filter by status (lost, found, adoption) and city
// @Tags         pets
// @Produce      json
// @Param        status  query  string  false  "lost | found | adoption"
// @Param        city    query  string  false  "City filter"
// @Param        limit   query  int     false  "Max items" default(20)
// @Success      200     {object} dto.ListPetsResp
// @Failure      400     {object} dto.ErrorResponse
// @Router       /pets [get]
func (h *PetHandler) List(c *fiber.Ctx) error {
	status := model.PetStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid status"})
	}

	limit := int64(c.QueryInt("limit", config.DefaultLimitPosts))
	if limit <= 0 || limit > config.MaxLimitPosts {
		limit = config.DefaultLimitPosts
	}

	pets, total, err := h.Pets.List(c.Context(), status, c.Query("city"), limit)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.ListPetsResp{
		Pets:       pets,
		Pagination: dto.Pagination{Total: total},
	})
}

// @Summary      Get a pet listing
// @Tags         pets
// @Produce      json
// @Param        id  path     string  true  "Pet ID"
// @Success      200 {object} model.Pet
// @Failure      404 {object} dto.ErrorResponse
// @Router       /pets/{id} [get]
func (h *PetHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid pet id"})
	}

	pet, err := h.Pets.FindByID(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "pet not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(pet)
}

// @Summary      Create a pet listing
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body     dto.CreatePetReq  true  "Listing payload"
// @Success      201   {object} model.Pet
// @Failure      400   {object} dto.ErrorResponse
// @Router       /pets [post]
func (h *PetHandler) Create(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	var body dto.CreatePetReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	name := strings.TrimSpace(body.Name)
	if name == "" || strings.TrimSpace(body.Species) == "" {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "name and species required"})
	}

	status := model.PetStatus(body.Status)
	if !status.Valid() || status == model.PetResolved {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "status must be lost, found or adoption"})
	}
	// lost/found listings carry a location for the map CTA
	if (status == model.PetLost || status == model.PetFound) && body.Location == nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "location required for lost/found listings"})
	}

	pet := &model.Pet{
		UserID:      uid,
		Name:        name,
		Species:     strings.TrimSpace(body.Species),
		Breed:       strings.TrimSpace(body.Breed),
		Status:      status,
		Description: strings.TrimSpace(body.Description),
		City:        strings.TrimSpace(body.City),
		Location:    body.Location,
		PhotoURLs:   body.PhotoURLs,
		Contact:     strings.TrimSpace(body.Contact),
	}
	if err := h.Pets.Create(c.Context(), pet); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(pet)
}

// @Summary      Update listing status
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path     string                 true  "Pet ID"
// @Param        body  body     dto.UpdatePetStatusReq true  "New status"
// @Success      200   {object} model.Pet
// @Failure      403   {object} dto.ErrorResponse
// @Failure      404   {object} dto.ErrorResponse
// @Router       /pets/{id}/status [patch]
func (h *PetHandler) UpdateStatus(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid pet id"})
	}

	var body dto.UpdatePetStatusReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	status := model.PetStatus(body.Status)
	if !status.Valid() {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid status"})
	}

	pet, err := h.Pets.UpdateStatus(c.Context(), id, uid, status)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "pet not found"})
	case errors.Is(err, repository.ErrNotOwner):
		return c.Status(http.StatusForbidden).JSON(dto.ErrorResponse{Error: "not your listing"})
	case err != nil:
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(pet)
}
