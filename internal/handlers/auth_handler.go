package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"yaopets-backend/dto"
	"yaopets-backend/internal/middleware"
	"yaopets-backend/internal/oauth"
	"yaopets-backend/internal/repository"
	"yaopets-backend/internal/services"
	"yaopets-backend/model"
)

type AuthHandler struct {
	Auth   *services.AuthService
	Users  *repository.UserRepository
	Google *oauth.GoogleClient // nil when OAuth is not configured
}

// @Summary      Register
// @Description  Create an account and return a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body     dto.RegisterReq  true  "Registration payload"
// @Success      201   {object} dto.SessionResp
// @Failure      400   {object} dto.ErrorResponse
// @Failure      409   {object} dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	u, token, err := h.Auth.Register(c.Context(), body.Username, body.Name, body.Email, body.Password, model.UserType(body.UserType))
	if errors.Is(err, services.ErrEmailTaken) {
		return c.Status(http.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(dto.SessionResp{User: u, AccessToken: token})
}

// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body     dto.LoginReq  true  "Credentials"
// @Success      200   {object} dto.SessionResp
// @Failure      401   {object} dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	u, token, err := h.Auth.Login(c.Context(), body.Email, body.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}
	if err != nil {
		log.Error().Err(err).Msg("login")
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "login failed"})
	}

	return c.JSON(dto.SessionResp{User: u, AccessToken: token})
}

// @Summary      Google OAuth callback
// @Description  Exchange the authorization code, upsert the account and return a session
// @Tags         auth
// @Produce      json
// @Param        code  query    string  true  "Authorization code"
// @Success      200   {object} dto.SessionResp
// @Failure      400   {object} dto.ErrorResponse
// @Failure      502   {object} dto.ErrorResponse
// @Router       /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	if h.Google == nil {
		return c.Status(http.StatusNotImplemented).JSON(dto.ErrorResponse{Error: "google login not configured"})
	}

	code := c.Query("code")
	if code == "" {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "code required"})
	}

	info, err := h.Google.Exchange(c.Context(), code)
	if err != nil {
		log.Error().Err(err).Msg("google exchange")
		return c.Status(http.StatusBadGateway).JSON(dto.ErrorResponse{Error: "google login failed"})
	}

	u, err := h.Users.UpsertGoogle(c.Context(), info.ID, info.Email, info.Name, info.Picture)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	token, err := h.Auth.Mint(u.ID.Hex())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SessionResp{User: u, AccessToken: token})
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} model.User
// @Failure      401  {object} dto.ErrorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	uid, _ := middleware.UIDObjectID(c)

	u, err := h.Users.FindByID(c.Context(), uid)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unknown user"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(u)
}
