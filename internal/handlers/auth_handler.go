package handlers

import (
	"github.com/alrodriguezdg/youstream/internal/apperrors"
	"github.com/alrodriguezdg/youstream/internal/dto"
	"github.com/alrodriguezdg/youstream/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("Cuerpo de la petición inválido"))
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) CheckUsername(c *fiber.Ctx) error {
	var req dto.CheckUsernameRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("Cuerpo de la petición inválido"))
	}

	resp, err := h.authService.CheckUsername(req.Username)
	if err != nil {
		// This endpoint reports errors in its own shape.
		return c.Status(statusFor(err)).JSON(dto.CheckUsernameResponse{
			Available: false,
			Message:   apperrors.MessageOf(err),
		})
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("Cuerpo de la petición inválido"))
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) EntertainmentTypes(c *fiber.Ctx) error {
	return c.JSON(dto.EntertainmentTypesResponse{Types: services.EntertainmentTypes()})
}
