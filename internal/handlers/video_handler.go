package handlers

import (
	"github.com/alrodriguezdg/youstream/internal/services"
	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	videoService *services.VideoService
}

func NewVideoHandler(videoService *services.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

func (h *VideoHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	maxResults := c.QueryInt("maxResults", 20)

	resp, err := h.videoService.Search(c.UserContext(), query, maxResults)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *VideoHandler) Popular(c *fiber.Ctx) error {
	maxResults := c.QueryInt("maxResults", 20)
	categoryID := c.Query("categoryId")

	resp, err := h.videoService.Popular(c.UserContext(), maxResults, categoryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *VideoHandler) Categories(c *fiber.Ctx) error {
	resp, err := h.videoService.Categories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
