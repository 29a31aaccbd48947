package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// GetHealth handles GET /health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}

// NotFound answers every unmatched route.
func (h *Handler) NotFound(c *fiber.Ctx) error {
	h.logger.Debug("Route not found",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()))
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Endpoint not found",
		"path":  c.Path(),
	})
}

// ErrorHandler is the app-wide fiber error handler.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger.Error("HTTP error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		return c.Status(code).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}
}
