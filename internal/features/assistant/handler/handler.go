package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/features/assistant/domain"
	"parcel-tracker/internal/features/assistant/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssistantHandler handles HTTP requests for the tracking assistant.
type AssistantHandler struct {
	service ports.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(service ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		service: service,
	}
}

// AskRequest represents the request body for POST /ai-response.
type AskRequest struct {
	Message      string          `json:"message"`
	TrackingData json.RawMessage `json:"trackingData,omitempty" swaggertype:"object"`
}

// AskResponse carries the model's answer.
type AskResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// Ask handles POST /ai-response.
// @Summary Ask the tracking assistant
// @Description Answers a free-form question, optionally about tracking data the client already holds.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question"
// @Success 200 {object} AskResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ai-response [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	question, err := domain.NewQuestion(req.Message, req.TrackingData)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Message is required",
		})
	}

	answer, err := h.service.Answer(c.UserContext(), question)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotConfigured):
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"error":   "Assistant is not configured",
			})
		case errors.Is(err, domain.ErrNoModelAnswered):
			logger.Get().Error("Assistant failed to answer", zap.Error(err))
			return c.Status(http.StatusBadGateway).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to generate AI response",
			})
		}
		logger.Get().Error("Assistant error", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(AskResponse{
		Success:   true,
		Response:  answer,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Register mounts the assistant routes.
func (h *AssistantHandler) Register(router fiber.Router) {
	router.Post("/ai-response", h.Ask)
}
