package handler

import (
	"errors"
	"time"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/features/tracking/domain"
	"parcel-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService *service.TrackingService
	requestTimeout  time.Duration
}

// NewTrackingHandler creates a new TrackingHandler.
// requestTimeout bounds a whole resolution; zero leaves it unbounded.
func NewTrackingHandler(trackingService *service.TrackingService, requestTimeout time.Duration) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
		requestTimeout:  requestTimeout,
	}
}

// TrackRequest is the body of POST /track.
type TrackRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

// TrackResponse wraps a resolved record.
type TrackResponse struct {
	Success bool                   `json:"success"`
	Data    *domain.TrackingRecord `json:"data"`
	// Timestamp is the RFC 3339 time the answer was produced.
	Timestamp string `json:"timestamp"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	// Reason and HoaxDetected are set only for rejected tracking numbers.
	Reason       string `json:"reason,omitempty"`
	HoaxDetected bool   `json:"hoaxDetected,omitempty"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// Track godoc
// @Summary Track a shipment
// @Description Classifies the tracking number and resolves its current status. Backend failures degrade to synthetic data and never fail the request.
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body TrackRequest true "Tracking number"
// @Success 200 {object} TrackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /track [post]
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	var req TrackRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Error("Failed to parse track request",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to track package",
			RayID: rayID(c),
		})
	}

	record, err := h.trackingService.Track(c.UserContext(), req.TrackingNumber)
	if err != nil {
		var rejected *domain.RejectedError
		switch {
		case errors.Is(err, service.ErrTrackingNumberRequired):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Tracking number required",
				RayID: rayID(c),
			})
		case errors.As(err, &rejected):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:        "Invalid tracking number",
				Reason:       rejected.Reason,
				HoaxDetected: rejected.HoaxDetected,
				RayID:        rayID(c),
			})
		}

		logger.Get().Error("Failed to track package", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to track package",
			RayID: rayID(c),
		})
	}

	return c.JSON(TrackResponse{
		Success:   true,
		Data:      record,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Preflight answers CORS preflight requests for /track.
// @Summary CORS preflight
// @Tags tracking
// @Success 204
// @Router /track [options]
func (h *TrackingHandler) Preflight(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
	return c.SendStatus(fiber.StatusNoContent)
}

// Register mounts the tracking routes.
func (h *TrackingHandler) Register(router fiber.Router) {
	track := h.Track
	if h.requestTimeout > 0 {
		track = timeout.NewWithContext(h.Track, h.requestTimeout)
	}
	router.Post("/track", track)
	router.Options("/track", h.Preflight)
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
