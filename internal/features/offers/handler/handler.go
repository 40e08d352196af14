package handler

import (
	"errors"
	"net/http"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/features/offers/domain"
	"parcel-tracker/internal/features/offers/ports"
	"parcel-tracker/internal/features/offers/service"
	tracking "parcel-tracker/internal/features/tracking/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OfferHandler handles HTTP requests for offers.
type OfferHandler struct {
	service ports.OfferService
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(service ports.OfferService) *OfferHandler {
	return &OfferHandler{
		service: service,
	}
}

// OffersResponse lists the offers for one status code.
type OffersResponse struct {
	Success    bool                `json:"success"`
	StatusCode tracking.StatusCode `json:"statusCode"`
	Offers     []domain.Offer      `json:"offers"`
}

// SetOffersRequest represents the request body for replacing offers.
type SetOffersRequest struct {
	Offers []domain.Offer `json:"offers"`
}

// GetOffers handles GET /offers/:statusCode.
// @Summary Get offers for a status
// @Description Returns the offers to render next to a tracking result with the given status code.
// @Tags Offers
// @Produce json
// @Param statusCode path string true "Status code (IT, OFD, DL, PS, EX, NF)"
// @Success 200 {object} OffersResponse
// @Failure 400 {object} map[string]interface{}
// @Router /offers/{statusCode} [get]
func (h *OfferHandler) GetOffers(c *fiber.Ctx) error {
	code, err := domain.ParseStatusCode(c.Params("statusCode"))
	if err != nil {
		return badStatusCode(c)
	}

	offers, err := h.service.GetOffers(c.UserContext(), code)
	if err != nil {
		return h.fail(c, "Failed to get offers", err)
	}

	return c.Status(http.StatusOK).JSON(OffersResponse{
		Success:    true,
		StatusCode: code,
		Offers:     offers,
	})
}

// SetOffers handles PUT /offers/:statusCode.
// @Summary Replace offers for a status
// @Description Stores an override that replaces the built-in offers for the status code.
// @Tags Offers
// @Accept json
// @Produce json
// @Param statusCode path string true "Status code"
// @Param offers body SetOffersRequest true "Offers"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /offers/{statusCode} [put]
func (h *OfferHandler) SetOffers(c *fiber.Ctx) error {
	code, err := domain.ParseStatusCode(c.Params("statusCode"))
	if err != nil {
		return badStatusCode(c)
	}

	var req SetOffersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.service.SetOffers(c.UserContext(), code, req.Offers); err != nil {
		if errors.Is(err, domain.ErrInvalidOffer) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return h.fail(c, "Failed to set offers", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Offers updated",
	})
}

// ResetOffers handles DELETE /offers/:statusCode.
// @Summary Reset offers for a status
// @Description Removes the stored override so the built-in offers apply again.
// @Tags Offers
// @Produce json
// @Param statusCode path string true "Status code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /offers/{statusCode} [delete]
func (h *OfferHandler) ResetOffers(c *fiber.Ctx) error {
	code, err := domain.ParseStatusCode(c.Params("statusCode"))
	if err != nil {
		return badStatusCode(c)
	}

	if err := h.service.ResetOffers(c.UserContext(), code); err != nil {
		return h.fail(c, "Failed to reset offers", err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Offers reset",
	})
}

// Register mounts the offer routes.
func (h *OfferHandler) Register(router fiber.Router) {
	router.Get("/offers/:statusCode", h.GetOffers)
	router.Put("/offers/:statusCode", h.SetOffers)
	router.Delete("/offers/:statusCode", h.ResetOffers)
}

func badStatusCode(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Unknown status code",
	})
}

func (h *OfferHandler) fail(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, service.ErrStoreUnavailable) {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "Offer store is not configured",
		})
	}

	logger.Get().Error(msg, zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Internal server error",
	})
}
