package handler

import (
	"errors"
	"net/http"
	"time"

	"loadtracker/internal/core/logger"
	"loadtracker/internal/features/usage/domain"
	"loadtracker/internal/features/usage/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// UsageHandler handles HTTP requests for usage metering and overage bills.
type UsageHandler struct {
	service ports.UsageService
	now     func() time.Time
}

// NewUsageHandler creates a new UsageHandler.
func NewUsageHandler(service ports.UsageService) *UsageHandler {
	return &UsageHandler{
		service: service,
		now:     time.Now,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id"`
}

// RecordEventRequest is the body of POST /usage/{account}/events.
type RecordEventRequest struct {
	// ID deduplicates retries. Generated when empty.
	ID         string          `json:"id"`
	Resource   string          `json:"resource" example:"document_ai"`
	Quantity   decimal.Decimal `json:"quantity" swaggertype:"number" example:"1"`
	OccurredAt *time.Time      `json:"occurred_at,omitempty"`
}

// AssignTierRequest is the body of PUT /usage/{account}/tier.
type AssignTierRequest struct {
	Tier string `json:"tier" example:"professional"`
}

// RecordEvent handles POST /usage/:account/events.
// @Summary Record usage
// @Description Adds a metered event to the account's counters for the period it occurred in.
// @Tags usage
// @Accept json
// @Produce json
// @Param account path string true "Account ID"
// @Param event body RecordEventRequest true "Usage event"
// @Success 201 {object} domain.Event
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usage/{account}/events [post]
func (h *UsageHandler) RecordEvent(c *fiber.Ctx) error {
	var req RecordEventRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	event := domain.Event{
		ID:       req.ID,
		Resource: domain.Resource(req.Resource),
		Quantity: req.Quantity,
	}
	if req.OccurredAt != nil {
		event.OccurredAt = *req.OccurredAt
	}

	recorded, err := h.service.Record(c.UserContext(), c.Params("account"), event)
	if err != nil {
		return h.fail(c, "Failed to record usage", err)
	}
	return c.Status(http.StatusCreated).JSON(recorded)
}

// GetBill handles GET /usage/:account/bill.
// @Summary Overage bill
// @Description Prices the account's usage for a period against its tier. Defaults to the current month.
// @Tags usage
// @Produce json
// @Param account path string true "Account ID"
// @Param period query string false "YYYY-MM"
// @Success 200 {object} domain.Bill
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usage/{account}/bill [get]
func (h *UsageHandler) GetBill(c *fiber.Ctx) error {
	period, err := h.period(c)
	if err != nil {
		return h.fail(c, "Invalid period", err)
	}

	bill, err := h.service.Bill(c.UserContext(), c.Params("account"), period)
	if err != nil {
		return h.fail(c, "Failed to compute bill", err)
	}
	return c.Status(http.StatusOK).JSON(bill)
}

// AssignTier handles PUT /usage/:account/tier.
// @Summary Assign tier
// @Description Subscribes the account to a tier from the catalog.
// @Tags usage
// @Accept json
// @Produce json
// @Param account path string true "Account ID"
// @Param tier body AssignTierRequest true "Tier"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usage/{account}/tier [put]
func (h *UsageHandler) AssignTier(c *fiber.Ctx) error {
	var req AssignTierRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.AssignTier(c.UserContext(), c.Params("account"), req.Tier); err != nil {
		return h.fail(c, "Failed to assign tier", err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ResetUsage handles DELETE /usage/:account.
// @Summary Reset usage
// @Description Clears the account's counters for a period. Defaults to the current month.
// @Tags usage
// @Produce json
// @Param account path string true "Account ID"
// @Param period query string false "YYYY-MM"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usage/{account} [delete]
func (h *UsageHandler) ResetUsage(c *fiber.Ctx) error {
	period, err := h.period(c)
	if err != nil {
		return h.fail(c, "Invalid period", err)
	}

	if err := h.service.ResetPeriod(c.UserContext(), c.Params("account"), period); err != nil {
		return h.fail(c, "Failed to reset usage", err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListTiers handles GET /tiers.
// @Summary List tiers
// @Description Returns the subscription tiers with base prices and included usage.
// @Tags usage
// @Produce json
// @Success 200 {array} domain.Tier
// @Router /tiers [get]
func (h *UsageHandler) ListTiers(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Tiers())
}

func (h *UsageHandler) period(c *fiber.Ctx) (domain.Period, error) {
	raw := c.Query("period")
	if raw == "" {
		return domain.PeriodOf(h.now()), nil
	}
	return domain.ParsePeriod(raw)
}

func (h *UsageHandler) fail(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownResource),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidAccount),
		errors.Is(err, domain.ErrUnknownTier):
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicateEvent):
		return respondError(c, http.StatusConflict, err.Error())
	}

	logger.Get().Error(msg,
		zap.String("account", c.Params("account")),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)
	return respondError(c, http.StatusInternalServerError, "Internal server error")
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func respondError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}
