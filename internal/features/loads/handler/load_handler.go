package handler

import (
	"errors"
	"net/http"

	"loadtracker/internal/core/logger"
	"loadtracker/internal/features/loads/domain"
	"loadtracker/internal/features/loads/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoadHandler handles HTTP requests for load status rules and transitions.
type LoadHandler struct {
	service ports.LoadService
}

// NewLoadHandler creates a new LoadHandler.
func NewLoadHandler(service ports.LoadService) *LoadHandler {
	return &LoadHandler{
		service: service,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// StatusEntry is one row of the status vocabulary.
type StatusEntry struct {
	Status domain.Status `json:"status"`
	Label  string        `json:"label"`
	Icon   string        `json:"icon"`
}

// ListStatuses handles GET /statuses.
// @Summary List load statuses
// @Description Returns the status vocabulary in lifecycle order with labels and icons.
// @Tags statuses
// @Produce json
// @Success 200 {array} StatusEntry
// @Router /statuses [get]
func (h *LoadHandler) ListStatuses(c *fiber.Ctx) error {
	all := domain.AllStatuses()
	entries := make([]StatusEntry, 0, len(all))
	for _, s := range all {
		entries = append(entries, StatusEntry{Status: s, Label: domain.Label(s), Icon: domain.Icon(s)})
	}
	return c.Status(http.StatusOK).JSON(entries)
}

// DescribeStatus handles GET /statuses/describe.
// @Summary Describe a status
// @Description Resolves label, icon, next action and progress for a raw status value. An empty status is treated as absent.
// @Tags statuses
// @Produce json
// @Param status query string false "Status value"
// @Param view query string false "dispatcher (default) or driver"
// @Success 200 {object} domain.StatusView
// @Failure 400 {object} ErrorResponse
// @Router /statuses/describe [get]
func (h *LoadHandler) DescribeStatus(c *fiber.Ctx) error {
	view, err := domain.ParseView(c.Query("view"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "view must be dispatcher or driver")
	}

	status, _ := domain.ParseStatus(c.Query("status"))
	return c.Status(http.StatusOK).JSON(domain.Describe(view, status))
}

// NextAction handles GET /statuses/next.
// @Summary Next guided action
// @Description Returns the single permitted forward action for a status in the given view.
// @Tags statuses
// @Produce json
// @Param status query string true "Current status"
// @Param view query string false "dispatcher (default) or driver"
// @Success 200 {object} domain.Action
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /statuses/next [get]
func (h *LoadHandler) NextAction(c *fiber.Ctx) error {
	view, err := domain.ParseView(c.Query("view"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "view must be dispatcher or driver")
	}

	status, _ := domain.ParseStatus(c.Query("status"))
	action, ok := domain.NextAction(view, status)
	if !ok {
		return respondError(c, http.StatusNotFound, "no next action for status")
	}
	return c.Status(http.StatusOK).JSON(action)
}

// Progress handles GET /statuses/progress.
// @Summary Progress bar steps
// @Description Projects a status onto the progress bar. An absent status defaults to assigned.
// @Tags statuses
// @Produce json
// @Param status query string false "Current status"
// @Success 200 {array} domain.Step
// @Router /statuses/progress [get]
func (h *LoadHandler) Progress(c *fiber.Ctx) error {
	status, _ := domain.ParseStatus(c.Query("status"))
	return c.Status(http.StatusOK).JSON(domain.Progress(status))
}

// GetLoadStatus handles GET /loads/:id/status.
// @Summary Load status view
// @Description Fetches a load and describes its status for the given view.
// @Tags loads
// @Produce json
// @Param id path string true "Load ID"
// @Param view query string false "dispatcher (default) or driver"
// @Success 200 {object} domain.StatusView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /loads/{id}/status [get]
func (h *LoadHandler) GetLoadStatus(c *fiber.Ctx) error {
	view, err := domain.ParseView(c.Query("view"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "view must be dispatcher or driver")
	}

	sv, err := h.service.Describe(c.UserContext(), c.Params("id"), view)
	if err != nil {
		return h.fail(c, "Failed to describe load", err)
	}
	return c.Status(http.StatusOK).JSON(sv)
}

// AdvanceLoad handles POST /loads/:id/advance.
// @Summary Advance a load
// @Description Moves the load to the next status of the view's guided workflow.
// @Tags loads
// @Produce json
// @Param id path string true "Load ID"
// @Param view query string false "dispatcher (default) or driver"
// @Success 200 {object} domain.StatusView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /loads/{id}/advance [post]
func (h *LoadHandler) AdvanceLoad(c *fiber.Ctx) error {
	view, err := domain.ParseView(c.Query("view"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "view must be dispatcher or driver")
	}

	sv, err := h.service.Advance(c.UserContext(), c.Params("id"), view)
	if err != nil {
		return h.fail(c, "Failed to advance load", err)
	}
	return c.Status(http.StatusOK).JSON(sv)
}

// ForceAdvanceLoad handles POST /loads/:id/force-advance.
// @Summary Force the next stage
// @Description Administrative override that bypasses the guided workflow. Requires confirm=true.
// @Tags loads
// @Produce json
// @Param id path string true "Load ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} domain.StatusView
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 428 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /loads/{id}/force-advance [post]
func (h *LoadHandler) ForceAdvanceLoad(c *fiber.Ctx) error {
	confirmed := c.QueryBool("confirm", false)

	sv, err := h.service.ForceAdvance(c.UserContext(), c.Params("id"), confirmed)
	if err != nil {
		return h.fail(c, "Failed to force-advance load", err)
	}
	return c.Status(http.StatusOK).JSON(sv)
}

// fail maps service errors to HTTP responses.
func (h *LoadHandler) fail(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrLoadNotFound):
		return respondError(c, http.StatusNotFound, "Load not found")
	case errors.Is(err, domain.ErrNoNextAction), errors.Is(err, domain.ErrNoNextStage):
		return respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrConfirmationRequired):
		return respondError(c, http.StatusPreconditionRequired, "Force advance must be confirmed with confirm=true")
	}

	logger.Get().Error(msg,
		zap.String("load_id", c.Params("id")),
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
