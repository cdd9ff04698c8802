package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opentalent/recruitment-platform/internal/api/metrics"
	"github.com/opentalent/recruitment-platform/internal/api/middleware"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// PaymentHandler starts checkout sessions and reports their status.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type checkoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=monthly yearly"`
}

type checkoutResponse struct {
	SessionID string `json:"session_id"`
}

// Checkout creates a payment session for the authenticated user.
//
// @Summary      Start a checkout
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      checkoutRequest  true  "Subscription plan"
// @Success      200   {object}  checkoutResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /checkout [post]
func (h *PaymentHandler) Checkout(c echo.Context) error {
	user := middleware.Principal(c)

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sessionID, err := h.payments.Checkout(c.Request().Context(), ports.CheckoutInput{
		UserID: user.ID,
		Email:  user.Email,
		Plan:   req.Plan,
	})
	if err != nil {
		return err
	}

	metrics.CheckoutsTotal.WithLabelValues(req.Plan).Inc()
	return c.JSON(http.StatusOK, checkoutResponse{SessionID: sessionID})
}

// Status reports a checkout session's payment state. A paid session marks
// the user as paid as a side effect.
//
// @Summary      Checkout status
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Checkout session ID"
// @Success      200  {object}  ports.CheckoutStatus
// @Failure      404  {object}  map[string]string
// @Router       /checkout/{id} [get]
func (h *PaymentHandler) Status(c echo.Context) error {
	status, err := h.payments.Status(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}
