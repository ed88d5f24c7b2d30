package payment

import (
	"net/http"
	"strconv"

	"fitadmin/internal/api"
	"fitadmin/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func facilityScope(c *gin.Context) (int, bool) {
	facilityID, ok := auth.GetFacilityID(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Account is not attached to a facility"})
		return 0, false
	}
	return facilityID, true
}

// @Summary      Record a member payment
// @Description  Recomputes the member's plan expiry and reactivates them when a plan is assigned
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body payment.RecordPaymentRequest true "Payment payload"
// @Success      201 {object} payment.RecordPaymentResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/payments [post]
func (h *Handler) Record(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.RecordPayment(c.Request.Context(), facilityID, req)
	if err != nil {
		switch err {
		case ErrClientNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Client not found"})
		case ErrInvalidMethod:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Payment method must be cash or upi"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, RecordPaymentResponse{
		Payment:       result.Payment,
		UpdatedClient: result.UpdatedClient,
	})
}

// @Summary      List facility payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} payment.Payment
// @Router       /api/payments [get]
func (h *Handler) List(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	payments, err := h.service.ListByFacility(c.Request.Context(), facilityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary      List a member's payments
// @Tags         payments,clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Success      200 {array} payment.Payment
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/clients/{id}/payments [get]
func (h *Handler) ListByClient(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client ID"})
		return
	}

	payments, err := h.service.ListByClient(c.Request.Context(), facilityID, clientID)
	if err != nil {
		switch err {
		case ErrClientNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Client not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch payments"})
		}
		return
	}

	c.JSON(http.StatusOK, payments)
}
