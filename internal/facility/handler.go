package facility

import (
	"errors"
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

// @Summary      Create a facility
// @Description  Superadmin-only: registers a facility together with its admin account, optionally on an initial SaaS plan
// @Tags         admin,facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body facility.CreateFacilityRequest true "Facility payload"
// @Success      201 {object} facility.Facility
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/facilities [post]
func (h *Handler) CreateFacility(c *gin.Context) {
	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.CreateFacility(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrTypeNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility type not found"})
		case ErrPlanNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscription plan not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create facility"})
		}
		return
	}

	c.JSON(http.StatusCreated, f)
}

// @Summary      List facilities
// @Description  Superadmin-only; each row passes the lazy expiry check
// @Tags         admin,facilities
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} facility.Facility
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/facilities [get]
func (h *Handler) ListFacilities(c *gin.Context) {
	facilities, err := h.service.ListFacilities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch facilities"})
		return
	}

	c.JSON(http.StatusOK, facilities)
}

// @Summary      Get a facility
// @Tags         admin,facilities
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Facility ID"
// @Success      200 {object} facility.Facility
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/facilities/{id} [get]
func (h *Handler) GetFacility(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	f, err := h.service.GetFacility(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
		return
	}

	c.JSON(http.StatusOK, f)
}

// @Summary      Assign a SaaS plan to a facility
// @Description  Superadmin-only: activates the subscription and computes expiry from the plan duration
// @Tags         admin,facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Facility ID"
// @Param        request body facility.AssignPlanRequest true "Plan assignment"
// @Success      200 {object} facility.Facility
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/facilities/{id}/assign-plan [post]
func (h *Handler) AssignPlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.AssignPlan(c.Request.Context(), id, req.PlanID)
	if err != nil {
		switch err {
		case ErrFacilityNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
		case ErrPlanNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscription plan not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to assign plan"})
		}
		return
	}

	c.JSON(http.StatusOK, f)
}

// @Summary      Override a facility subscription
// @Description  Superadmin-only support escape hatch: writes status and/or expiry directly
// @Tags         admin,facilities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Facility ID"
// @Param        request body facility.OverrideRequest true "Override payload"
// @Success      200 {object} facility.Facility
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/facilities/{id}/subscription-update [post]
func (h *Handler) UpdateSubscription(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
		return
	}

	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.Override(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrFacilityNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
		case ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid subscription status"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, f)
}

// @Summary      Current facility subscription
// @Description  Returns the caller's facility after the lazy expiry check
// @Tags         facility
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} facility.Facility
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/facility/subscription [get]
func (h *Handler) GetOwnSubscription(c *gin.Context) {
	facilityID, ok := auth.GetFacilityID(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Account is not attached to a facility"})
		return
	}

	f, err := h.service.GetFacility(c.Request.Context(), facilityID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
		return
	}

	c.JSON(http.StatusOK, f)
}

// @Summary      Create a facility type
// @Tags         admin,facility-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body facility.CreateFacilityTypeRequest true "Facility type payload"
// @Success      201 {object} facility.FacilityType
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/facility-types [post]
func (h *Handler) CreateType(c *gin.Context) {
	var req CreateFacilityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ft, err := h.service.CreateType(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ft)
}

// @Summary      List facility types
// @Tags         facility-types
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} facility.FacilityType
// @Router       /api/facility-types [get]
func (h *Handler) ListTypes(c *gin.Context) {
	types, err := h.service.ListTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch facility types"})
		return
	}

	c.JSON(http.StatusOK, types)
}

// QuotaErrorOrInternal maps a quota failure to a 422 with the limit attached,
// anything else to a 500. Shared by the client and user handlers.
func QuotaErrorOrInternal(c *gin.Context, err error, fallback string) {
	var quotaErr *QuotaError
	if errors.As(err, &quotaErr) {
		c.JSON(http.StatusUnprocessableEntity, api.QuotaErrorResponse{
			Error: quotaErr.Error(),
			Limit: quotaErr.Limit,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
}
