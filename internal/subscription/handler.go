package subscription

import (
	"net/http"
	"strconv"

	"fitadmin/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Create a SaaS subscription plan
// @Description  Superadmin-only: create a new platform billing tier
// @Tags         admin,subscription-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body subscription.CreatePlanRequest true "Plan payload"
// @Success      201 {object} subscription.Plan
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscription-plans [post]
func (h *Handler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	plan, err := h.service.CreatePlan(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create subscription plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// @Summary      List SaaS subscription plans
// @Tags         admin,subscription-plans
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} subscription.Plan
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscription-plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.service.ListPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch subscription plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// @Summary      Get a SaaS subscription plan
// @Tags         admin,subscription-plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Plan ID"
// @Success      200 {object} subscription.Plan
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/subscription-plans/{id} [get]
func (h *Handler) GetPlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	plan, err := h.service.GetPlan(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscription plan not found"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// @Summary      Update a SaaS subscription plan
// @Tags         admin,subscription-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Plan ID"
// @Param        request body subscription.UpdatePlanRequest true "Fields to update"
// @Success      200 {object} subscription.Plan
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/subscription-plans/{id} [put]
func (h *Handler) UpdatePlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	plan, err := h.service.UpdatePlan(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrPlanNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscription plan not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update subscription plan"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// @Summary      Delete a SaaS subscription plan
// @Description  Rejected while any facility still references the plan
// @Tags         admin,subscription-plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Plan ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/subscription-plans/{id} [delete]
func (h *Handler) DeletePlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	if err := h.service.DeletePlan(c.Request.Context(), id); err != nil {
		switch err {
		case ErrPlanNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscription plan not found"})
		case ErrPlanInUse:
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Plan is still assigned to facilities"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete subscription plan"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Subscription plan deleted"})
}
