package plan

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

// @Summary      Create a membership plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body plan.CreatePlanRequest true "Plan payload"
// @Success      201 {object} plan.Plan
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /api/plans [post]
func (h *Handler) Create(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), facilityID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// @Summary      List membership plans
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} plan.Plan
// @Router       /api/plans [get]
func (h *Handler) List(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	plans, err := h.service.List(c.Request.Context(), facilityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// @Summary      Get a membership plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Plan ID"
// @Success      200 {object} plan.Plan
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/plans/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	p, err := h.service.Get(c.Request.Context(), facilityID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Update a membership plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Plan ID"
// @Param        request body plan.UpdatePlanRequest true "Fields to update"
// @Success      200 {object} plan.Plan
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/plans/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

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

	p, err := h.service.Update(c.Request.Context(), facilityID, id, req)
	if err != nil {
		switch err {
		case ErrPlanNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update plan"})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Delete a membership plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Plan ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/plans/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), facilityID, id); err != nil {
		switch err {
		case ErrPlanNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete plan"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Plan deleted"})
}
