package client

import (
	"net/http"
	"strconv"

	"fitadmin/internal/api"
	"fitadmin/internal/auth"
	"fitadmin/internal/facility"

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

// @Summary      Create a member
// @Description  Rejected with 422 when the facility's SaaS plan member quota is reached
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body client.CreateClientRequest true "Member payload"
// @Success      201 {object} client.Client
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      422 {object} api.QuotaErrorResponse
// @Router       /api/clients [post]
func (h *Handler) Create(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), facilityID, req)
	if err != nil {
		switch err {
		case ErrPlanNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership plan not found"})
		default:
			facility.QuotaErrorOrInternal(c, err, "Failed to create client")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      List members
// @Description  Each row passes the lazy payment_due check
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} client.Client
// @Router       /api/clients [get]
func (h *Handler) List(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	clients, err := h.service.List(c.Request.Context(), facilityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// @Summary      Get a member
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Success      200 {object} client.Client
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client ID"})
		return
	}

	found, err := h.service.Get(c.Request.Context(), facilityID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Client not found"})
		return
	}

	c.JSON(http.StatusOK, found)
}

// @Summary      Update a member
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Param        request body client.UpdateClientRequest true "Fields to update"
// @Success      200 {object} client.Client
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client ID"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), facilityID, id, req)
	if err != nil {
		switch err {
		case ErrClientNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Client not found"})
		case ErrPlanNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership plan not found"})
		case ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client status"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update client"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a member
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), facilityID, id); err != nil {
		switch err {
		case ErrClientNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Client not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete client"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Client deleted"})
}
