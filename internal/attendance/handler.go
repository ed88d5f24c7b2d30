package attendance

import (
	"net/http"
	"strconv"
	"time"

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

// @Summary      Check a member in
// @Description  400 if the member already has a record for today
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body attendance.CreateAttendanceRequest true "Attendance payload"
// @Success      201 {object} attendance.Attendance
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/attendance [post]
func (h *Handler) CheckIn(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	var req CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.service.CheckIn(c.Request.Context(), facilityID, req)
	if err != nil {
		switch err {
		case ErrClientNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Client not found"})
		case ErrAlreadyCheckedIn:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Client already checked in today"})
		case ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Status must be present, absent or excused"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to record attendance"})
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// @Summary      List attendance for a day
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success      200 {array} attendance.Attendance
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/attendance [get]
func (h *Handler) ListByDate(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	records, err := h.service.ListByDate(c.Request.Context(), facilityID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch attendance"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// @Summary      List a member's attendance history
// @Tags         attendance,clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Success      200 {array} attendance.Attendance
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/clients/{id}/attendance [get]
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

	records, err := h.service.ListByClient(c.Request.Context(), facilityID, clientID)
	if err != nil {
		switch err {
		case ErrClientNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Client not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch attendance"})
		}
		return
	}

	c.JSON(http.StatusOK, records)
}
