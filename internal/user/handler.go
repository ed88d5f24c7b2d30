package user

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

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.LoginRequest true "Credentials"
// @Success      200 {object} user.LoginResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	u, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         u,
	})
}

// @Summary      Refresh the access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.RefreshRequest true "Refresh token"
// @Success      200 {object} user.LoginResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	accessToken, u, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:        accessToken,
		RefreshToken: req.RefreshToken,
		User:         u,
	})
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} user.User
// @Failure      401 {object} api.ErrorResponse
// @Router       /api/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, u)
}

func facilityScope(c *gin.Context) (int, bool) {
	facilityID, ok := auth.GetFacilityID(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Account is not attached to a facility"})
		return 0, false
	}
	return facilityID, true
}

// @Summary      Create a trainer account
// @Description  Rejected with 422 when the facility's SaaS plan staff quota is reached
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body user.CreateStaffRequest true "Staff payload"
// @Success      201 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      422 {object} api.QuotaErrorResponse
// @Router       /api/staff [post]
func (h *Handler) CreateStaff(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.CreateStaff(c.Request.Context(), facilityID, req)
	if err != nil {
		switch err {
		case ErrEmailExists:
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
		default:
			facility.QuotaErrorOrInternal(c, err, "Failed to create staff account")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      List trainer accounts
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} user.User
// @Router       /api/staff [get]
func (h *Handler) ListStaff(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	staff, err := h.service.ListStaff(c.Request.Context(), facilityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

// @Summary      Delete a trainer account
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/staff/{id} [delete]
func (h *Handler) DeleteStaff(c *gin.Context) {
	facilityID, ok := facilityScope(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	if err := h.service.DeleteStaff(c.Request.Context(), facilityID, id); err != nil {
		switch err {
		case ErrUserNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Staff account not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete staff account"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Staff account deleted"})
}
