package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitadmin/internal/facility"
)

func clientRouter(svc *service, facilityID *int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(svc)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if facilityID != nil {
			c.Set("facility_id", *facilityID)
		}
	})
	router.POST("/clients", handler.Create)
	router.GET("/clients", handler.List)

	return router
}

func TestCreateClientHandler(t *testing.T) {
	t.Run("Quota rejection returns 422 with limit", func(t *testing.T) {
		repo := new(MockClientRepo)
		facilitySvc := new(MockFacilityService)
		svc := newTestService(repo, new(MockPlanRepo), facilitySvc, time.Now())

		facilitySvc.On("CheckMemberQuota", mock.Anything, 1).
			Return(&facility.QuotaError{Kind: "member", Limit: 2})

		router := clientRouter(svc, intPtr(1))

		body, _ := json.Marshal(CreateClientRequest{Name: "Ravi", Phone: "9900112233"})
		req := httptest.NewRequest("POST", "/clients", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"limit":2`)
	})

	t.Run("Successful creation returns 201", func(t *testing.T) {
		repo := new(MockClientRepo)
		facilitySvc := new(MockFacilityService)
		svc := newTestService(repo, new(MockPlanRepo), facilitySvc, time.Now())

		facilitySvc.On("CheckMemberQuota", mock.Anything, 1).Return(nil)
		repo.On("Create", mock.Anything, mock.Anything).
			Return(&Client{ID: 5, FacilityID: 1, Name: "Ravi", Status: StatusInactive}, nil)

		router := clientRouter(svc, intPtr(1))

		body, _ := json.Marshal(CreateClientRequest{Name: "Ravi", Phone: "9900112233"})
		req := httptest.NewRequest("POST", "/clients", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"inactive"`)
	})

	t.Run("Missing body rejected", func(t *testing.T) {
		svc := newTestService(new(MockClientRepo), new(MockPlanRepo), new(MockFacilityService), time.Now())
		router := clientRouter(svc, intPtr(1))

		req := httptest.NewRequest("POST", "/clients", bytes.NewReader([]byte(`{"name":"Ravi"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("No facility scope returns 403", func(t *testing.T) {
		svc := newTestService(new(MockClientRepo), new(MockPlanRepo), new(MockFacilityService), time.Now())
		router := clientRouter(svc, nil)

		body, _ := json.Marshal(CreateClientRequest{Name: "Ravi", Phone: "9900112233"})
		req := httptest.NewRequest("POST", "/clients", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListClientsHandler(t *testing.T) {
	repo := new(MockClientRepo)
	svc := newTestService(repo, new(MockPlanRepo), new(MockFacilityService), time.Now())

	repo.On("GetAllByFacility", mock.Anything, 1).Return([]Client{
		{ID: 1, FacilityID: 1, Name: "Ravi", Status: StatusActive},
		{ID: 2, FacilityID: 1, Name: "Mina", Status: StatusInactive},
	}, nil)

	router := clientRouter(svc, intPtr(1))

	req := httptest.NewRequest("GET", "/clients", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Ravi"`)
	assert.Contains(t, w.Body.String(), `"Mina"`)
}
