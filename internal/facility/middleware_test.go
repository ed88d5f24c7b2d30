package facility

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fitadmin/internal/auth"
)

func subscriptionRouter(svc Service, role auth.Role, facilityID *int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_role", role)
		if facilityID != nil {
			c.Set("facility_id", *facilityID)
		}
	})
	router.GET("/clients", RequireActiveSubscription(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func TestRequireActiveSubscription(t *testing.T) {
	now := time.Now()

	t.Run("Active facility passes", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockPlanRepo), now)

		future := now.Add(24 * time.Hour)
		repo.On("GetByID", mock.Anything, 1).Return(&Facility{
			ID:                    1,
			SubscriptionStatus:    StatusActive,
			SubscriptionExpiresAt: &future,
		}, nil)

		router := subscriptionRouter(svc, auth.RoleAdmin, intPtr(1))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/clients", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Expired on the way in gets blocked", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockPlanRepo), now)

		past := now.Add(-24 * time.Hour)
		repo.On("GetByID", mock.Anything, 1).Return(&Facility{
			ID:                    1,
			SubscriptionStatus:    StatusActive,
			SubscriptionExpiresAt: &past,
		}, nil)
		repo.On("UpdateSubscription", mock.Anything, 1, (*int)(nil), StatusExpired, &past).
			Return(&Facility{ID: 1, SubscriptionStatus: StatusExpired}, nil)

		router := subscriptionRouter(svc, auth.RoleAdmin, intPtr(1))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/clients", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("Suspended facility blocked", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockPlanRepo), now)

		repo.On("GetByID", mock.Anything, 1).Return(&Facility{
			ID:                 1,
			SubscriptionStatus: StatusSuspended,
		}, nil)

		router := subscriptionRouter(svc, auth.RoleTrainer, intPtr(1))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/clients", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Superadmin bypasses the guard", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockPlanRepo), now)

		router := subscriptionRouter(svc, auth.RoleSuperadmin, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/clients", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Token without facility scope blocked", func(t *testing.T) {
		svc := newTestService(new(MockRepository), new(MockPlanRepo), now)

		router := subscriptionRouter(svc, auth.RoleAdmin, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/clients", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
