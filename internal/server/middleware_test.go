package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLoggingMiddleware())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest("GET", "/test?debug=1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(corsMiddleware())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Headers set on normal request", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Preflight short-circuits with 204", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/test", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Requests under burst pass", func(t *testing.T) {
		rl := NewRateLimiter(1, 3, time.Minute)

		for i := 0; i < 3; i++ {
			assert.True(t, rl.Allow("10.0.0.1"))
		}
	})

	t.Run("Burst exhaustion rejects", func(t *testing.T) {
		rl := NewRateLimiter(0.001, 2, time.Minute)

		assert.True(t, rl.Allow("10.0.0.2"))
		assert.True(t, rl.Allow("10.0.0.2"))
		assert.False(t, rl.Allow("10.0.0.2"))
	})

	t.Run("Limits are per IP", func(t *testing.T) {
		rl := NewRateLimiter(0.001, 1, time.Minute)

		assert.True(t, rl.Allow("10.0.0.3"))
		assert.False(t, rl.Allow("10.0.0.3"))
		assert.True(t, rl.Allow("10.0.0.4"))
	})

	t.Run("Middleware returns 429 when exhausted", func(t *testing.T) {
		rl := NewRateLimiter(0.001, 1, time.Minute)

		router := gin.New()
		router.Use(rl.Middleware())
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		first := httptest.NewRecorder()
		router.ServeHTTP(first, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		router.ServeHTTP(second, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}

	t.Run("Valid struct", func(t *testing.T) {
		errs := ValidateStruct(payload{Email: "admin@test.com", Name: "Asha"})
		assert.Empty(t, errs)
	})

	t.Run("Missing and malformed fields reported", func(t *testing.T) {
		errs := ValidateStruct(payload{Email: "not-an-email"})

		assert.Len(t, errs, 2)

		fieldsSeen := map[string]string{}
		for _, e := range errs {
			fieldsSeen[e.Field] = e.Tag
		}
		assert.Equal(t, "email", fieldsSeen["Email"])
		assert.Equal(t, "required", fieldsSeen["Name"])
	})
}
