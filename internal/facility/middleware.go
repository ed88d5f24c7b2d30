package facility

import (
	"net/http"

	"fitadmin/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription blocks facility-scoped routes unless the caller's
// facility subscription is active. The check itself runs the lazy expiry
// evaluation, so an overdue facility is flipped to expired the moment anyone
// from it touches the API. Superadmins are not facility-scoped and pass through.
func RequireActiveSubscription(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, ok := auth.GetRole(c); ok && role == auth.RoleSuperadmin {
			c.Next()
			return
		}

		facilityID, ok := auth.GetFacilityID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not attached to a facility"})
			c.Abort()
			return
		}

		f, err := service.GetFacility(c.Request.Context(), facilityID)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Facility not found"})
			c.Abort()
			return
		}

		if f.SubscriptionStatus != StatusActive {
			c.JSON(http.StatusForbidden, gin.H{
				"error":  "Facility subscription is not active",
				"status": f.SubscriptionStatus,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
