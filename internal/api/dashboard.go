package api

import (
	"net/http" // HTTP status codes
	"time"     // Evaluation instant

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"debt_tracker/internal/dashboard"
	"debt_tracker/internal/ledger"
)

// DashboardStatsHandler computes summary statistics over the user's current
// debt set. The snapshot is recomputed on every request and never cached.
func DashboardStatsHandler(led *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		debts, err := led.List(c.Request.Context(), user.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Failed to load debts for dashboard")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		stats := dashboard.Compute(debts, time.Now().UTC())
		c.JSON(http.StatusOK, stats)
	}
}
