package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DBPinger is the slice of the connection pool the health check needs.
type DBPinger interface {
	Ping(ctx context.Context) error
}

func healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// apiHealth reports process uptime and database reachability.
func apiHealth(db DBPinger, startedAt time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		if db == nil {
			dbStatus = "not configured"
		} else if err := db.Ping(c.Request.Context()); err != nil {
			dbStatus = "unreachable"
		}

		status := http.StatusOK
		if dbStatus == "unreachable" {
			status = http.StatusServiceUnavailable
		}

		respondData(c, status, gin.H{
			"status":   "up",
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
			"database": dbStatus,
		})
	}
}
