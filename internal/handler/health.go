package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports API liveness plus connectivity of the two backing stores:
// Postgres (catalog and sale ledger) and Redis (job queue, token blacklist).
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "up"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "down"
		}

		redisStatus := "up"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "down"
		}

		status := http.StatusOK
		if dbStatus != "up" || redisStatus != "up" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"service": "fadj-ma",
			"ok":      status == http.StatusOK,
			"db":      dbStatus,
			"redis":   redisStatus,
		})
	}
}
