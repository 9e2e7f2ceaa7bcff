package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-yourtask/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InFlightLock menolak request ganda dari session yang sama selama request pertama
// masih berjalan. Lock punya ttl agar hilang sendiri bila server crash.
func InFlightLock(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")
		if sid == "" {
			c.Next()
			return
		}

		lockKey := fmt.Sprintf("yt_lock:%s:%s", c.FullPath(), sid)
		ctx := c.Request.Context()

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", ttl).Result()
		if err != nil {
			// redis bermasalah: request tetap dilayani tanpa lock
			zap.L().Warn("in-flight lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "Permintaan Anda sedang diproses, mohon tunggu sebentar.", nil)
			c.Abort()
			return
		}

		defer rdb.Del(context.WithoutCancel(ctx), lockKey)
		c.Next()
	}
}
