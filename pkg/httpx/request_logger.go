package httpx

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/gin-gonic/gin"
)

// RequestLogger — строка лога на запрос. request_id/trace_id/span_id добавляет логгер из контекста.
// Для маршрутов с :id пишется user_id; 5xx — Errorf, 4xx — Warnf. /metrics и /ping не логируются.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		switch route {
		case "/metrics", "/ping":
			return
		case "":
			route = c.Request.URL.Path
		}

		format := "http method=%s route=%s status=%d ip=%s duration=%s size=%d"
		args := []any{c.Request.Method, route, c.Writer.Status(), c.ClientIP(), time.Since(start), c.Writer.Size()}
		if id := c.Param("id"); id != "" {
			format += " user_id=%s"
			args = append(args, id)
		}

		ctx := c.Request.Context()
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Errorf(ctx, format, args...)
		case status >= http.StatusBadRequest:
			log.Warnf(ctx, format, args...)
		default:
			log.Infof(ctx, format, args...)
		}
	}
}
