package httpx

import (
	"github.com/Gunvolt24/warpy_users/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// RequestIDMiddleware — request_id запроса в том же порядке, что и у AMQP-доставки:
// X-Request-ID (аналог MessageId), затем X-Correlation-ID (аналог CorrelationId), иначе новый UUID.
// Значение кладётся в контекст и возвращается в X-Request-ID; X-Correlation-ID эхом, если был передан.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(HeaderCorrelationID)
		requestID := c.GetHeader(HeaderRequestID)
		switch {
		case requestID != "":
		case correlationID != "":
			requestID = correlationID
		default:
			requestID = uuid.NewString()
		}

		c.Header(HeaderRequestID, requestID)
		if correlationID != "" {
			c.Header(HeaderCorrelationID, correlationID)
		}
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}
