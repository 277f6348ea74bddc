package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/Gunvolt24/warpy_users/pkg/httpx"
)

// Handler — HTTP-чтение пользователей, созданных из очереди.
type Handler struct {
	service ports.UserReadService
	log     ports.Logger
	timeout time.Duration
}

// NewHandler — timeout ограничивает обращение к сервису (0 — без ограничения).
func NewHandler(service ports.UserReadService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — маршруты и middleware. serviceName включает otelgin; пустое значение — без трейсинга.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/users", h.listRecentUsers)
	r.GET("/users/:id", h.getUserByID)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// getUserByID — пароль (хеш) в ответ не попадает: поле исключено из JSON-представления.
func (h *Handler) getUserByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	user, err := h.service.GetUser(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "GetUser failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) listRecentUsers(c *gin.Context) {
	page := parseUsersPage(c)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	users, err := h.service.ListRecent(ctx, page.Limit, page.Offset)
	if err != nil {
		h.log.Errorf(ctx, "ListRecent failed limit=%d offset=%d err=%v", page.Limit, page.Offset, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}
