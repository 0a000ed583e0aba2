package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/person_sync/internal/ports"
	"github.com/Gunvolt24/person_sync/pkg/httpx"
)

type Handler struct {
	service        ports.PersonReadService
	log            ports.Logger
	handlerTimeout time.Duration // 0 — без ограничения на хендлер
}

func NewHandler(service ports.PersonReadService, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, handlerTimeout: handlerTimeout}
}

// NewRouter — сборка роутера: recovery, request-id, трейсинг (если включён),
// логирование запросов и маршруты чтения.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		// все маршруты — GET
		c.Header("Allow", http.MethodGet)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/person/:id", h.getPersonByID)
	r.GET("/persons", h.listPersons)

	return r
}

// handlerCtx — контекст запроса с опциональным таймаутом на обработку.
func (h *Handler) handlerCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if h.handlerTimeout > 0 {
		return context.WithTimeout(ctx, h.handlerTimeout)
	}
	return ctx, func() {}
}

func (h *Handler) getPersonByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.handlerCtx(c)
	defer cancel()

	person, err := h.service.GetPerson(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "GetPerson failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if person == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *Handler) listPersons(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.handlerCtx(c)
	defer cancel()

	persons, err := h.service.ListPersons(ctx, limit, offset)
	if err != nil {
		h.log.Errorf(ctx, "ListPersons failed limit=%d offset=%d err=%v", limit, offset, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, persons)
}
