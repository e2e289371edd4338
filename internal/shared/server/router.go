package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"logo-backend/internal/logos"
	"logo-backend/internal/services/health"
	"logo-backend/internal/shared/config"
	"logo-backend/internal/shared/metrics"
	"logo-backend/internal/shared/server/middleware"
	"logo-backend/internal/shared/server/respond"
)

const (
	rateGroupRender  = "RENDER"
	rateGroupDefault = "DEFAULT"
	readRateFactor   = 4
)

// RouterDeps carries the handlers and services the router mounts.
type RouterDeps struct {
	Config      config.Config
	LogoHandler *logos.Handler
	Health      *health.Service
	Limiter     *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env, "/api/v1/health", "/api/v1/industries", "/metrics"),
	)
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
		r.Use(middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateLimitGroup,
			Limiter:      deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				rateGroupRender:  {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
				rateGroupDefault: {Rate: cfg.RateLimitRPS * readRateFactor, Burst: cfg.RateLimitBurst * readRateFactor},
			},
		}))
	}

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler(deps.Health))
	registerMeRoutes(api)
	if deps.LogoHandler != nil {
		deps.LogoHandler.RegisterRoutes(api)
	}

	return r
}

func healthHandler(svc *health.Service) gin.HandlerFunc {
	if svc == nil {
		svc = health.NewService(nil)
	}
	return func(c *gin.Context) {
		ok, checks := svc.Status(c.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, gin.H{"ok": ok, "checks": checks})
	}
}

// rateLimitGroup puts the routes that compose or rasterize documents in
// their own bucket.
func rateLimitGroup(c *gin.Context) string {
	path := c.FullPath()
	switch {
	case c.Request.Method == http.MethodPost && (path == "/api/v1/logos" || path == "/api/v1/logos/preview"):
		return rateGroupRender
	case strings.HasSuffix(path, "/png"):
		return rateGroupRender
	default:
		return rateGroupDefault
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
