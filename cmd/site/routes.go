package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/thunder-org/thunder-site/internal/handler"
	internalmiddleware "github.com/thunder-org/thunder-site/internal/middleware"
	"github.com/thunder-org/thunder-site/internal/service"
	"github.com/thunder-org/thunder-site/internal/web"
	"github.com/thunder-org/thunder-site/pkg/config"
	"github.com/thunder-org/thunder-site/pkg/logger"
	corsmiddleware "github.com/thunder-org/thunder-site/pkg/middleware/cors"
	reqidmiddleware "github.com/thunder-org/thunder-site/pkg/middleware/requestid"
)

type routeDeps struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *service.MetricsService
	events  *service.EventFeed
	forms   *service.FormStore
	ready   func() bool
}

// newRouter builds the engine with every site, API and ops route.
func newRouter(deps routeDeps) *gin.Engine {
	cfg := deps.cfg

	landingHandler := handler.NewLandingHandler(deps.events, deps.forms)
	eventHandler := handler.NewEventHandler(deps.events)
	formHandler := handler.NewFormHandler(deps.forms)
	metricsHandler := handler.NewMetricsHandler(deps.metrics, deps.ready)

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.logger, "/health", "/ready", "/metrics", "/static/"))
	// Global so preflights reach it before route matching.
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(deps.metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	r.StaticFS("/static", http.FS(web.Static()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	session := internalmiddleware.FormSession(internalmiddleware.FormSessionConfig{
		CookieName: cfg.Forms.CookieName,
		TTL:        cfg.Forms.SessionTTL,
		Secure:     cfg.Forms.CookieSecure,
	})

	site := r.Group("/", session)
	site.GET("", landingHandler.Landing)
	site.POST("/leads", landingHandler.SubmitLead)

	api := r.Group("/api")
	api.Use(internalmiddleware.WithResponseMeta())
	api.GET("/events", eventHandler.List)
	if token := cfg.Events.RevalidateToken; token != "" {
		api.POST("/events/revalidate", internalmiddleware.BearerToken(token), eventHandler.Revalidate)
	}

	formAPI := api.Group("/form", session)
	formAPI.GET("", formHandler.Get)
	formAPI.PATCH("/fields", formHandler.UpdateField)
	formAPI.POST("/submit", formHandler.Submit)

	return r
}
