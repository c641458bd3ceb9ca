// Package routers assembles the gin engines for the public API and the
// private debug surface.
package routers

import (
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/internal/app"
	"github.com/tams-cso/tams-club-cal-sub000/internal/middleware"
	"github.com/tams-cso/tams-club-cal-sub000/internal/routers/api_router"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/auth",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter builds the public API engine.
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {
	cfg := appContainer.Config()

	r := gin.New()
	r.Use(middleware.Cors())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/debug/vars", api_router.Expvar)

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, app.Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))
		api.Use(api_router.MetricsMiddleware())

		eventHandler := api_router.NewEventHandler(appContainer)
		clubHandler := api_router.NewClubHandler(appContainer)
		volunteeringHandler := api_router.NewVolunteeringHandler(appContainer)
		reservationHandler := api_router.NewReservationHandler(appContainer)
		historyHandler := api_router.NewHistoryHandler(appContainer)
		userHandler := api_router.NewUserHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.GET("/health", healthHandler.Check)
		api.POST("/auth/login", userHandler.Login)
		api.GET("/auth/user", middleware.UserAuthToken(appContainer.TokenManager), userHandler.Info)

		// Reads are public; edits attribute to the user when a token is
		// present and to the client address otherwise.
		optional := middleware.OptionalAuthToken(appContainer.TokenManager)

		api.GET("/events", eventHandler.List)
		api.GET("/events/ics", eventHandler.ExportICS)
		api.GET("/events/:id", eventHandler.Get)
		api.POST("/events", optional, eventHandler.Create)
		api.PUT("/events/:id", optional, eventHandler.Update)
		api.DELETE("/events/:id", optional, eventHandler.Delete)
		api.PUT("/events/repeating/:id", optional, eventHandler.UpdateSeries)
		api.DELETE("/events/repeating/:id", optional, eventHandler.DeleteSeries)

		api.GET("/clubs", clubHandler.List)
		api.GET("/clubs/:id", clubHandler.Get)
		api.POST("/clubs", optional, clubHandler.Create)
		api.PUT("/clubs/:id", optional, clubHandler.Update)
		api.DELETE("/clubs/:id", optional, clubHandler.Delete)

		api.GET("/volunteering", volunteeringHandler.List)
		api.GET("/volunteering/:id", volunteeringHandler.Get)
		api.POST("/volunteering", optional, volunteeringHandler.Create)
		api.PUT("/volunteering/:id", optional, volunteeringHandler.Update)
		api.DELETE("/volunteering/:id", optional, volunteeringHandler.Delete)

		api.GET("/reservations", reservationHandler.List)
		api.GET("/reservations/:id", reservationHandler.Get)
		api.POST("/reservations", optional, reservationHandler.Create)
		api.PUT("/reservations/:id", optional, reservationHandler.Update)
		api.DELETE("/reservations/:id", optional, reservationHandler.Delete)
		api.DELETE("/reservations/repeating/:id", optional, reservationHandler.DeleteSeries)

		api.GET("/history", historyHandler.Feed)
		api.GET("/history/entry/:id", historyHandler.Get)
		api.POST("/history/entry/:id/restore", optional, historyHandler.Restore)
		api.GET("/history/:resource/:id", historyHandler.ListByEdit)
	}

	return r
}
