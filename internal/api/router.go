package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/BerretW/BatteryGuard-sub000/config"
	"github.com/BerretW/BatteryGuard-sub000/internal/auth"
	"github.com/BerretW/BatteryGuard-sub000/internal/mw"
	"github.com/BerretW/BatteryGuard-sub000/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, authSvc *auth.Service, cfg *config.ServerConfig, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	handler := NewHandler(s, authSvc, log)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/auth/login", handler.Login)
		api.POST("/auth/register", handler.Register)

		authed := api.Group("")
		authed.Use(mw.RequireAuth(authSvc))
		{
			// Computed views. Cached briefly; every request otherwise
			// recomputes the full projection from a fresh snapshot.
			authed.GET("/planner", caching, handler.GetPlanner)
			authed.GET("/calendar", caching, handler.GetCalendar)
			authed.GET("/tasks", handler.GetGlobalTasks)
			authed.GET("/dashboard", caching, handler.GetDashboard)

			authed.GET("/sites", handler.ListSites)
			authed.POST("/sites", handler.CreateSite)
			authed.GET("/sites/:id", handler.GetSite)
			authed.PUT("/sites/:id", handler.UpdateSite)
			authed.DELETE("/sites/:id", handler.DeleteSite)

			authed.POST("/sites/:id/technologies", handler.CreateTechnology)
			authed.POST("/sites/:id/events", handler.CreateEvent)
			authed.POST("/sites/:id/issues", handler.CreateIssue)
			authed.POST("/sites/:id/tasks", handler.CreateTask)
			authed.POST("/sites/:id/contacts", handler.CreateContact)
			authed.POST("/sites/:id/logs", handler.CreateLogEntry)

			authed.DELETE("/technologies/:id", handler.DeleteTechnology)
			authed.POST("/technologies/:id/batteries", handler.CreateBattery)

			authed.PUT("/batteries/:id", handler.UpdateBattery)
			authed.DELETE("/batteries/:id", handler.DeleteBattery)
			authed.POST("/batteries/:id/replace", handler.ReplaceBattery)

			authed.PUT("/events/:id", handler.UpdateEvent)
			authed.DELETE("/events/:id", handler.DeleteEvent)
			authed.POST("/events/:id/acknowledge", handler.AcknowledgeEvent)

			authed.POST("/issues/:id/resolve", handler.ResolveIssue)

			authed.PUT("/tasks/:id", handler.UpdateTask)
			authed.DELETE("/tasks/:id", handler.DeleteTask)

			authed.DELETE("/contacts/:id", handler.DeleteContact)

			authed.GET("/groups", handler.ListGroups)
			authed.POST("/groups", handler.CreateGroup)
			authed.PUT("/groups/:id", handler.UpdateGroup)
			authed.DELETE("/groups/:id", handler.DeleteGroup)
		}
	}

	return r
}
