package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rigmonitor/internal/catalog"
	"rigmonitor/internal/simulation"
)

// Dependencies groups objects the HTTP layer needs.
type Dependencies struct {
	Catalog   *catalog.Catalog
	Generator *simulation.Generator

	// RefreshInterval paces the live feed. Zero means the default.
	RefreshInterval time.Duration
}

// NewRouter configures all HTTP routes.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())
	r.Use(RequestID())

	live := newLiveFeed(deps.Generator, deps.RefreshInterval)

	r.GET("/", serveDashboard)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/catalog", func(c *gin.Context) { handleCatalog(c, deps) })
	r.GET("/api/readings/current", func(c *gin.Context) { handleCurrentReadings(c, deps) })
	r.GET("/api/categories/:category/series", func(c *gin.Context) { handleCategorySeries(c, deps) })
	r.GET("/api/categories/:category/fleet", func(c *gin.Context) { handleCategoryFleet(c, deps) })
	r.GET("/api/categories/:category/sensors/:id/series", func(c *gin.Context) { handleSensorSeries(c, deps) })
	r.GET("/api/live", live.Serve)

	return r
}

func corsMiddleware() gin.HandlerFunc {
	origins := AllowedOriginsFromEnv()
	if len(origins) == 0 {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	return cors.New(cfg)
}
