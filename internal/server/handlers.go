package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rigmonitor/internal/catalog"
	"rigmonitor/internal/simulation"
)

// handleCatalog lists the registered categories with their display metadata.
func handleCatalog(c *gin.Context, deps Dependencies) {
	c.JSON(http.StatusOK, gin.H{"categories": deps.Catalog.Specs()})
}

// handleCurrentReadings returns one fresh classified reading per category.
func handleCurrentReadings(c *gin.Context, deps Dependencies) {
	c.JSON(http.StatusOK, gin.H{
		"generatedAt": time.Now().UTC(),
		"readings":    deps.Generator.Snapshot(),
	})
}

// handleCategorySeries returns the detail series for one category, 24 hourly
// points unless span/step query parameters say otherwise.
func handleCategorySeries(c *gin.Context, deps Dependencies) {
	spec, err := deps.Catalog.Lookup(catalog.Category(c.Param("category")))
	if err != nil {
		respondError(c, err)
		return
	}
	span, step, err := windowParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	points, err := deps.Generator.Window(spec.Category, span, step)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": spec.Category,
		"label":    spec.Label,
		"unit":     spec.Unit,
		"span":     span.String(),
		"step":     step.String(),
		"points":   points,
	})
}

// handleCategoryFleet returns the current value of every sensor unit in a category.
func handleCategoryFleet(c *gin.Context, deps Dependencies) {
	spec, err := deps.Catalog.Lookup(catalog.Category(c.Param("category")))
	if err != nil {
		respondError(c, err)
		return
	}
	sensors, err := deps.Generator.Fleet(spec.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category":    spec.Category,
		"label":       spec.Label,
		"unit":        spec.Unit,
		"generatedAt": time.Now().UTC(),
		"sensors":     sensors,
	})
}

// handleSensorSeries returns the detail series attributed to one sensor unit.
func handleSensorSeries(c *gin.Context, deps Dependencies) {
	spec, err := deps.Catalog.Lookup(catalog.Category(c.Param("category")))
	if err != nil {
		respondError(c, err)
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid sensor id %q", c.Param("id"))})
		return
	}
	span, step, err := windowParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	points, err := deps.Generator.SensorWindow(spec.Category, id, span, step)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": spec.Category,
		"label":    spec.Label,
		"unit":     spec.Unit,
		"sensorId": id,
		"span":     span.String(),
		"step":     step.String(),
		"points":   points,
	})
}

// windowParams parses the optional span and step query parameters, falling
// back to the default 24h/1h series shape.
func windowParams(c *gin.Context) (time.Duration, time.Duration, error) {
	span, step := simulation.SeriesSpan, simulation.SeriesStep
	if raw := c.Query("span"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid span %q", raw)
		}
		span = parsed
	}
	if raw := c.Query("step"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid step %q", raw)
		}
		step = parsed
	}
	return span, step, nil
}

// respondError maps domain failures onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownCategory),
		errors.Is(err, simulation.ErrUnknownSensor),
		errors.Is(err, simulation.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
