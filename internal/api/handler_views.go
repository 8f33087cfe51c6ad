package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BerretW/BatteryGuard-sub000/internal/plan"
)

// visibleMonth reads optional year/month query parameters, defaulting to
// the current calendar month.
func (h *Handler) visibleMonth(c *gin.Context) (plan.YearMonth, bool) {
	now := h.now()
	ym := plan.YearMonth{Year: now.Year(), Month: now.Month()}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return ym, false
		}
		ym.Year = year
	}
	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return ym, false
		}
		ym.Month = time.Month(month)
	}
	return ym, true
}

func (h *Handler) warnMalformed(c *gin.Context, errs []plan.MalformedRecordError) []string {
	warnings := make([]string, 0, len(errs))
	for _, e := range errs {
		h.log.Warn().
			Str("record", e.Record).
			Str("id", e.ID).
			Str("site_id", e.SiteID).
			Str("path", c.FullPath()).
			Err(e.Err).
			Msg("skipped malformed record")
		warnings = append(warnings, e.Error())
	}
	return warnings
}

// GetPlanner returns the priority and month feeds for the visible month.
func (h *Handler) GetPlanner(c *gin.Context) {
	ym, ok := h.visibleMonth(c)
	if !ok {
		return
	}

	sites, groups, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	views, errs := plan.BuildViews(sites, groups, h.now(), ym)
	c.JSON(http.StatusOK, gin.H{
		"priority": views.Priority,
		"month":    views.Month,
		"warnings": h.warnMalformed(c, errs),
	})
}

// GetCalendar returns per-day item buckets for the visible month.
func (h *Handler) GetCalendar(c *gin.Context) {
	ym, ok := h.visibleMonth(c)
	if !ok {
		return
	}

	sites, groups, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	views, errs := plan.BuildViews(sites, groups, h.now(), ym)
	c.JSON(http.StatusOK, gin.H{
		"days":     views.Calendar,
		"warnings": h.warnMalformed(c, errs),
	})
}

// GetGlobalTasks returns one bucket of manual tasks across all sites.
func (h *Handler) GetGlobalTasks(c *gin.Context) {
	filter := plan.TaskFilter(c.DefaultQuery("filter", string(plan.TaskFilterOverdue)))
	if !plan.ValidTaskFilter(filter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter"})
		return
	}

	sites, _, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	tasks, errs := plan.FilterTasks(sites, h.now(), filter)
	c.JSON(http.StatusOK, gin.H{
		"tasks":    tasks,
		"warnings": h.warnMalformed(c, errs),
	})
}

// GetDashboard returns fleet-wide aggregate counts.
func (h *Handler) GetDashboard(c *gin.Context) {
	sites, _, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan.Summarize(sites, h.now()))
}
