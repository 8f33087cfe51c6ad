package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerretW/BatteryGuard-sub000/internal/dates"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
	"github.com/BerretW/BatteryGuard-sub000/internal/mw"
	"github.com/BerretW/BatteryGuard-sub000/internal/plan"
)

// respondEventError maps interval validation failures to 400 before
// falling back to the generic store error mapping.
func (h *Handler) respondEventError(c *gin.Context, err error) {
	var unknown plan.UnknownIntervalError
	if errors.As(err, &unknown) {
		c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
		return
	}
	h.respondStoreError(c, err)
}

type technologyPayload struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Location string `json:"location"`
}

// CreateTechnology adds a sub-system to a site.
func (h *Handler) CreateTechnology(c *gin.Context) {
	var req technologyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tech := model.Technology{
		SiteID:   c.Param("id"),
		Name:     req.Name,
		Category: req.Category,
		Location: req.Location,
	}
	if err := h.store.CreateTechnology(c.Request.Context(), &tech); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tech)
}

// DeleteTechnology removes a sub-system and its batteries.
func (h *Handler) DeleteTechnology(c *gin.Context) {
	if err := h.store.DeleteTechnology(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type batteryPayload struct {
	CapacityAh          float64             `json:"capacityAh"`
	VoltageV            float64             `json:"voltageV"`
	InstallDate         string              `json:"installDate"`
	LastCheckDate       string              `json:"lastCheckDate"`
	NextReplacementDate string              `json:"nextReplacementDate" binding:"required"`
	Status              model.BatteryStatus `json:"status"`
	SerialNumber        string              `json:"serialNumber"`
	Notes               string              `json:"notes"`
}

func (p *batteryPayload) validateDates() error {
	if _, err := dates.Parse(p.NextReplacementDate); err != nil {
		return err
	}
	return nil
}

// CreateBattery adds a battery to a technology.
func (h *Handler) CreateBattery(c *gin.Context) {
	var req batteryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validateDates(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	battery := model.Battery{
		TechnologyID:        c.Param("id"),
		CapacityAh:          req.CapacityAh,
		VoltageV:            req.VoltageV,
		InstallDate:         req.InstallDate,
		LastCheckDate:       req.LastCheckDate,
		NextReplacementDate: req.NextReplacementDate,
		Status:              req.Status,
		SerialNumber:        req.SerialNumber,
		Notes:               req.Notes,
	}
	if err := h.store.CreateBattery(c.Request.Context(), &battery); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, battery)
}

// UpdateBattery updates a battery's fields.
func (h *Handler) UpdateBattery(c *gin.Context) {
	var req batteryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validateDates(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	battery := model.Battery{
		ID:                  c.Param("id"),
		CapacityAh:          req.CapacityAh,
		VoltageV:            req.VoltageV,
		InstallDate:         req.InstallDate,
		LastCheckDate:       req.LastCheckDate,
		NextReplacementDate: req.NextReplacementDate,
		Status:              req.Status,
		SerialNumber:        req.SerialNumber,
		Notes:               req.Notes,
	}
	if err := h.store.UpdateBattery(c.Request.Context(), &battery); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, battery)
}

// DeleteBattery removes a battery.
func (h *Handler) DeleteBattery(c *gin.Context) {
	if err := h.store.DeleteBattery(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceBattery marks a battery replaced; the store resets its dates
// from the group policy.
func (h *Handler) ReplaceBattery(c *gin.Context) {
	battery, err := h.store.ReplaceBattery(c.Request.Context(), c.Param("id"), h.now())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, battery)
}

type eventPayload struct {
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	FutureNotes string                   `json:"futureNotes"`
	StartDate   string                   `json:"startDate"`
	NextDate    string                   `json:"nextDate" binding:"required"`
	Interval    model.RecurrenceInterval `json:"interval" binding:"required"`
	IsActive    *bool                    `json:"isActive"`
}

func (p *eventPayload) active() bool {
	return p.IsActive == nil || *p.IsActive
}

// CreateEvent adds a recurring compliance event to a site.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req eventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.Parse(req.NextDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := model.ScheduledEvent{
		SiteID:      c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		FutureNotes: req.FutureNotes,
		StartDate:   req.StartDate,
		NextDate:    req.NextDate,
		Interval:    req.Interval,
		IsActive:    req.active(),
	}
	if err := h.store.CreateEvent(c.Request.Context(), &event); err != nil {
		h.respondEventError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent updates a compliance event.
func (h *Handler) UpdateEvent(c *gin.Context) {
	var req eventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.Parse(req.NextDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := model.ScheduledEvent{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		FutureNotes: req.FutureNotes,
		StartDate:   req.StartDate,
		NextDate:    req.NextDate,
		Interval:    req.Interval,
		IsActive:    req.active(),
	}
	if err := h.store.UpdateEvent(c.Request.Context(), &event); err != nil {
		h.respondEventError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes a compliance event.
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.store.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AcknowledgeEvent records a handled occurrence, advancing the event to
// its next date (or deactivating a one-off).
func (h *Handler) AcknowledgeEvent(c *gin.Context) {
	event, err := h.store.AcknowledgeEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

type issuePayload struct {
	Text string `json:"text" binding:"required"`
}

// CreateIssue logs a deferred issue on a site, stamped with the current
// user and day.
func (h *Handler) CreateIssue(c *gin.Context) {
	var req issuePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := mw.ClaimsFrom(c)
	issue := model.PendingIssue{
		SiteID:    c.Param("id"),
		Text:      req.Text,
		CreatedOn: dates.Format(h.now()),
		CreatedBy: h.authorName(claims),
		Status:    model.IssueOpen,
	}
	if err := h.store.CreateIssue(c.Request.Context(), &issue); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, issue)
}

// ResolveIssue marks a deferred issue resolved, dropping it from all views.
func (h *Handler) ResolveIssue(c *gin.Context) {
	if err := h.store.ResolveIssue(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type taskPayload struct {
	Description string             `json:"description" binding:"required"`
	Deadline    string             `json:"deadline" binding:"required"`
	Priority    model.TaskPriority `json:"priority"`
	Status      model.TaskStatus   `json:"status"`
	Note        string             `json:"note"`
}

// CreateTask adds a manual task to a site.
func (h *Handler) CreateTask(c *gin.Context) {
	var req taskPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.Parse(req.Deadline); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := mw.ClaimsFrom(c)
	task := model.ManualTask{
		SiteID:      c.Param("id"),
		Description: req.Description,
		Deadline:    req.Deadline,
		Priority:    req.Priority,
		Status:      req.Status,
		Note:        req.Note,
		CreatedBy:   h.authorName(claims),
	}
	if err := h.store.CreateTask(c.Request.Context(), &task); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates a manual task.
func (h *Handler) UpdateTask(c *gin.Context) {
	var req taskPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.Parse(req.Deadline); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := model.ManualTask{
		ID:          c.Param("id"),
		Description: req.Description,
		Deadline:    req.Deadline,
		Priority:    req.Priority,
		Status:      req.Status,
		Note:        req.Note,
	}
	if err := h.store.UpdateTask(c.Request.Context(), &task); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a manual task.
func (h *Handler) DeleteTask(c *gin.Context) {
	if err := h.store.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
