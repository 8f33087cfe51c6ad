package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerretW/BatteryGuard-sub000/internal/dates"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
	"github.com/BerretW/BatteryGuard-sub000/internal/mw"
	"github.com/BerretW/BatteryGuard-sub000/internal/store"
)

func (h *Handler) respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrGroupInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "group is still assigned to sites"})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
	}
}

// ListSites returns all sites with their nested records.
func (h *Handler) ListSites(c *gin.Context) {
	sites, err := h.store.ListSites(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, sites)
}

// GetSite returns one site with its nested records.
func (h *Handler) GetSite(c *gin.Context) {
	site, err := h.store.GetSite(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

type sitePayload struct {
	Name          string   `json:"name" binding:"required"`
	Address       string   `json:"address"`
	Description   string   `json:"description"`
	InternalNotes string   `json:"internalNotes"`
	GroupID       *string  `json:"groupId"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
}

// CreateSite creates a new empty site.
func (h *Handler) CreateSite(c *gin.Context) {
	var req sitePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site := model.Site{
		Name:          req.Name,
		Address:       req.Address,
		Description:   req.Description,
		InternalNotes: req.InternalNotes,
		GroupID:       req.GroupID,
		Lat:           req.Lat,
		Lng:           req.Lng,
	}
	if err := h.store.CreateSite(c.Request.Context(), &site); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, site)
}

// UpdateSite updates a site's own fields; nested records have their own
// endpoints.
func (h *Handler) UpdateSite(c *gin.Context) {
	var req sitePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site := model.Site{
		ID:            c.Param("id"),
		Name:          req.Name,
		Address:       req.Address,
		Description:   req.Description,
		InternalNotes: req.InternalNotes,
		GroupID:       req.GroupID,
		Lat:           req.Lat,
		Lng:           req.Lng,
	}
	if err := h.store.UpdateSite(c.Request.Context(), &site); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

// DeleteSite removes a site and all of its nested records.
func (h *Handler) DeleteSite(c *gin.Context) {
	if err := h.store.DeleteSite(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type contactPayload struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// CreateContact adds a contact person to a site.
func (h *Handler) CreateContact(c *gin.Context) {
	var req contactPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := model.Contact{
		SiteID: c.Param("id"),
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
		Email:  req.Email,
	}
	if err := h.store.CreateContact(c.Request.Context(), &contact); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// DeleteContact removes a contact.
func (h *Handler) DeleteContact(c *gin.Context) {
	if err := h.store.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type logEntryPayload struct {
	TemplateName string `json:"templateName"`
	Date         string `json:"date"`
	Data         string `json:"data"`
}

// CreateLogEntry records a filled-in service protocol for a site. The
// author is taken from the authenticated user.
func (h *Handler) CreateLogEntry(c *gin.Context) {
	var req logEntryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := req.Date
	if date == "" {
		date = dates.Format(h.now())
	} else if _, err := dates.Parse(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := mw.ClaimsFrom(c)
	entry := model.LogEntry{
		SiteID:       c.Param("id"),
		TemplateName: req.TemplateName,
		Date:         date,
		Author:       h.authorName(claims),
		Data:         req.Data,
	}
	if err := h.store.CreateLogEntry(c.Request.Context(), &entry); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
