package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

// ListGroups returns all customer groups.
func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.store.ListGroups(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

type groupPayload struct {
	Name                      string `json:"name" binding:"required"`
	Color                     string `json:"color"`
	DefaultBatteryLifeMonths  int    `json:"defaultBatteryLifeMonths"`
	NotificationLeadTimeWeeks int    `json:"notificationLeadTimeWeeks"`
}

// CreateGroup creates a group; unset policy fields fall back to system
// defaults.
func (h *Handler) CreateGroup(c *gin.Context) {
	var req groupPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := model.Group{
		Name:                      req.Name,
		Color:                     req.Color,
		DefaultBatteryLifeMonths:  req.DefaultBatteryLifeMonths,
		NotificationLeadTimeWeeks: req.NotificationLeadTimeWeeks,
	}
	if err := h.store.CreateGroup(c.Request.Context(), &group); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// UpdateGroup updates a group's name, color and policy values.
func (h *Handler) UpdateGroup(c *gin.Context) {
	var req groupPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := model.Group{
		ID:                        c.Param("id"),
		Name:                      req.Name,
		Color:                     req.Color,
		DefaultBatteryLifeMonths:  req.DefaultBatteryLifeMonths,
		NotificationLeadTimeWeeks: req.NotificationLeadTimeWeeks,
	}
	if err := h.store.UpdateGroup(c.Request.Context(), &group); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup removes a group; refused while any site references it.
func (h *Handler) DeleteGroup(c *gin.Context) {
	if err := h.store.DeleteGroup(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
