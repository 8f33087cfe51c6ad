package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/BerretW/BatteryGuard-sub000/internal/auth"
	"github.com/BerretW/BatteryGuard-sub000/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
	auth  *auth.Service
	log   zerolog.Logger

	// now is the clock handed to the scheduling engine; swapped out in tests.
	now func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, authSvc *auth.Service, log zerolog.Logger) *Handler {
	return &Handler{
		store: s,
		auth:  authSvc,
		log:   log,
		now:   time.Now,
	}
}

// authorName returns the display name from the request's verified claims,
// used to stamp created records.
func (h *Handler) authorName(claims *auth.Claims) string {
	if claims == nil || claims.Name == "" {
		return "system"
	}
	return claims.Name
}
