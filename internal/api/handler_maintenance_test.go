package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

func setupMaintenanceRouter(s *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := newTestHandler(s)
	authed := r.Group("/api", asTechnician())
	authed.POST("/sites/:id/issues", handler.CreateIssue)
	authed.POST("/sites/:id/tasks", handler.CreateTask)
	authed.POST("/sites/:id/events", handler.CreateEvent)
	authed.POST("/batteries/:id/replace", handler.ReplaceBattery)
	return r
}

func TestCreateIssue_StampsAuthorAndDay(t *testing.T) {
	s := &stubStore{}
	router := setupMaintenanceRouter(s)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/sites/s1/issues",
		strings.NewReader(`{"text":"Corroded terminal on UPS"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, s.createdIssue)
	assert.Equal(t, "s1", s.createdIssue.SiteID)
	assert.Equal(t, "2024-06-15", s.createdIssue.CreatedOn)
	assert.Equal(t, "Jana Novak", s.createdIssue.CreatedBy)
	assert.Equal(t, model.IssueOpen, s.createdIssue.Status)
}

func TestCreateTask_RejectsBadDeadline(t *testing.T) {
	s := &stubStore{}
	router := setupMaintenanceRouter(s)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/sites/s1/tasks",
		strings.NewReader(`{"description":"Swap fuse","deadline":"soon"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, s.createdTask)
}

func TestCreateEvent(t *testing.T) {
	s := &stubStore{}
	router := setupMaintenanceRouter(s)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/sites/s1/events",
		strings.NewReader(`{"title":"Annual revision","nextDate":"2024-09-01","interval":"ANNUALLY"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, s.createdEvent)
	assert.Equal(t, "s1", s.createdEvent.SiteID)
	assert.Equal(t, model.IntervalAnnually, s.createdEvent.Interval)
	// Active unless the payload says otherwise.
	assert.True(t, s.createdEvent.IsActive)
}

func TestReplaceBattery(t *testing.T) {
	router := setupMaintenanceRouter(&stubStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/batteries/b1/replace", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var battery model.Battery
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &battery))
	assert.Equal(t, model.BatteryReplaced, battery.Status)
}
