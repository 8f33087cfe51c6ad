package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

func TestNormalize(t *testing.T) {
	sites := []model.Site{
		{
			ID:   "s1",
			Name: "Main depot",
			Technologies: []model.Technology{
				{
					ID:   "t1",
					Name: "Fire alarm panel",
					Batteries: []model.Battery{
						{ID: "b1", NextReplacementDate: "2024-09-01", Status: model.BatteryHealthy, Notes: "left rack"},
						{ID: "b2", NextReplacementDate: "2024-05-01", Status: model.BatteryCritical},
						{ID: "b3", NextReplacementDate: "2026-01-01", Status: model.BatteryReplaced},
						{ID: "b4", NextReplacementDate: "", Status: model.BatteryHealthy},
					},
				},
			},
			ScheduledEvents: []model.ScheduledEvent{
				{ID: "e1", Title: "Annual inspection", NextDate: "2024-10-01", Interval: model.IntervalAnnually, IsActive: true, Description: "full check"},
				{ID: "e2", Title: "Old event", NextDate: "2024-10-01", Interval: model.IntervalAnnually, IsActive: false},
				{ID: "e3", Title: "Broken interval", NextDate: "2024-10-01", Interval: "FORTNIGHTLY", IsActive: true},
			},
			PendingIssues: []model.PendingIssue{
				{ID: "i1", Text: "cabinet lock jammed", CreatedOn: "2024-06-01", Status: model.IssueOpen},
				{ID: "i2", Text: "fixed already", CreatedOn: "2024-02-01", Status: model.IssueResolved},
			},
		},
	}

	items, errs := Normalize(sites)

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"b-b1", "b-b2", "se-e1", "issue-i1"}, ids)

	byID := make(map[string]Item)
	for _, it := range items {
		byID[it.ID] = it
	}

	healthy := byID["b-b1"]
	assert.Equal(t, KindBattery, healthy.Kind)
	assert.Equal(t, "s1", healthy.SiteID)
	assert.Equal(t, "Main depot", healthy.SiteName)
	assert.Equal(t, "Fire alarm panel", healthy.Label)
	assert.Equal(t, "left rack", healthy.Note)
	assert.False(t, healthy.ForcedActionable)

	critical := byID["b-b2"]
	assert.True(t, critical.ForcedActionable)

	event := byID["se-e1"]
	assert.Equal(t, KindScheduled, event.Kind)
	assert.Equal(t, "Annual inspection", event.Label)
	assert.Equal(t, model.IntervalAnnually, event.Interval)
	assert.Equal(t, "full check", event.Note)

	issue := byID["issue-i1"]
	assert.Equal(t, KindIssue, issue.Kind)
	assert.True(t, issue.ForcedActionable)
	assert.Equal(t, "2024-06-01", issue.DueDate.Format("2006-01-02"))
	assert.Equal(t, "cabinet lock jammed", issue.Note)

	// b4 lost its date, e3 carries an unknown interval
	require.Len(t, errs, 2)
	assert.Equal(t, "battery", errs[0].Record)
	assert.Equal(t, "b4", errs[0].ID)
	assert.Equal(t, "nextReplacementDate", errs[0].Field)
	assert.Equal(t, "scheduledEvent", errs[1].Record)
	assert.Equal(t, "interval", errs[1].Field)

	var unknown UnknownIntervalError
	assert.ErrorAs(t, errs[1], &unknown)
}

func TestNormalizeEmptySnapshot(t *testing.T) {
	items, errs := Normalize(nil)
	assert.Empty(t, items)
	assert.Empty(t, errs)
}
