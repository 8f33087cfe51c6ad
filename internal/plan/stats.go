package plan

import (
	"time"

	"github.com/BerretW/BatteryGuard-sub000/internal/dates"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

// SiteBatteryCount is the per-site battery total for the dashboard chart.
type SiteBatteryCount struct {
	SiteID    string `json:"siteId"`
	SiteName  string `json:"siteName"`
	Batteries int    `json:"batteries"`
}

// Summary holds the dashboard roll-up numbers.
type Summary struct {
	TotalSites       int                         `json:"totalSites"`
	TotalBatteries   int                         `json:"totalBatteries"`
	BatteryCounts    map[model.BatteryStatus]int `json:"batteryCounts"`
	BatteriesPerSite []SiteBatteryCount          `json:"batteriesPerSite"`
	OverdueTaskCount int                         `json:"overdueTaskCount"`
}

// Summarize counts raw records for the landing dashboard. This is plain
// counting over literal status fields; the classifier state machine is
// not involved. Tasks with an unparsable deadline cannot be proven
// overdue and are left out of that counter.
func Summarize(sites []model.Site, now time.Time) Summary {
	today := dates.Day(now)

	s := Summary{
		TotalSites: len(sites),
		BatteryCounts: map[model.BatteryStatus]int{
			model.BatteryHealthy:  0,
			model.BatteryWarning:  0,
			model.BatteryCritical: 0,
			model.BatteryReplaced: 0,
		},
		BatteriesPerSite: make([]SiteBatteryCount, 0, len(sites)),
	}

	for _, site := range sites {
		perSite := 0
		for _, tech := range site.Technologies {
			perSite += len(tech.Batteries)
			for _, b := range tech.Batteries {
				s.BatteryCounts[b.Status]++
			}
		}
		s.TotalBatteries += perSite
		s.BatteriesPerSite = append(s.BatteriesPerSite, SiteBatteryCount{
			SiteID:    site.ID,
			SiteName:  site.Name,
			Batteries: perSite,
		})

		for _, task := range site.Tasks {
			if task.Status == model.TaskDone {
				continue
			}
			due, err := dates.Parse(task.Deadline)
			if err != nil {
				continue
			}
			if due.Before(today) {
				s.OverdueTaskCount++
			}
		}
	}
	return s
}
