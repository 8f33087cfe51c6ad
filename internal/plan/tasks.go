package plan

import (
	"sort"
	"time"

	"github.com/BerretW/BatteryGuard-sub000/internal/dates"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

// TaskFilter selects one bucket of the global task list.
type TaskFilter string

const (
	TaskFilterOverdue   TaskFilter = "OVERDUE"
	TaskFilterThisMonth TaskFilter = "THIS_MONTH"
	TaskFilterNextMonth TaskFilter = "NEXT_MONTH"
)

// ValidTaskFilter reports whether f names a known bucket.
func ValidTaskFilter(f TaskFilter) bool {
	switch f {
	case TaskFilterOverdue, TaskFilterThisMonth, TaskFilterNextMonth:
		return true
	}
	return false
}

// TaskEntry is a manual task annotated with its owning site for the
// cross-site list.
type TaskEntry struct {
	model.ManualTask
	SiteID   string `json:"siteId"`
	SiteName string `json:"siteName"`
}

// FilterTasks builds one bucket of the global task list: overdue tasks,
// tasks due in the current calendar month, or in the next one (year
// rollover included). DONE tasks never appear. Each bucket is sorted by
// deadline, soonest first; tasks with a broken deadline are skipped and
// reported.
func FilterTasks(sites []model.Site, now time.Time, filter TaskFilter) ([]TaskEntry, []MalformedRecordError) {
	today := dates.Day(now)
	nextYear, nextMonth := dates.MonthAfter(today)

	type dated struct {
		entry TaskEntry
		due   time.Time
	}
	var picked []dated
	var errs []MalformedRecordError

	for _, site := range sites {
		for _, task := range site.Tasks {
			if task.Status == model.TaskDone {
				continue
			}
			due, err := dates.Parse(task.Deadline)
			if err != nil {
				errs = append(errs, MalformedRecordError{
					Record: "manualTask", ID: task.ID, SiteID: site.ID,
					Field: "deadline", Err: err,
				})
				continue
			}

			var keep bool
			switch filter {
			case TaskFilterOverdue:
				keep = due.Before(today)
			case TaskFilterThisMonth:
				keep = dates.InMonth(due, today.Year(), today.Month())
			case TaskFilterNextMonth:
				keep = dates.InMonth(due, nextYear, nextMonth)
			}
			if keep {
				picked = append(picked, dated{
					entry: TaskEntry{ManualTask: task, SiteID: site.ID, SiteName: site.Name},
					due:   due,
				})
			}
		}
	}

	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].due.Before(picked[j].due)
	})

	out := make([]TaskEntry, len(picked))
	for i, d := range picked {
		out[i] = d.entry
	}
	return out, errs
}
