package plan

import (
	"github.com/BerretW/BatteryGuard-sub000/internal/dates"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

// Normalize flattens the heterogeneous per-site collections into the
// canonical item shape: one item per non-replaced battery, one per active
// scheduled event, one per open pending issue. Records with a broken
// required field are skipped and reported so the caller can flag them;
// the rest of the snapshot still normalizes.
func Normalize(sites []model.Site) ([]Item, []MalformedRecordError) {
	var items []Item
	var errs []MalformedRecordError
	for _, site := range sites {
		si, se := normalizeSite(site)
		items = append(items, si...)
		errs = append(errs, se...)
	}
	return items, errs
}

func normalizeSite(site model.Site) ([]Item, []MalformedRecordError) {
	var items []Item
	var errs []MalformedRecordError

	for _, tech := range site.Technologies {
		for _, b := range tech.Batteries {
			if b.Status == model.BatteryReplaced {
				continue
			}
			due, err := dates.Parse(b.NextReplacementDate)
			if err != nil {
				errs = append(errs, MalformedRecordError{
					Record: "battery", ID: b.ID, SiteID: site.ID,
					Field: "nextReplacementDate", Err: err,
				})
				continue
			}
			items = append(items, Item{
				ID:               "b-" + b.ID,
				Kind:             KindBattery,
				SiteID:           site.ID,
				SiteName:         site.Name,
				Label:            tech.Name,
				DueDate:          due,
				ForcedActionable: b.Status != model.BatteryHealthy,
				Note:             b.Notes,
			})
		}
	}

	for _, ev := range site.ScheduledEvents {
		if !ev.IsActive {
			continue
		}
		due, err := dates.Parse(ev.NextDate)
		if err != nil {
			errs = append(errs, MalformedRecordError{
				Record: "scheduledEvent", ID: ev.ID, SiteID: site.ID,
				Field: "nextDate", Err: err,
			})
			continue
		}
		if _, err := PeriodMonths(ev.Interval); err != nil {
			errs = append(errs, MalformedRecordError{
				Record: "scheduledEvent", ID: ev.ID, SiteID: site.ID,
				Field: "interval", Err: err,
			})
			continue
		}
		items = append(items, Item{
			ID:       "se-" + ev.ID,
			Kind:     KindScheduled,
			SiteID:   site.ID,
			SiteName: site.Name,
			Label:    ev.Title,
			DueDate:  due,
			Note:     ev.Description,
			Interval: ev.Interval,
		})
	}

	for _, issue := range site.PendingIssues {
		if issue.Status != model.IssueOpen {
			continue
		}
		created, err := dates.Parse(issue.CreatedOn)
		if err != nil {
			errs = append(errs, MalformedRecordError{
				Record: "pendingIssue", ID: issue.ID, SiteID: site.ID,
				Field: "createdAt", Err: err,
			})
			continue
		}
		items = append(items, Item{
			ID:               "issue-" + issue.ID,
			Kind:             KindIssue,
			SiteID:           site.ID,
			SiteName:         site.Name,
			Label:            "Deferred issue",
			DueDate:          created,
			ForcedActionable: true,
			Note:             issue.Text,
		})
	}

	return items, errs
}
