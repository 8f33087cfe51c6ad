package plan

import (
	"sort"
	"time"

	"github.com/BerretW/BatteryGuard-sub000/internal/dates"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

// YearMonth selects the calendar month a view is rendered for.
type YearMonth struct {
	Year  int
	Month time.Month
}

// bounds returns the first and last day of the month as UTC midnights,
// the frame all day values share.
func (ym YearMonth) bounds() (time.Time, time.Time) {
	start := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// Views bundles the three item projections computed from one snapshot.
//
// Priority holds everything needing attention (overdue and upcoming),
// soonest first. Month holds the remaining scheduled work falling in the
// visible month; by construction it never repeats a priority entry.
// Calendar buckets every item by exact day for the visible month, with
// recurring events expanded past their stored next date.
type Views struct {
	Priority []ClassifiedItem            `json:"priority"`
	Month    []ClassifiedItem            `json:"month"`
	Calendar map[string][]ClassifiedItem `json:"calendar"`
}

// BuildViews classifies the full snapshot against an explicit "now" and
// assembles all item projections for the visible month. Lead-time windows
// are resolved per site from its group. Malformed records are skipped and
// reported alongside the (still complete) views.
func BuildViews(sites []model.Site, groups []model.Group, now time.Time, visible YearMonth) (Views, []MalformedRecordError) {
	var classified []ClassifiedItem
	var errs []MalformedRecordError

	for _, site := range sites {
		policy := ResolvePolicy(site, groups)
		items, siteErrs := normalizeSite(site)
		errs = append(errs, siteErrs...)
		for _, it := range items {
			classified = append(classified, ClassifiedItem{
				Item:  it,
				State: Classify(it, now, policy.LeadTimeWeeks),
			})
		}
	}

	views := Views{
		Priority: priorityFeed(classified),
		Month:    monthFeed(classified, visible),
		Calendar: calendarBuckets(classified, visible),
	}
	return views, errs
}

// priorityFeed keeps actionable items, soonest due date first. Ties keep
// the emission order (battery, scheduled, issue per site) so output is
// deterministic for equal dates.
func priorityFeed(classified []ClassifiedItem) []ClassifiedItem {
	feed := make([]ClassifiedItem, 0)
	for _, ci := range classified {
		if ci.State == StateOverdue || ci.State == StateUpcoming {
			feed = append(feed, ci)
		}
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].DueDate.Before(feed[j].DueDate)
	})
	return feed
}

// monthFeed keeps future scheduled items with a due date in the visible
// month. Overdue/upcoming items already live in the priority feed and are
// excluded, keeping the two feeds disjoint.
func monthFeed(classified []ClassifiedItem, visible YearMonth) []ClassifiedItem {
	feed := make([]ClassifiedItem, 0)
	for _, ci := range classified {
		if ci.State != StateScheduled {
			continue
		}
		if dates.InMonth(ci.DueDate, visible.Year, visible.Month) {
			feed = append(feed, ci)
		}
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].DueDate.Before(feed[j].DueDate)
	})
	return feed
}

// calendarBuckets maps each day of the visible month to the items due on
// it, regardless of state. Recurring events contribute every occurrence
// the month intersects, not just the stored next date.
func calendarBuckets(classified []ClassifiedItem, visible YearMonth) map[string][]ClassifiedItem {
	start, end := visible.bounds()
	buckets := make(map[string][]ClassifiedItem)

	add := func(day time.Time, ci ClassifiedItem) {
		key := dates.Format(day)
		buckets[key] = append(buckets[key], ci)
	}

	for _, ci := range classified {
		if ci.Kind == KindScheduled && IsRecurring(ci.Interval) {
			// Interval validity was checked during normalization.
			occs, err := OccurrencesInRange(dates.Day(ci.DueDate), ci.Interval, start, end)
			if err != nil {
				continue
			}
			for _, occ := range occs {
				add(occ, ci)
			}
			continue
		}
		if dates.InMonth(ci.DueDate, visible.Year, visible.Month) {
			add(dates.Day(ci.DueDate), ci)
		}
	}
	return buckets
}
