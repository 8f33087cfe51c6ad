package plan

import "github.com/BerretW/BatteryGuard-sub000/internal/model"

// Policy is the effective maintenance policy for one site.
type Policy struct {
	LeadTimeWeeks          int
	DefaultLifecycleMonths int
}

// DefaultPolicy returns the system-wide fallback policy.
func DefaultPolicy() Policy {
	return Policy{
		LeadTimeWeeks:          model.DefaultNotificationLeadWeeks,
		DefaultLifecycleMonths: model.DefaultBatteryLifeMonths,
	}
}

// ResolvePolicy looks up the site's group and returns its policy values,
// falling back to system defaults per field. A missing or unknown group
// is not an error; ungrouped sites simply run on defaults.
func ResolvePolicy(site model.Site, groups []model.Group) Policy {
	p := DefaultPolicy()
	if site.GroupID == nil {
		return p
	}
	for _, g := range groups {
		if g.ID != *site.GroupID {
			continue
		}
		if g.NotificationLeadTimeWeeks > 0 {
			p.LeadTimeWeeks = g.NotificationLeadTimeWeeks
		}
		if g.DefaultBatteryLifeMonths > 0 {
			p.DefaultLifecycleMonths = g.DefaultBatteryLifeMonths
		}
		return p
	}
	return p
}
