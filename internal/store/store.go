package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BerretW/BatteryGuard-sub000/internal/ident"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

// ErrGroupInUse is returned when deleting a group still referenced by sites.
var ErrGroupInUse = errors.New("group is referenced by existing sites")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for all database operations. The scheduling
// engine never touches it; handlers load snapshots here and hand them to
// the engine.
type Store interface {
	// Snapshot loads all sites with their nested records plus all groups,
	// as one consistent read for the engine.
	Snapshot(ctx context.Context) ([]model.Site, []model.Group, error)

	ListSites(ctx context.Context) ([]model.Site, error)
	GetSite(ctx context.Context, id string) (*model.Site, error)
	CreateSite(ctx context.Context, site *model.Site) error
	UpdateSite(ctx context.Context, site *model.Site) error
	DeleteSite(ctx context.Context, id string) error

	ListGroups(ctx context.Context) ([]model.Group, error)
	CreateGroup(ctx context.Context, group *model.Group) error
	UpdateGroup(ctx context.Context, group *model.Group) error
	DeleteGroup(ctx context.Context, id string) error

	CreateTechnology(ctx context.Context, tech *model.Technology) error
	DeleteTechnology(ctx context.Context, id string) error

	CreateBattery(ctx context.Context, battery *model.Battery) error
	UpdateBattery(ctx context.Context, battery *model.Battery) error
	DeleteBattery(ctx context.Context, id string) error
	// ReplaceBattery marks a battery replaced and resets its install and
	// next-replacement dates from the owning site's group policy.
	ReplaceBattery(ctx context.Context, batteryID string, now time.Time) (*model.Battery, error)

	CreateEvent(ctx context.Context, event *model.ScheduledEvent) error
	UpdateEvent(ctx context.Context, event *model.ScheduledEvent) error
	DeleteEvent(ctx context.Context, id string) error
	// AcknowledgeEvent advances a recurring event to its next occurrence,
	// or deactivates a one-off event.
	AcknowledgeEvent(ctx context.Context, eventID string) (*model.ScheduledEvent, error)

	CreateIssue(ctx context.Context, issue *model.PendingIssue) error
	ResolveIssue(ctx context.Context, id string) error

	CreateTask(ctx context.Context, task *model.ManualTask) error
	UpdateTask(ctx context.Context, task *model.ManualTask) error
	DeleteTask(ctx context.Context, id string) error

	CreateContact(ctx context.Context, contact *model.Contact) error
	DeleteContact(ctx context.Context, id string) error
	CreateLogEntry(ctx context.Context, entry *model.LogEntry) error

	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db  *gorm.DB
	ids ident.Generator
}

// NewGormStore creates a new GORM-backed store. The id generator is used
// for every record created without an id.
func NewGormStore(db *gorm.DB, ids ident.Generator) Store {
	return &gormStore{db: db, ids: ids}
}

func (s *gormStore) ensureID(id *string) {
	if *id == "" {
		*id = s.ids.NewID()
	}
}

var sitePreloads = []string{
	"Technologies", "Technologies.Batteries",
	"ScheduledEvents", "PendingIssues", "Tasks", "Contacts", "LogEntries",
}

func preloadSites(q *gorm.DB) *gorm.DB {
	for _, p := range sitePreloads {
		q = q.Preload(p)
	}
	return q
}

func (s *gormStore) Snapshot(ctx context.Context) ([]model.Site, []model.Group, error) {
	sites, err := s.ListSites(ctx)
	if err != nil {
		return nil, nil, err
	}
	groups, err := s.ListGroups(ctx)
	if err != nil {
		return nil, nil, err
	}
	return sites, groups, nil
}

func (s *gormStore) ListSites(ctx context.Context) ([]model.Site, error) {
	var sites []model.Site
	if err := preloadSites(s.db.WithContext(ctx)).Order("name").Find(&sites).Error; err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return sites, nil
}

func (s *gormStore) GetSite(ctx context.Context, id string) (*model.Site, error) {
	var site model.Site
	err := preloadSites(s.db.WithContext(ctx)).First(&site, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get site %s: %w", id, err)
	}
	return &site, nil
}

func (s *gormStore) CreateSite(ctx context.Context, site *model.Site) error {
	s.ensureID(&site.ID)
	if err := s.db.WithContext(ctx).Create(site).Error; err != nil {
		return fmt.Errorf("create site: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateSite(ctx context.Context, site *model.Site) error {
	res := s.db.WithContext(ctx).Model(&model.Site{}).Where("id = ?", site.ID).Updates(map[string]any{
		"name":           site.Name,
		"address":        site.Address,
		"description":    site.Description,
		"internal_notes": site.InternalNotes,
		"group_id":       site.GroupID,
		"lat":            site.Lat,
		"lng":            site.Lng,
	})
	if res.Error != nil {
		return fmt.Errorf("update site %s: %w", site.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) DeleteSite(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.Site{}, id, "site")
}

func (s *gormStore) ListGroups(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	if err := s.db.WithContext(ctx).Order("name").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

func (s *gormStore) CreateGroup(ctx context.Context, group *model.Group) error {
	s.ensureID(&group.ID)
	if group.DefaultBatteryLifeMonths <= 0 {
		group.DefaultBatteryLifeMonths = model.DefaultBatteryLifeMonths
	}
	if group.NotificationLeadTimeWeeks <= 0 {
		group.NotificationLeadTimeWeeks = model.DefaultNotificationLeadWeeks
	}
	if err := s.db.WithContext(ctx).Create(group).Error; err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateGroup(ctx context.Context, group *model.Group) error {
	res := s.db.WithContext(ctx).Model(&model.Group{}).Where("id = ?", group.ID).Updates(map[string]any{
		"name":                         group.Name,
		"color":                        group.Color,
		"default_battery_life_months":  group.DefaultBatteryLifeMonths,
		"notification_lead_time_weeks": group.NotificationLeadTimeWeeks,
	})
	if res.Error != nil {
		return fmt.Errorf("update group %s: %w", group.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGroup refuses to delete a group any site still references.
func (s *gormStore) DeleteGroup(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&model.Site{}).Where("group_id = ?", id).Count(&refs).Error; err != nil {
			return fmt.Errorf("count group references: %w", err)
		}
		if refs > 0 {
			return ErrGroupInUse
		}
		res := tx.Delete(&model.Group{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete group %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *gormStore) deleteByID(ctx context.Context, m any, id, kind string) error {
	res := s.db.WithContext(ctx).Delete(m, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
