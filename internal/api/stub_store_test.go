package api

import (
	"context"
	"time"

	"github.com/BerretW/BatteryGuard-sub000/internal/model"
	"github.com/BerretW/BatteryGuard-sub000/internal/store"
)

// stubStore is an in-memory Store for handler tests. Reads serve the
// fixture fields; writes record the last value they were given.
type stubStore struct {
	sites  []model.Site
	groups []model.Group
	users  map[string]model.User
	err    error

	createdIssue *model.PendingIssue
	createdTask  *model.ManualTask
	createdEvent *model.ScheduledEvent
	deletedID    string
}

func (s *stubStore) Snapshot(context.Context) ([]model.Site, []model.Group, error) {
	return s.sites, s.groups, s.err
}

func (s *stubStore) ListSites(context.Context) ([]model.Site, error) {
	return s.sites, s.err
}

func (s *stubStore) GetSite(_ context.Context, id string) (*model.Site, error) {
	for i := range s.sites {
		if s.sites[i].ID == id {
			return &s.sites[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubStore) CreateSite(_ context.Context, site *model.Site) error {
	site.ID = "site-new"
	return s.err
}

func (s *stubStore) UpdateSite(context.Context, *model.Site) error { return s.err }
func (s *stubStore) DeleteSite(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func (s *stubStore) ListGroups(context.Context) ([]model.Group, error) {
	return s.groups, s.err
}
func (s *stubStore) CreateGroup(context.Context, *model.Group) error { return s.err }
func (s *stubStore) UpdateGroup(context.Context, *model.Group) error { return s.err }
func (s *stubStore) DeleteGroup(context.Context, string) error { return s.err }

func (s *stubStore) CreateTechnology(context.Context, *model.Technology) error { return s.err }
func (s *stubStore) DeleteTechnology(context.Context, string) error { return s.err }

func (s *stubStore) CreateBattery(context.Context, *model.Battery) error { return s.err }
func (s *stubStore) UpdateBattery(context.Context, *model.Battery) error { return s.err }
func (s *stubStore) DeleteBattery(context.Context, string) error { return s.err }

func (s *stubStore) ReplaceBattery(_ context.Context, batteryID string, _ time.Time) (*model.Battery, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Battery{ID: batteryID, Status: model.BatteryReplaced}, nil
}

func (s *stubStore) CreateEvent(_ context.Context, event *model.ScheduledEvent) error {
	s.createdEvent = event
	return s.err
}
func (s *stubStore) UpdateEvent(context.Context, *model.ScheduledEvent) error { return s.err }
func (s *stubStore) DeleteEvent(context.Context, string) error { return s.err }

func (s *stubStore) AcknowledgeEvent(_ context.Context, eventID string) (*model.ScheduledEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.ScheduledEvent{ID: eventID}, nil
}

func (s *stubStore) CreateIssue(_ context.Context, issue *model.PendingIssue) error {
	s.createdIssue = issue
	return s.err
}
func (s *stubStore) ResolveIssue(context.Context, string) error { return s.err }

func (s *stubStore) CreateTask(_ context.Context, task *model.ManualTask) error {
	s.createdTask = task
	return s.err
}
func (s *stubStore) UpdateTask(context.Context, *model.ManualTask) error { return s.err }
func (s *stubStore) DeleteTask(context.Context, string) error { return s.err }

func (s *stubStore) CreateContact(context.Context, *model.Contact) error { return s.err }
func (s *stubStore) DeleteContact(context.Context, string) error { return s.err }
func (s *stubStore) CreateLogEntry(context.Context, *model.LogEntry) error { return s.err }

func (s *stubStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *stubStore) CreateUser(_ context.Context, user *model.User) error {
	if s.users == nil {
		s.users = map[string]model.User{}
	}
	user.ID = "user-new"
	s.users[user.Email] = *user
	return s.err
}
