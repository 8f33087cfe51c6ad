package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BerretW/BatteryGuard-sub000/internal/dates"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
	"github.com/BerretW/BatteryGuard-sub000/internal/plan"
)

func (s *gormStore) CreateTechnology(ctx context.Context, tech *model.Technology) error {
	s.ensureID(&tech.ID)
	if err := s.db.WithContext(ctx).Create(tech).Error; err != nil {
		return fmt.Errorf("create technology: %w", err)
	}
	return nil
}

func (s *gormStore) DeleteTechnology(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.Technology{}, id, "technology")
}

func (s *gormStore) CreateBattery(ctx context.Context, battery *model.Battery) error {
	s.ensureID(&battery.ID)
	if battery.Status == "" {
		battery.Status = model.BatteryHealthy
	}
	if err := s.db.WithContext(ctx).Create(battery).Error; err != nil {
		return fmt.Errorf("create battery: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateBattery(ctx context.Context, battery *model.Battery) error {
	res := s.db.WithContext(ctx).Model(&model.Battery{}).Where("id = ?", battery.ID).Updates(map[string]any{
		"capacity_ah":           battery.CapacityAh,
		"voltage_v":             battery.VoltageV,
		"install_date":          battery.InstallDate,
		"last_check_date":       battery.LastCheckDate,
		"next_replacement_date": battery.NextReplacementDate,
		"status":                battery.Status,
		"serial_number":         battery.SerialNumber,
		"notes":                 battery.Notes,
	})
	if res.Error != nil {
		return fmt.Errorf("update battery %s: %w", battery.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) DeleteBattery(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.Battery{}, id, "battery")
}

// ReplaceBattery marks the battery replaced and resets its dates: install
// date becomes today, the next replacement is due one lifecycle from now,
// with the lifecycle length resolved from the owning site's group.
func (s *gormStore) ReplaceBattery(ctx context.Context, batteryID string, now time.Time) (*model.Battery, error) {
	var battery model.Battery
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&battery, "id = ?", batteryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load battery %s: %w", batteryID, err)
		}

		var tech model.Technology
		if err := tx.First(&tech, "id = ?", battery.TechnologyID).Error; err != nil {
			return fmt.Errorf("load technology %s: %w", battery.TechnologyID, err)
		}
		var site model.Site
		if err := tx.First(&site, "id = ?", tech.SiteID).Error; err != nil {
			return fmt.Errorf("load site %s: %w", tech.SiteID, err)
		}

		var groups []model.Group
		if site.GroupID != nil {
			if err := tx.Find(&groups, "id = ?", *site.GroupID).Error; err != nil {
				return fmt.Errorf("load group: %w", err)
			}
		}
		policy := plan.ResolvePolicy(site, groups)

		today := dates.Day(now)
		battery.Status = model.BatteryReplaced
		battery.InstallDate = dates.Format(today)
		battery.LastCheckDate = dates.Format(today)
		battery.NextReplacementDate = dates.Format(dates.AddMonths(today, policy.DefaultLifecycleMonths))

		if err := tx.Model(&model.Battery{}).Where("id = ?", battery.ID).Updates(map[string]any{
			"status":                battery.Status,
			"install_date":          battery.InstallDate,
			"last_check_date":       battery.LastCheckDate,
			"next_replacement_date": battery.NextReplacementDate,
		}).Error; err != nil {
			return fmt.Errorf("update battery %s: %w", battery.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &battery, nil
}

func (s *gormStore) CreateEvent(ctx context.Context, event *model.ScheduledEvent) error {
	s.ensureID(&event.ID)
	if _, err := plan.PeriodMonths(event.Interval); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateEvent(ctx context.Context, event *model.ScheduledEvent) error {
	if _, err := plan.PeriodMonths(event.Interval); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Model(&model.ScheduledEvent{}).Where("id = ?", event.ID).Updates(map[string]any{
		"title":        event.Title,
		"description":  event.Description,
		"future_notes": event.FutureNotes,
		"start_date":   event.StartDate,
		"next_date":    event.NextDate,
		"interval":     event.Interval,
		"is_active":    event.IsActive,
	})
	if res.Error != nil {
		return fmt.Errorf("update event %s: %w", event.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) DeleteEvent(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.ScheduledEvent{}, id, "event")
}

// AcknowledgeEvent records that an occurrence was handled: one-off events
// are deactivated, recurring ones advance by one period. The next
// occurrence is a pure computation; only this write path mutates NextDate.
func (s *gormStore) AcknowledgeEvent(ctx context.Context, eventID string) (*model.ScheduledEvent, error) {
	var event model.ScheduledEvent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load event %s: %w", eventID, err)
		}

		if !plan.IsRecurring(event.Interval) {
			event.IsActive = false
			if err := tx.Model(&model.ScheduledEvent{}).Where("id = ?", event.ID).
				Update("is_active", false).Error; err != nil {
				return fmt.Errorf("deactivate event %s: %w", event.ID, err)
			}
			return nil
		}

		current, err := dates.Parse(event.NextDate)
		if err != nil {
			return fmt.Errorf("event %s has invalid next date: %w", event.ID, err)
		}
		next, err := plan.AddInterval(current, event.Interval)
		if err != nil {
			return err
		}
		event.NextDate = dates.Format(next)
		if err := tx.Model(&model.ScheduledEvent{}).Where("id = ?", event.ID).
			Update("next_date", event.NextDate).Error; err != nil {
			return fmt.Errorf("advance event %s: %w", event.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *gormStore) CreateIssue(ctx context.Context, issue *model.PendingIssue) error {
	s.ensureID(&issue.ID)
	if issue.Status == "" {
		issue.Status = model.IssueOpen
	}
	if err := s.db.WithContext(ctx).Create(issue).Error; err != nil {
		return fmt.Errorf("create issue: %w", err)
	}
	return nil
}

func (s *gormStore) ResolveIssue(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Model(&model.PendingIssue{}).Where("id = ?", id).
		Update("status", model.IssueResolved)
	if res.Error != nil {
		return fmt.Errorf("resolve issue %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) CreateTask(ctx context.Context, task *model.ManualTask) error {
	s.ensureID(&task.ID)
	if task.Status == "" {
		task.Status = model.TaskOpen
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateTask(ctx context.Context, task *model.ManualTask) error {
	res := s.db.WithContext(ctx).Model(&model.ManualTask{}).Where("id = ?", task.ID).Updates(map[string]any{
		"description": task.Description,
		"deadline":    task.Deadline,
		"priority":    task.Priority,
		"status":      task.Status,
		"note":        task.Note,
	})
	if res.Error != nil {
		return fmt.Errorf("update task %s: %w", task.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) DeleteTask(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.ManualTask{}, id, "task")
}

func (s *gormStore) CreateContact(ctx context.Context, contact *model.Contact) error {
	s.ensureID(&contact.ID)
	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (s *gormStore) DeleteContact(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.Contact{}, id, "contact")
}

func (s *gormStore) CreateLogEntry(ctx context.Context, entry *model.LogEntry) error {
	s.ensureID(&entry.ID)
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create log entry: %w", err)
	}
	return nil
}
