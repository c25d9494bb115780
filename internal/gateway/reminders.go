// ABOUTME: Self-care reminder operations over the seeded reminder list.
// ABOUTME: Only custom reminders can be deleted.
package gateway

import (
	"errors"
	"time"

	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/storage"
)

var (
	// ErrDefaultReminder is returned when deleting a built-in reminder.
	ErrDefaultReminder = errors.New("default reminders cannot be deleted")
	// ErrReminderNotFound is returned by GetReminder when nothing matches.
	ErrReminderNotFound = errors.New("reminder not found")
)

// Reminders returns the stored reminders. If the seed was never persisted
// (for example the store refused the write) the defaults are returned.
func (g *Gateway) Reminders() []models.Reminder {
	if _, err := g.store.Get(storage.KeyReminders); errors.Is(err, storage.ErrNotFound) {
		return models.DefaultReminders()
	}
	return LoadAll[models.Reminder](g, storage.KeyReminders)
}

// SaveReminders overwrites the reminder collection.
func (g *Gateway) SaveReminders(reminders []models.Reminder) error {
	return SaveAll(g, storage.KeyReminders, reminders)
}

// GetReminder finds a reminder by full id or unique id prefix.
func (g *Gateway) GetReminder(idOrPrefix string) (*models.Reminder, error) {
	return resolve(g.Reminders(), idOrPrefix, func(r models.Reminder) string { return r.ID }, ErrReminderNotFound)
}

func (g *Gateway) findReminder(id string) *models.Reminder {
	// Retry a seed that failed in New so patches land on stored records.
	g.seedReminders()
	for _, r := range g.Reminders() {
		if r.ID == id {
			return &r
		}
	}
	return nil
}

// UpdateReminder applies the set fields of patch to the reminder with id.
func (g *Gateway) UpdateReminder(id string, patch models.ReminderPatch) error {
	return g.PatchByID(storage.KeyReminders, id, patch)
}

// ToggleReminder flips enabled on the reminder with id and returns it.
// An unknown id returns nil and writes nothing.
func (g *Gateway) ToggleReminder(id string) (*models.Reminder, error) {
	// Retry a seed that failed in New so the toggle lands on a stored record.
	g.seedReminders()
	return updateByID(g, storage.KeyReminders, id, func(r models.Reminder) any {
		enabled := !r.Enabled
		return models.ReminderPatch{Enabled: &enabled}
	})
}

// CompleteReminder records at as the reminder's last completion.
// An unknown id returns nil and writes nothing.
func (g *Gateway) CompleteReminder(id string, at time.Time) (*models.Reminder, error) {
	g.seedReminders()
	at = at.UTC()
	return updateByID(g, storage.KeyReminders, id, func(models.Reminder) any {
		return models.ReminderPatch{LastCompleted: &at}
	})
}

// AddReminder stores r, replacing a reminder with the same id.
func (g *Gateway) AddReminder(r models.Reminder) error {
	g.seedReminders()
	return UpsertByKey(g, storage.KeyReminders, r, func(existing models.Reminder) bool {
		return existing.ID == r.ID
	})
}

// DeleteReminder removes a custom reminder. Defaults are refused with
// ErrDefaultReminder; an unknown id is a no-op.
func (g *Gateway) DeleteReminder(id string) error {
	r := g.findReminder(id)
	if r == nil {
		return nil
	}
	if !r.IsCustom() {
		return ErrDefaultReminder
	}
	return g.DeleteByID(storage.KeyReminders, id)
}
