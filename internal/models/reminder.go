// ABOUTME: Self-care reminder model and the default reminder set.
// ABOUTME: Defaults are seeded once; only custom reminders may be deleted.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ReminderType identifies the kind of self-care nudge.
type ReminderType string

const (
	ReminderHydration  ReminderType = "hydration"
	ReminderMedication ReminderType = "medication"
	ReminderRest       ReminderType = "rest"
	ReminderBreathing  ReminderType = "breathing"
	ReminderMovement   ReminderType = "movement"
	ReminderCustom     ReminderType = "custom"
)

// AllReminderTypes returns all valid reminder types.
var AllReminderTypes = []ReminderType{
	ReminderHydration, ReminderMedication, ReminderRest,
	ReminderBreathing, ReminderMovement, ReminderCustom,
}

var reminderIcons = map[ReminderType]string{
	ReminderHydration:  "water_drop",
	ReminderMedication: "medication",
	ReminderRest:       "bedtime",
	ReminderBreathing:  "air",
	ReminderMovement:   "directions_walk",
	ReminderCustom:     "notifications",
}

// IsValid reports whether t is a known reminder type.
func (t ReminderType) IsValid() bool {
	_, ok := reminderIcons[t]
	return ok
}

// Icon returns the icon name for t.
func (t ReminderType) Icon() string {
	if icon, ok := reminderIcons[t]; ok {
		return icon
	}
	return reminderIcons[ReminderCustom]
}

// Reminder is a user-toggleable self-care nudge.
type Reminder struct {
	ID            string       `json:"id" yaml:"id" validate:"required"`
	Type          ReminderType `json:"type" yaml:"type" validate:"remindertype"`
	Title         string       `json:"title" yaml:"title" validate:"notblank"`
	Enabled       bool         `json:"enabled" yaml:"enabled"`
	LastCompleted *time.Time   `json:"lastCompleted,omitempty" yaml:"last_completed,omitempty"`
}

// DefaultReminders returns a fresh copy of the seeded reminder list.
func DefaultReminders() []Reminder {
	return []Reminder{
		{ID: "1", Type: ReminderHydration, Title: "Drink water", Enabled: true},
		{ID: "2", Type: ReminderMedication, Title: "Take medication", Enabled: true},
		{ID: "3", Type: ReminderRest, Title: "Rest break", Enabled: true},
		{ID: "4", Type: ReminderBreathing, Title: "Breathing exercise", Enabled: true},
		{ID: "5", Type: ReminderMovement, Title: "Gentle movement", Enabled: true},
	}
}

// NewCustomReminder creates an enabled user-defined reminder.
func NewCustomReminder(title string) *Reminder {
	return &Reminder{
		ID:      uuid.New().String(),
		Type:    ReminderCustom,
		Title:   title,
		Enabled: true,
	}
}

// IsCustom reports whether the reminder was added by the user.
func (r Reminder) IsCustom() bool {
	return r.Type == ReminderCustom
}

// CompletedOn reports whether the reminder was last completed on the given day.
func (r Reminder) CompletedOn(day time.Time) bool {
	if r.LastCompleted == nil {
		return false
	}
	return FormatDate(r.LastCompleted.In(day.Location())) == FormatDate(day)
}

// ReminderPatch is a partial reminder update. Only non-nil fields are applied.
type ReminderPatch struct {
	Title         *string    `json:"title,omitempty"`
	Enabled       *bool      `json:"enabled,omitempty"`
	LastCompleted *time.Time `json:"lastCompleted,omitempty"`
}
