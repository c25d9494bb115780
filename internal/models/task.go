// ABOUTME: Task model with priority and bucket enums plus partial-update patches.
// ABOUTME: Tasks carry an energy cost compared against the day's check-in.
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Priority ranks a task.
type Priority string

const (
	PriorityMustDo   Priority = "must-do"
	PriorityCanWait  Priority = "can-wait"
	PriorityOptional Priority = "optional"
)

// AllPriorities returns all valid priorities.
var AllPriorities = []Priority{PriorityMustDo, PriorityCanWait, PriorityOptional}

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	for _, v := range AllPriorities {
		if v == p {
			return true
		}
	}
	return false
}

// Label returns the display label.
func (p Priority) Label() string {
	switch p {
	case PriorityMustDo:
		return "Must Do"
	case PriorityCanWait:
		return "Can Wait"
	case PriorityOptional:
		return "Optional"
	}
	return string(p)
}

// Bucket groups tasks independently of priority and energy.
type Bucket string

const (
	BucketAdminMode    Bucket = "admin-mode"
	BucketMediumEnergy Bucket = "medium-energy"
	BucketHeavyEnergy  Bucket = "heavy-energy"
	BucketForOthers    Bucket = "for-others"
	BucketForMyself    Bucket = "for-myself"
	BucketJustForFun   Bucket = "just-for-fun"

	// BucketAll is the filter sentinel meaning "no bucket filter". It is never stored.
	BucketAll Bucket = "all"
)

// AllBuckets returns all storable buckets in display order.
var AllBuckets = []Bucket{
	BucketAdminMode, BucketMediumEnergy, BucketHeavyEnergy,
	BucketForOthers, BucketJustForFun, BucketForMyself,
}

var bucketLabels = map[Bucket]string{
	BucketAdminMode:    "Admin Mode",
	BucketMediumEnergy: "Medium Energy",
	BucketHeavyEnergy:  "Heavy Energy",
	BucketForOthers:    "For Others",
	BucketForMyself:    "For Myself",
	BucketJustForFun:   "Just for Fun",
	BucketAll:          "All",
}

// IsValid reports whether b is a storable bucket.
func (b Bucket) IsValid() bool {
	for _, v := range AllBuckets {
		if v == b {
			return true
		}
	}
	return false
}

// Label returns the display label.
func (b Bucket) Label() string {
	if l, ok := bucketLabels[b]; ok {
		return l
	}
	return string(b)
}

// ParsePriority validates s against the priority set.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown priority: %s (valid: must-do, can-wait, optional)", s)
	}
	return p, nil
}

// ParseBucket validates s against the bucket set. The "all" sentinel is accepted.
func ParseBucket(s string) (Bucket, error) {
	b := Bucket(s)
	if b != BucketAll && !b.IsValid() {
		return "", fmt.Errorf("unknown bucket: %s", s)
	}
	return b, nil
}

// Task is a unit of work.
type Task struct {
	ID         string      `json:"id" yaml:"id" validate:"required"`
	Title      string      `json:"title" yaml:"title" validate:"notblank"`
	EnergyCost EnergyLevel `json:"energyCost" yaml:"energy_cost" validate:"energy"`
	Priority   Priority    `json:"priority" yaml:"priority" validate:"priority"`
	Category   Category    `json:"category" yaml:"category" validate:"required"`
	Bucket     Bucket      `json:"bucket" yaml:"bucket" validate:"bucket"`
	Completed  bool        `json:"completed" yaml:"completed"`
	Date       string      `json:"date" yaml:"date" validate:"required,isodate"`
	DueDate    string      `json:"dueDate,omitempty" yaml:"due_date,omitempty" validate:"omitempty,isodate"`
	Notes      string      `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewTask creates a task for date with a generated ID and the add-form defaults.
func NewTask(title, date string) *Task {
	return &Task{
		ID:         uuid.New().String(),
		Title:      title,
		EnergyCost: EnergyModerate,
		Priority:   PriorityCanWait,
		Category:   CategoryGeneral,
		Bucket:     BucketMediumEnergy,
		Date:       date,
	}
}

// WithEnergyCost sets the energy cost.
func (t *Task) WithEnergyCost(e EnergyLevel) *Task {
	t.EnergyCost = e
	return t
}

// WithPriority sets the priority.
func (t *Task) WithPriority(p Priority) *Task {
	t.Priority = p
	return t
}

// WithCategory sets the category.
func (t *Task) WithCategory(c Category) *Task {
	t.Category = c
	return t
}

// WithBucket sets the bucket.
func (t *Task) WithBucket(b Bucket) *Task {
	t.Bucket = b
	return t
}

// WithDueDate sets the calendar due date.
func (t *Task) WithDueDate(date string) *Task {
	t.DueDate = date
	return t
}

// WithNotes sets notes on the task.
func (t *Task) WithNotes(notes string) *Task {
	t.Notes = notes
	return t
}

// HasDueDate reports whether the task is placed on the calendar.
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// TaskPatch is a partial update. Only non-nil fields are applied.
type TaskPatch struct {
	Title      *string      `json:"title,omitempty"`
	EnergyCost *EnergyLevel `json:"energyCost,omitempty"`
	Priority   *Priority    `json:"priority,omitempty"`
	Category   *Category    `json:"category,omitempty"`
	Bucket     *Bucket      `json:"bucket,omitempty"`
	Completed  *bool        `json:"completed,omitempty"`
	Date       *string      `json:"date,omitempty"`
	DueDate    *string      `json:"dueDate,omitempty"`
	Notes      *string      `json:"notes,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p == TaskPatch{}
}

// TogglePatch returns the patch that flips t's completion state.
func TogglePatch(t Task) TaskPatch {
	done := !t.Completed
	return TaskPatch{Completed: &done}
}
