// ABOUTME: Task list filters by date, due date, energy, and bucket.
// ABOUTME: Also partitions tasks into must-do, other, and completed groups.
package views

import "github.com/harperreed/spoons/internal/models"

func filter(tasks []models.Task, keep func(models.Task) bool) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByDate returns the tasks assigned to date.
func FilterByDate(tasks []models.Task, date string) []models.Task {
	return filter(tasks, func(t models.Task) bool { return t.Date == date })
}

// FilterByDueDate returns the tasks due on date. Tasks without a due date never match.
func FilterByDueDate(tasks []models.Task, date string) []models.Task {
	return filter(tasks, func(t models.Task) bool { return t.HasDueDate() && t.DueDate == date })
}

// WithDueDates returns the tasks that appear on the calendar.
func WithDueDates(tasks []models.Task) []models.Task {
	return filter(tasks, models.Task.HasDueDate)
}

// Fits reports whether a task's cost does not exceed the current energy.
// Tasks with an unknown cost never fit.
func Fits(t models.Task, current models.EnergyLevel) bool {
	cost := t.EnergyCost.Ordinal()
	return cost > 0 && cost <= current.Ordinal()
}

// FilterByEnergy keeps tasks that fit the current energy level.
// An unknown current level means no check-in yet, and the list is returned unfiltered.
func FilterByEnergy(tasks []models.Task, current models.EnergyLevel) []models.Task {
	if !current.IsValid() {
		return filter(tasks, func(models.Task) bool { return true })
	}
	return filter(tasks, func(t models.Task) bool { return Fits(t, current) })
}

// FilterByBucket keeps tasks in bucket. BucketAll keeps everything.
func FilterByBucket(tasks []models.Task, bucket models.Bucket) []models.Task {
	if bucket == models.BucketAll {
		return filter(tasks, func(models.Task) bool { return true })
	}
	return filter(tasks, func(t models.Task) bool { return t.Bucket == bucket })
}

// Groups holds the three disjoint task groups shown on the task screen.
type Groups struct {
	MustDo    []models.Task
	Other     []models.Task
	Completed []models.Task
}

// Len returns the total number of tasks across all groups.
func (g Groups) Len() int {
	return len(g.MustDo) + len(g.Other) + len(g.Completed)
}

// Partition splits tasks into incomplete must-dos, other incomplete tasks and
// completed tasks. Every task lands in exactly one group, in input order.
func Partition(tasks []models.Task) Groups {
	g := Groups{
		MustDo:    []models.Task{},
		Other:     []models.Task{},
		Completed: []models.Task{},
	}
	for _, t := range tasks {
		switch {
		case t.Completed:
			g.Completed = append(g.Completed, t)
		case t.Priority == models.PriorityMustDo:
			g.MustDo = append(g.MustDo, t)
		default:
			g.Other = append(g.Other, t)
		}
	}
	return g
}
